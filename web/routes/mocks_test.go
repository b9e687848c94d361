package routes_test

import (
	"iter"
	"time"

	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/model"
	"github.com/dasdy/layerlens/web/routes"
)

// SimpleStorageMock is a simple manual mock implementation of the Storage interface
type SimpleStorageMock struct {
	ReturnUsage []model.LayerUsage
	ReturnError error
	CallCount   int
}

func (m *SimpleStorageMock) GatherLayerUsage() ([]model.LayerUsage, error) {
	m.CallCount++

	return m.ReturnUsage, m.ReturnError
}

func (m *SimpleStorageMock) AllIterator() (iter.Seq[model.LayerEventWithTimestamp], error) {
	return func(func(model.LayerEventWithTimestamp) bool) {}, nil
}

func (m *SimpleStorageMock) Close() {}

func (m *SimpleStorageMock) Store(model.Event) error {
	return nil
}

type TrackerMock struct {
	ReturnUsage []model.LayerUsage
	CallCount   int
}

func (m *TrackerMock) HandleLayersNow(model.LayerState) {}

func (m *TrackerMock) GatherUsage() []model.LayerUsage {
	m.CallCount++

	return m.ReturnUsage
}

// newTestHandler builds a 1x2 keyboard with layers
// 0: A B, 1: ▽ MO(2), 2: C ▽.
func newTestHandler() *routes.ServerHandler {
	matrix := keymap.NewMatrix([][][]uint16{
		{{0x0004, 0x0005}},
		{{0x0001, 0x5222}},
		{{0x0006, 0x0001}},
	}, 1, 2)

	handler := &routes.ServerHandler{
		State:  keymap.NewSharedState(time.Minute),
		Matrix: matrix,
	}

	handler.SetDisplay(routes.Display{Unit: 60, PositionCSS: "bottom:10px;right:10px;", RefreshMillis: 100})

	handler.SetLayout(&model.Layout{
		Name: "LAYOUT",
		Keys: []model.Key{
			{RowCol: model.RowCol{Row: 0, Col: 0}, W: 1, H: 1},
			{RowCol: model.RowCol{Row: 0, Col: 1}, X: 1, W: 1, H: 1},
		},
	})

	return handler
}
