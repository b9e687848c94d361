package db

import (
	"iter"

	"github.com/dasdy/layerlens/model"
)

// Tracker counts how often each layer becomes the top active layer.
type Tracker interface {
	HandleLayersNow(state model.LayerState)
	GatherUsage() []model.LayerUsage
}

type Storage interface {
	Store(event model.Event) error
	GatherLayerUsage() ([]model.LayerUsage, error)
	AllIterator() (iter.Seq[model.LayerEventWithTimestamp], error)
	Close()
}
