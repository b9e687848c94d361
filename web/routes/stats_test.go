package routes_test

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/layerlens/model"
	"github.com/stretchr/testify/assert"
)

func TestStatsHandle(t *testing.T) {
	t.Run("renders both tables", func(t *testing.T) {
		handler := newTestHandler()
		storage := &SimpleStorageMock{ReturnUsage: []model.LayerUsage{{Layer: 3, Count: 42}}}
		tracker := &TrackerMock{ReturnUsage: []model.LayerUsage{{Layer: 1, Count: 7}}}
		handler.Storage = storage
		handler.Tracker = tracker

		recorder := httptest.NewRecorder()
		handler.StatsHandle(recorder, httptest.NewRequest("GET", "/stats", nil))

		body := recorder.Body.String()
		assert.Equal(t, 200, recorder.Code)
		assert.Contains(t, body, "<td>42</td>")
		assert.Contains(t, body, "<td>7</td>")
		assert.Equal(t, 1, storage.CallCount)
		assert.Equal(t, 1, tracker.CallCount)
	})

	t.Run("works without history", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		newTestHandler().StatsHandle(recorder, httptest.NewRequest("GET", "/stats", nil))

		assert.Equal(t, 200, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Layer activations")
	})

	t.Run("reports storage errors", func(t *testing.T) {
		handler := newTestHandler()
		handler.Storage = &SimpleStorageMock{ReturnError: errors.New("db is gone")}

		recorder := httptest.NewRecorder()
		handler.StatsHandle(recorder, httptest.NewRequest("GET", "/stats", nil))

		assert.Equal(t, 500, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "db is gone")
	})
}
