package routes_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOverlayHandle(t *testing.T) {
	t.Run("renders nothing while hidden", func(t *testing.T) {
		handler := newTestHandler()

		recorder := httptest.NewRecorder()
		handler.OverlayHandle(recorder, httptest.NewRequest("GET", "/", nil))

		assert.Equal(t, 200, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "<svg")
		assert.Contains(t, recorder.Body.String(), "location.reload")
	})

	t.Run("renders the momentary layer", func(t *testing.T) {
		handler := newTestHandler()
		handler.State.SetLayers(1, 1<<2)

		recorder := httptest.NewRecorder()
		handler.OverlayHandle(recorder, httptest.NewRequest("GET", "/", nil))

		body := recorder.Body.String()
		assert.Contains(t, body, "<svg")
		assert.Contains(t, body, ">C</text>")
		assert.Contains(t, body, ">B</text>", "transparent key falls back to layer 0")
		assert.Contains(t, body, "bottom:10px;right:10px;")
	})
}

func TestBuildOverlayRenderContext(t *testing.T) {
	handler := newTestHandler()
	handler.State.SetLayers(1, 1<<1)

	rc := handler.BuildOverlayRenderContext(time.Now())

	require.Len(t, rc.Keys, 2)
	assert.True(t, rc.Visible)
	assert.Equal(t, "A", rc.Keys[0].Label)
	assert.Equal(t, "MO(2)", rc.Keys[1].Label)
	assert.Equal(t, uint8(2), rc.Keys[1].Layer)
	assert.Equal(t, "0 0 120 60", rc.ViewBoxSize())
}

func TestStateHandle(t *testing.T) {
	handler := newTestHandler()
	handler.State.SetLayers(1, 1<<2)

	recorder := httptest.NewRecorder()
	handler.StateHandle(recorder, httptest.NewRequest("GET", "/state", nil))

	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var state struct {
		Default   uint32 `json:"default"`
		Momentary uint32 `json:"momentary"`
		Visible   bool   `json:"visible"`
		Layout    string `json:"layout"`
		Keys      []struct {
			Layer      uint8  `json:"layer"`
			Background bool   `json:"background"`
			Label      string `json:"label"`
			Kind       string `json:"kind"`
		} `json:"keys"`
	}

	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &state))

	assert.Equal(t, uint32(1), state.Default)
	assert.Equal(t, uint32(4), state.Momentary)
	assert.True(t, state.Visible)
	assert.Equal(t, "LAYOUT", state.Layout)
	require.Len(t, state.Keys, 2)
	assert.Equal(t, uint8(2), state.Keys[0].Layer)
	assert.Equal(t, "C", state.Keys[0].Label)
	assert.Equal(t, uint8(0), state.Keys[1].Layer)
	assert.True(t, state.Keys[1].Background)
	assert.Equal(t, "B", state.Keys[1].Label)
}
