package routes

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/layerlens/keymap"
	cs "github.com/dasdy/layerlens/web/components"
)

// BuildOverlayRenderContext resolves every key against the current snapshot.
func (s *ServerHandler) BuildOverlayRenderContext(now time.Time) cs.RenderContext {
	snapshot := s.State.Snapshot()
	display := s.Display()
	layout := s.Layout()
	keys := keymap.Resolve(s.Matrix, snapshot.Layers, layout)

	rc := cs.NewRenderContext(layout, keys, display.Unit)
	rc.Visible = snapshot.Visible(now)
	rc.PositionCSS = display.PositionCSS
	rc.RefreshMillis = display.RefreshMillis
	rc.Layers = snapshot.Layers

	return rc
}

func (s *ServerHandler) OverlayHandle(w http.ResponseWriter, _ *http.Request) {
	rc := s.BuildOverlayRenderContext(time.Now())

	renderOrFail(cs.Page("layerlens", rc.RefreshMillis, cs.Overlay(&rc)), w)
}

type keyState struct {
	Row        int    `json:"row"`
	Col        int    `json:"col"`
	Layer      uint8  `json:"layer"`
	Background bool   `json:"background"`
	Keycode    uint16 `json:"keycode"`
	Label      string `json:"label"`
	Short      string `json:"short,omitempty"`
	Kind       string `json:"kind"`
	Pressed    bool   `json:"pressed"`
}

type overlayState struct {
	Default   uint32     `json:"default"`
	Momentary uint32     `json:"momentary"`
	Visible   bool       `json:"visible"`
	HideAt    *time.Time `json:"hide_at,omitempty"`
	Layout    string     `json:"layout"`
	Keys      []keyState `json:"keys"`
}

// StateHandle reports the current layer state and resolved keys as JSON.
func (s *ServerHandler) StateHandle(w http.ResponseWriter, _ *http.Request) {
	snapshot := s.State.Snapshot()
	l := s.Layout()
	resolved := keymap.Resolve(s.Matrix, snapshot.Layers, l)

	resp := overlayState{
		Default:   snapshot.Layers.Default,
		Momentary: snapshot.Layers.Momentary,
		Visible:   snapshot.Visible(time.Now()),
		Layout:    l.Name,
		Keys:      make([]keyState, 0, len(resolved)),
	}

	if !snapshot.HideAt.IsZero() {
		resp.HideAt = &snapshot.HideAt
	}

	for _, k := range resolved {
		resp.Keys = append(resp.Keys, keyState{
			Row:        k.Row,
			Col:        k.Col,
			Layer:      k.Layer,
			Background: k.Background,
			Keycode:    k.Keycode,
			Label:      k.Label.Long,
			Short:      k.Label.Short,
			Kind:       k.Label.Kind.String(),
			Pressed:    k.Pressed,
		})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to write state", "error", err)
	}
}
