package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"github.com/a-h/templ"
	"github.com/dasdy/layerlens/db"
	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/model"
)

// ServerHandler holds all dependencies needed for the web server handlers.
type ServerHandler struct {
	State  *keymap.SharedState
	Matrix *keymap.Matrix
	// Storage and Tracker are optional.
	Storage db.Storage
	Tracker db.Tracker

	layout  atomic.Pointer[model.Layout]
	display atomic.Pointer[Display]
}

// Display controls how the overlay page is drawn.
type Display struct {
	// Unit is the size of one key unit in pixels.
	Unit          float64
	PositionCSS   string
	RefreshMillis int
}

func (s *ServerHandler) SetDisplay(d Display) {
	s.display.Store(&d)
}

func (s *ServerHandler) Display() Display {
	if d := s.display.Load(); d != nil {
		return *d
	}

	return Display{Unit: 60}
}

func (s *ServerHandler) SetLayout(l *model.Layout) {
	s.layout.Store(l)
}

func (s *ServerHandler) Layout() *model.Layout {
	if l := s.layout.Load(); l != nil {
		return l
	}

	return &model.Layout{}
}

// SafeRenderTemplate safely renders a templ component to an http.ResponseWriter.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

func renderOrFail(component templ.Component, w http.ResponseWriter) {
	if err := SafeRenderTemplate(component, w); err != nil {
		slog.Error("Failed to render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
