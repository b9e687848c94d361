// Package keylog turns the keyboard's report stream into shared layer and
// key state.
package keylog

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/dasdy/layerlens/db"
	"github.com/dasdy/layerlens/keylog/parser"
	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/logging"
	"github.com/dasdy/layerlens/model"
)

var ErrStreamClosed = errors.New("report stream closed")

type FeedConfig struct {
	// Name identifies the device in log records.
	Name string
	// Storage and Tracker are optional.
	Storage db.Storage
	Tracker db.Tracker
	Verbose bool
}

// Feed is the only writer of the shared layer state and the pressed grid.
type Feed struct {
	reader  io.Reader
	state   *keymap.SharedState
	matrix  *keymap.Matrix
	cfg     FeedConfig
	updates chan struct{}
}

func NewFeed(reader io.Reader, state *keymap.SharedState, matrix *keymap.Matrix, cfg FeedConfig) *Feed {
	return &Feed{
		reader:  reader,
		state:   state,
		matrix:  matrix,
		cfg:     cfg,
		updates: make(chan struct{}, 1),
	}
}

// Updates receives a value after each applied event. Notifications coalesce
// when the receiver is slow.
func (f *Feed) Updates() <-chan struct{} {
	return f.updates
}

// Run reads reports until ctx is done or the stream ends.
func (f *Feed) Run(ctx context.Context) error {
	ctx = logging.AppendCtx(logging.ComponentCtx(ctx, "feed"), slog.String("device", f.cfg.Name))
	reports := ports.ReadReports(ctx, f.reader, ports.ReportSize)

	slog.InfoContext(ctx, "Feed started")

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Feed stopped")

			return ctx.Err()
		case report, ok := <-reports:
			if !ok {
				slog.WarnContext(ctx, "Report stream closed")

				return ErrStreamClosed
			}

			f.HandleReport(ctx, report)
		}
	}
}

func (f *Feed) HandleReport(ctx context.Context, report []byte) {
	event, err := parser.ParseReport(report)
	if err != nil {
		slog.WarnContext(ctx, "Got malformed report", "error", err, "report", report)

		return
	}

	if event == nil {
		return
	}

	if f.cfg.Verbose {
		slog.InfoContext(ctx, "Event!", "event", event)
	}

	f.apply(ctx, event)

	select {
	case f.updates <- struct{}{}:
	default:
	}
}

func (f *Feed) apply(ctx context.Context, event model.Event) {
	var record model.Event

	switch e := event.(type) {
	case model.LayerEvent:
		f.state.SetLayers(e.Default, e.Momentary)
		record = e
	case model.MomentaryEvent:
		f.state.SetMomentary(e.Mask)

		layers := f.state.Snapshot().Layers
		record = model.LayerEvent{Default: layers.Default, Momentary: layers.Momentary}
	case model.KeyEvent:
		if f.matrix != nil {
			f.matrix.SetPressed(e.Row, e.Col, e.Pressed)
		}

		record = e
	}

	if layerEvent, ok := record.(model.LayerEvent); ok && f.cfg.Tracker != nil {
		f.cfg.Tracker.HandleLayersNow(model.LayerState{Default: layerEvent.Default, Momentary: layerEvent.Momentary})
	}

	if f.cfg.Storage != nil && record != nil {
		if err := f.cfg.Storage.Store(record); err != nil {
			slog.ErrorContext(ctx, "Could not store event", "error", err)
		}
	}
}
