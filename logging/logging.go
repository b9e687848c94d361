// Package logging sets up the slog handler and carries per-context log
// attributes.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"gitlab.com/greyxor/slogor"
)

type ctxKey string

const (
	slogFields ctxKey = "slog_fields"
	// ComponentKey names the part of the program that logged a record.
	ComponentKey string = "component"
)

// ContextHandler adds attributes stored with AppendCtx to every record.
type ContextHandler struct {
	slog.Handler
}

func (h ContextHandler) Handle(ctx context.Context, r slog.Record) error {
	if attrs, ok := ctx.Value(slogFields).([]slog.Attr); ok {
		r.AddAttrs(attrs...)
	}

	if err := h.Handler.Handle(ctx, r); err != nil {
		return fmt.Errorf("error handling record for a log: %+v: %w", r, err)
	}

	return nil
}

func (h ContextHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithAttrs(attrs)}
}

func (h ContextHandler) WithGroup(name string) slog.Handler {
	return ContextHandler{Handler: h.Handler.WithGroup(name)}
}

// AppendCtx adds an slog attribute to the provided context so that it will be
// included in any Record created with such context.
func AppendCtx(parent context.Context, attr slog.Attr) context.Context {
	existing, _ := parent.Value(slogFields).([]slog.Attr)

	attrs := make([]slog.Attr, 0, len(existing)+1)
	attrs = append(attrs, existing...)
	attrs = append(attrs, attr)

	return context.WithValue(parent, slogFields, attrs)
}

func ComponentCtx(parent context.Context, component string) context.Context {
	return AppendCtx(parent, slog.String(ComponentKey, component))
}

// NewLogger builds the colourised console logger.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	if verbose {
		return slog.New(ContextHandler{Handler: slogor.NewHandler(w,
			slogor.SetLevel(slog.LevelDebug),
			slogor.SetTimeFormat(time.DateTime),
			slogor.ShowSource())})
	}

	return slog.New(ContextHandler{Handler: slogor.NewHandler(w,
		slogor.SetLevel(slog.LevelInfo),
		slogor.SetTimeFormat(time.DateTime))})
}
