package db

import (
	"iter"
	"log/slog"
	"sync"

	"github.com/dasdy/layerlens/model"
	"github.com/schollz/progressbar/v3"
)

// LayerTracker counts activations: how many times each layer became the top
// active layer.
type LayerTracker struct {
	counts    [model.MaxLayers]int
	lastTop   int
	stateLock sync.RWMutex
	ready     chan struct{}
}

func newLayerTracker() *LayerTracker {
	return &LayerTracker{
		lastTop:   -1,
		stateLock: sync.RWMutex{},
		ready:     make(chan struct{}),
	}
}

// NewLayerTrackerFromDB replays the stored history in the background.
func NewLayerTrackerFromDB(storage Storage, showProgress bool) (*LayerTracker, error) {
	tracker := newLayerTracker()

	iterator, err := storage.AllIterator()
	if err != nil {
		return nil, err
	}

	go tracker.initLayerCounter(iterator, showProgress)

	return tracker, nil
}

// NewEmptyLayerTracker starts with no history.
func NewEmptyLayerTracker() *LayerTracker {
	tracker := newLayerTracker()
	close(tracker.ready)

	return tracker
}

// Ready is closed once the stored history has been replayed.
func (t *LayerTracker) Ready() <-chan struct{} {
	return t.ready
}

func (t *LayerTracker) HandleLayersNow(state model.LayerState) {
	t.stateLock.Lock()
	defer t.stateLock.Unlock()

	t.handleLayers(state)
}

func (t *LayerTracker) handleLayers(state model.LayerState) {
	top := state.HighestLayer()
	if top == t.lastTop {
		return
	}

	t.lastTop = top
	t.counts[top]++
}

func (t *LayerTracker) GatherUsage() []model.LayerUsage {
	t.stateLock.RLock()
	defer t.stateLock.RUnlock()

	result := make([]model.LayerUsage, 0)

	for layer, count := range t.counts {
		if count > 0 {
			result = append(result, model.LayerUsage{Layer: layer, Count: count})
		}
	}

	return result
}

func (t *LayerTracker) initLayerCounter(items iter.Seq[model.LayerEventWithTimestamp], showProgress bool) {
	defer close(t.ready)

	var bar *progressbar.ProgressBar
	if showProgress {
		bar = progressbar.Default(-1, "Scanning history...")
	}

	t.stateLock.Lock()
	defer t.stateLock.Unlock()

	for item := range items {
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Error("could not update progress bar", "error", err)
			}
		}

		t.handleLayers(model.LayerState{Default: item.Default, Momentary: item.Momentary})
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			slog.Error("could not finish progress bar", "error", err)
		}
	}
}
