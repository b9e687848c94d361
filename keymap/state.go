package keymap

import (
	"sync"
	"time"

	"github.com/dasdy/layerlens/model"
)

// Snapshot is a copy of SharedState taken under its lock.
type Snapshot struct {
	Layers model.LayerState
	// HideAt is zero while the overlay must stay visible.
	HideAt time.Time
}

func (s Snapshot) Visible(now time.Time) bool {
	return s.HideAt.IsZero() || now.Before(s.HideAt)
}

// SharedState is written by the device feed only and read by the renderer.
type SharedState struct {
	lock    sync.Mutex
	layers  model.LayerState
	hideAt  time.Time
	timeout time.Duration
	now     func() time.Time
}

// NewSharedState starts hidden: the overlay appears with the first report
// that leaves the base layer.
func NewSharedState(timeout time.Duration) *SharedState {
	return newSharedStateWithClock(timeout, time.Now)
}

func newSharedStateWithClock(timeout time.Duration, now func() time.Time) *SharedState {
	return &SharedState{
		layers:  model.LayerState{Default: 1},
		hideAt:  now(),
		timeout: timeout,
		now:     now,
	}
}

func (s *SharedState) SetLayers(defaultMask, momentaryMask uint32) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.layers = model.LayerState{Default: defaultMask, Momentary: momentaryMask}
	s.updateDeadline()
}

func (s *SharedState) SetMomentary(mask uint32) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.layers.Momentary = mask
	s.updateDeadline()
}

// updateDeadline must be called with the lock held. A zero timeout never
// hides the overlay once it has been shown.
func (s *SharedState) updateDeadline() {
	if s.layers.Momentary&^1 == 0 && s.timeout > 0 {
		s.hideAt = s.now().Add(s.timeout)
	} else {
		s.hideAt = time.Time{}
	}
}

// SetTimeout applies to deadlines set from now on.
func (s *SharedState) SetTimeout(timeout time.Duration) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.timeout = timeout
}

func (s *SharedState) Snapshot() Snapshot {
	s.lock.Lock()
	defer s.lock.Unlock()

	return Snapshot{Layers: s.layers, HideAt: s.hideAt}
}

func (s *SharedState) Visible() bool {
	return s.Snapshot().Visible(s.now())
}
