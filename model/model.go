package model

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

var ErrLayoutNotFound = errors.New("layout not found")

// MaxLayers is the width of the layer bitmasks reported by the firmware.
const MaxLayers = 32

// Position of a switch in the keyboard matrix.
type RowCol struct {
	Row int
	Col int
}

// Key is a single switch drawn by a layout. X, Y, W and H are in key units.
type Key struct {
	RowCol
	X float64
	Y float64
	W float64
	H float64
}

type Layout struct {
	Name string
	Keys []Key
}

// Dimensions returns the bottom-right corner of the bounding box of all keys.
func (l *Layout) Dimensions() (float64, float64) {
	var maxX, maxY float64

	for _, k := range l.Keys {
		maxX = max(maxX, k.X+k.W)
		maxY = max(maxY, k.Y+k.H)
	}

	return maxX, maxY
}

type KeyboardInfo struct {
	VendorID  uint16
	ProductID uint16
	Rows      int
	Cols      int
	Layouts   []Layout
	// Aliases maps an alternative layout name to a canonical one.
	Aliases map[string]string
}

func (k *KeyboardInfo) LayoutNames() []string {
	names := make([]string, 0, len(k.Layouts))
	for _, l := range k.Layouts {
		names = append(names, l.Name)
	}

	return names
}

// Layout finds a layout by its name, falling back to layout aliases.
func (k *KeyboardInfo) Layout(name string) (*Layout, error) {
	find := func(n string) *Layout {
		i := slices.IndexFunc(k.Layouts, func(l Layout) bool { return l.Name == n })
		if i < 0 {
			return nil
		}

		return &k.Layouts[i]
	}

	if l := find(name); l != nil {
		return l, nil
	}

	if alias, ok := k.Aliases[name]; ok {
		if l := find(alias); l != nil {
			return l, nil
		}
	}

	return nil, fmt.Errorf("layout '%s' not found and no matching alias: %w", name, ErrLayoutNotFound)
}

// LayerState holds the layer bitmasks last reported by the keyboard.
type LayerState struct {
	Momentary uint32
	Default   uint32
}

func (s LayerState) IsMomentary(layer int) bool {
	return layer >= 0 && layer < MaxLayers && s.Momentary&(1<<layer) != 0
}

func (s LayerState) IsDefault(layer int) bool {
	return layer >= 0 && layer < MaxLayers && s.Default&(1<<layer) != 0
}

// HighestLayer returns the highest layer set in either mask, 0 if none are.
func (s LayerState) HighestLayer() int {
	combined := s.Momentary | s.Default
	for i := MaxLayers - 1; i > 0; i-- {
		if combined&(1<<i) != 0 {
			return i
		}
	}

	return 0
}

// Event is one decoded device report: KeyEvent, LayerEvent or MomentaryEvent.
type Event interface {
	event()
}

type KeyEvent struct {
	Row     int
	Col     int
	Pressed bool
}

// LayerEvent carries both bitmasks reported by the combined layer report.
type LayerEvent struct {
	Default   uint32
	Momentary uint32
}

// MomentaryEvent only updates the momentary mask.
type MomentaryEvent struct {
	Mask uint32
}

func (KeyEvent) event()       {}
func (LayerEvent) event()     {}
func (MomentaryEvent) event() {}

type LayerEventWithTimestamp struct {
	Default   uint32
	Momentary uint32
	Timestamp time.Time
}

type LayerUsage struct {
	Layer int
	Count int
}
