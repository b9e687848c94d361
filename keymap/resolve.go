package keymap

import (
	"github.com/dasdy/layerlens/keycode"
	"github.com/dasdy/layerlens/model"
)

// EffectiveLayer finds the layer whose keycode is in effect at (row, col).
//
// Layers are scanned from the top down to 1; the first active (default or
// momentary) layer with a non-transparent keycode wins. A key taken from a
// default layer is reported as background when a momentary layer above it is
// engaged. Layer 0 is the fallback and is background if any momentary layer
// was seen on the way down.
func EffectiveLayer(m *Matrix, state model.LayerState, row, col int) (uint8, bool) {
	layers := min(m.Layers(), model.MaxLayers)
	momentarySeen := false

	for i := layers - 1; i > 0; i-- {
		isDefault := state.IsDefault(i)
		isMomentary := state.IsMomentary(i)

		if (isDefault || isMomentary) && !keycode.IsTransparent(m.Keycode(i, row, col)) {
			return uint8(i), isDefault && momentarySeen
		}

		momentarySeen = momentarySeen || isMomentary
	}

	return 0, momentarySeen
}

type ResolvedKey struct {
	model.Key
	Layer      uint8
	Background bool
	Keycode    uint16
	Label      keycode.Label
	Pressed    bool
}

// ColorLayer is the layer a key should be coloured by: the layer a layer
// action points at, or the layer the key was found on.
func (k ResolvedKey) ColorLayer() uint8 {
	if k.Label.HasLayerRef {
		return k.Label.LayerRef
	}

	return k.Layer
}

// Resolve computes the effective keycode and label of every key in layout.
func Resolve(m *Matrix, state model.LayerState, layout *model.Layout) []ResolvedKey {
	result := make([]ResolvedKey, 0, len(layout.Keys))

	for _, key := range layout.Keys {
		layer, background := EffectiveLayer(m, state, key.Row, key.Col)
		code := m.Keycode(int(layer), key.Row, key.Col)

		result = append(result, ResolvedKey{
			Key:        key,
			Layer:      layer,
			Background: background,
			Keycode:    code,
			Label:      keycode.Decode(code),
			Pressed:    m.IsPressed(key.Row, key.Col),
		})
	}

	return result
}
