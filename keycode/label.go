// Package keycode turns the 16-bit keycodes stored in a QMK dynamic keymap
// into labels that can be drawn on a key.
package keycode

import "fmt"

type Kind int

const (
	Basic Kind = iota
	Modifier
	Special
)

func (k Kind) String() string {
	switch k {
	case Modifier:
		return "modifier"
	case Special:
		return "special"
	default:
		return "basic"
	}
}

// Label is a decoded keycode. Short is empty when Long always fits.
type Label struct {
	Long  string
	Short string
	Kind  Kind
	// LayerRef is the layer a layer action manipulates, valid when HasLayerRef is set.
	LayerRef    uint8
	HasLayerRef bool
}

// Decode never fails: keycodes it cannot name are rendered in hex.
func Decode(code uint16) Label {
	if l, ok := basicLabel(code); ok {
		return l
	}

	if l, ok := layerLabel(code); ok {
		return l
	}

	if l, ok := advancedLabel(code); ok {
		return l
	}

	return Label{Long: fmt.Sprintf("0x%04X", code)}
}

func IsTransparent(code uint16) bool {
	return code == KCTransparent
}

func basicLabel(code uint16) (Label, bool) {
	l, ok := basicKeycodes[code]

	return l, ok
}

// basicName is the long label of a wrapped basic keycode, hex when unknown.
func basicName(code uint16) string {
	if l, ok := basicKeycodes[code]; ok && l.Long != "" {
		return l.Long
	}

	return fmt.Sprintf("0x%02X", code)
}
