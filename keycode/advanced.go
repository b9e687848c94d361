package keycode

import (
	"fmt"
	"strings"
)

// advancedLabel decodes the bit-field encoded keycodes. It must run after the
// layer action ranges, which sit inside the same quantum block.
func advancedLabel(code uint16) (Label, bool) {
	switch {
	case QKMods.Contains(code):
		return modsLabel(code)
	case QKModTap.Contains(code):
		rest := code &^ QKModTap.Start
		mods := (rest >> 8) & 0x1F

		return Label{
			Long: fmt.Sprintf("MT(%s,%s)", modMaskString(mods), basicName(rest&qkBasicMask)),
			Kind: Modifier,
		}, true
	case QKLayerMod.Contains(code):
		rest := code &^ QKLayerMod.Start
		layer := rest >> 5

		return Label{
			Long:        fmt.Sprintf("LM(%d,%s)", layer, modMaskString(rest&0x1F)),
			Kind:        Modifier,
			LayerRef:    uint8(layer),
			HasLayerRef: true,
		}, true
	case QKOneShotMod.Contains(code):
		rest := code &^ QKOneShotMod.Start

		return Label{
			Long: fmt.Sprintf("OSM(%s)", modMaskString(rest)),
			Kind: Modifier,
		}, true
	case QKLayerTap.Contains(code):
		rest := code &^ QKLayerTap.Start
		layer := rest >> 8

		return Label{
			Long:        fmt.Sprintf("LT(%d,%s)", layer, basicName(rest&qkBasicMask)),
			Kind:        Modifier,
			LayerRef:    uint8(layer),
			HasLayerRef: true,
		}, true
	default:
		return Label{}, false
	}
}

func modsLabel(code uint16) (Label, bool) {
	key := basicName(code & qkBasicMask)
	mods := code & qkModsMask

	for _, m := range modifierCombos {
		if m.value == mods {
			return Label{Long: fmt.Sprintf("%s(%s)", m.name, key), Kind: Modifier}, true
		}
	}

	// Left and right side modifiers can't be mixed, bit 12 selects the side.
	rightSide := mods&qkRModsMin != 0

	var enabled []string

	for _, m := range singleModifiers {
		if (m.value >= qkRModsMin) != rightSide {
			continue
		}

		if mods&m.value == m.value {
			enabled = append(enabled, m.name)
		}
	}

	if len(enabled) == 0 {
		return Label{}, false
	}

	var b strings.Builder
	for _, name := range enabled {
		b.WriteString(name)
		b.WriteByte('(')
	}

	b.WriteString(key)
	b.WriteString(strings.Repeat(")", len(enabled)))

	return Label{Long: b.String(), Kind: Modifier}, true
}

func modMaskString(mask uint16) string {
	var mods []string

	for _, m := range modBitNames {
		if mask&m.value != 0 {
			mods = append(mods, m.name)
		}
	}

	if len(mods) == 0 {
		return "None"
	}

	return strings.Join(mods, " | ")
}
