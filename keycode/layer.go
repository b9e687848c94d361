package keycode

import "fmt"

type layerAction struct {
	name     string
	rng      Range
	layerRef bool
}

// Checked in order. DF, CUSTOM and MACRO do not point at a layer to colour by.
var layerActions = []layerAction{
	{"TO", QKTo, true},
	{"MO", QKMomentary, true},
	{"TG", QKToggleLayer, true},
	{"OSL", QKOneShotLayer, true},
	{"TT", QKLayerTapToggle, true},
	{"DF", QKDefLayer, false},
	{"CUSTOM", QKKeyboardSpecific, false},
	{"MACRO", QKMacro, false},
}

func layerLabel(code uint16) (Label, bool) {
	for _, a := range layerActions {
		if !a.rng.Contains(code) {
			continue
		}

		n := code - a.rng.Start
		l := Label{Long: fmt.Sprintf("%s(%d)", a.name, n)}

		if a.layerRef {
			l.LayerRef = uint8(n)
			l.HasLayerRef = true
		}

		return l, true
	}

	return Label{}, false
}
