package components

import (
	"fmt"
	"math"

	"github.com/dasdy/layerlens/keycode"
)

type RGBA struct {
	R, G, B, A uint8
}

const (
	keyAlpha          = 239
	desaturateFactor  = 0.7
	specialDarkening  = 0.6
	modifierDarkening = 0.3
	borderDarkening   = 0.2
)

var (
	black      = RGBA{0, 0, 0, keyAlpha}
	white      = RGBA{255, 255, 255, 255}
	layerOther = RGBA{127, 127, 127, keyAlpha}

	layerPalette = []RGBA{
		{83, 83, 83, keyAlpha},
		{80, 140, 115, keyAlpha},
		{100, 115, 150, keyAlpha},
		{140, 110, 150, keyAlpha},
		{95, 121, 127, keyAlpha},
		{147, 137, 110, keyAlpha},
	}
)

// Lerp moves c towards other by t in [0, 1].
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}

	return RGBA{mix(c.R, other.R), mix(c.G, other.G), mix(c.B, other.B), mix(c.A, other.A)}
}

func (c RGBA) CSS() string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

type KeyColors struct {
	Background RGBA
	Border     RGBA
	Font       RGBA
}

func LayerColor(layer uint8) RGBA {
	if int(layer) < len(layerPalette) {
		return layerPalette[layer]
	}

	return layerOther
}

// ColorsFor picks key colours. Background keys are faded towards the layer 0
// colour, except on layer 0 itself.
func ColorsFor(layer uint8, kind keycode.Kind, background bool) KeyColors {
	bg := LayerColor(layer)

	switch kind {
	case keycode.Special:
		bg = bg.Lerp(black, specialDarkening)
	case keycode.Modifier:
		bg = bg.Lerp(black, modifierDarkening)
	case keycode.Basic:
	}

	border := bg.Lerp(black, borderDarkening)
	font := white

	if background {
		if layer != 0 {
			bg = bg.Lerp(layerPalette[0], desaturateFactor)
			border = border.Lerp(layerPalette[0], desaturateFactor)
		}

		font.A = uint8(math.Round(255 * (1 - desaturateFactor)))
	}

	return KeyColors{Background: bg, Border: border, Font: font}
}
