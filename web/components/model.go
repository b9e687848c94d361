package components

//go:generate go tool templ generate

import (
	"fmt"

	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/model"
)

// Gap between neighbouring keys, in key units.
const keyInset = 0.06

type KeyView struct {
	X, Y, W, H float64
	Label      string
	Colors     KeyColors
	Pressed    bool
	Layer      uint8
}

// RenderContext is everything the overlay page needs. Sizes are in pixels.
type RenderContext struct {
	Unit          float64
	Width         float64
	Height        float64
	Keys          []KeyView
	Visible       bool
	PositionCSS   string
	RefreshMillis int
	Layers        model.LayerState
}

// NewRenderContext scales the resolved keys of layout to pixels.
func NewRenderContext(layout *model.Layout, keys []keymap.ResolvedKey, unit float64) RenderContext {
	views := make([]KeyView, 0, len(keys))

	for _, k := range keys {
		colorLayer := k.ColorLayer()

		views = append(views, KeyView{
			X:       k.X * unit,
			Y:       k.Y * unit,
			W:       k.W * unit,
			H:       k.H * unit,
			Label:   FitLabel(k.Label, k.W),
			Colors:  ColorsFor(colorLayer, k.Label.Kind, k.Background),
			Pressed: k.Pressed,
			Layer:   colorLayer,
		})
	}

	width, height := layout.Dimensions()

	return RenderContext{Unit: unit, Width: width * unit, Height: height * unit, Keys: views}
}

func (r *RenderContext) ViewBoxSize() string {
	return fmt.Sprintf("0 0 %.0f %.0f", r.Width, r.Height)
}

func ToTransform(k *KeyView) string {
	return fmt.Sprintf("translate(%.2f, %.2f)", k.X, k.Y)
}

func (r *RenderContext) inset() float64 {
	return keyInset * r.Unit
}

func (r *RenderContext) rectWidth(k *KeyView) string {
	return px(max(k.W-2*r.inset(), 0))
}

func (r *RenderContext) rectHeight(k *KeyView) string {
	return px(max(k.H-2*r.inset(), 0))
}

func (r *RenderContext) cornerRadius() string {
	return px(0.1 * r.Unit)
}

func (r *RenderContext) fontSize() string {
	return px(FontRatio * r.Unit)
}

func strokeWidth(k *KeyView) string {
	if k.Pressed {
		return "3.0"
	}

	return "1.0"
}

func px(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func wholePx(v float64) string {
	return fmt.Sprintf("%.0f", v)
}

func layerCellStyle(layer int) string {
	return fmt.Sprintf("background:%s;color:#fff", LayerColor(uint8(min(layer, 255))).CSS())
}
