package components_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dasdy/layerlens/keycode"
	"github.com/dasdy/layerlens/keymap"
	"github.com/dasdy/layerlens/model"
	"github.com/dasdy/layerlens/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolved(x, y, w, h float64, label keycode.Label, layer uint8, background bool) keymap.ResolvedKey {
	return keymap.ResolvedKey{
		Key:        model.Key{X: x, Y: y, W: w, H: h},
		Layer:      layer,
		Background: background,
		Label:      label,
	}
}

func renderContext(unit float64, keys ...keymap.ResolvedKey) components.RenderContext {
	layout := &model.Layout{Name: "test"}
	for _, k := range keys {
		layout.Keys = append(layout.Keys, k.Key)
	}

	return components.NewRenderContext(layout, keys, unit)
}

func TestToTransform(t *testing.T) {
	tests := []struct {
		name string
		key  components.KeyView
		want string
	}{
		{"zero translation", components.KeyView{}, "translate(0.00, 0.00)"},
		{"positive translation", components.KeyView{X: 60, Y: 120}, "translate(60.00, 120.00)"},
		{"fractional translation", components.KeyView{X: 1.5, Y: 2.25}, "translate(1.50, 2.25)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.ToTransform(&tt.key))
		})
	}
}

func TestNewRenderContext(t *testing.T) {
	t.Run("empty layout", func(t *testing.T) {
		rc := renderContext(60)

		assert.Equal(t, "0 0 0 0", rc.ViewBoxSize())
	})

	t.Run("scales keys by unit", func(t *testing.T) {
		rc := renderContext(60,
			resolved(0, 0, 1, 1, keycode.Decode(0x04), 0, false),
			resolved(2, 1, 1.5, 2, keycode.Decode(0x5221), 2, false),
		)

		assert.Equal(t, "0 0 210 180", rc.ViewBoxSize())
		require.Len(t, rc.Keys, 2)
		assert.InDelta(t, 120.0, rc.Keys[1].X, 0.001)
		assert.InDelta(t, 90.0, rc.Keys[1].W, 0.001)
		assert.Equal(t, "MO(1)", rc.Keys[1].Label)
		assert.Equal(t, uint8(1), rc.Keys[1].Layer, "layer actions are coloured by their target")
	})

	t.Run("size comes from the layout", func(t *testing.T) {
		layout := &model.Layout{Keys: []model.Key{
			{X: 0, Y: 0, W: 1, H: 1},
			{X: 3, Y: 2, W: 2.25, H: 1},
		}}

		rc := components.NewRenderContext(layout, nil, 10)

		assert.InDelta(t, 52.5, rc.Width, 0.001)
		assert.InDelta(t, 30.0, rc.Height, 0.001)
		assert.Empty(t, rc.Keys)
	})
}

func TestFitLabel(t *testing.T) {
	tests := []struct {
		name  string
		label keycode.Label
		width float64
		want  string
	}{
		{"long fits", keycode.Label{Long: "Space"}, 1, "Space"},
		{"short used when long does not fit", keycode.Label{Long: "Print Screen", Short: "PrtSc"}, 1, "PrtSc"},
		{"wide key shows long", keycode.Label{Long: "Print Screen", Short: "PrtSc"}, 2.5, "Print Screen"},
		{"truncated", keycode.Label{Long: "LCTL(A)"}, 1, "LC..."},
		{"nothing fits", keycode.Label{Long: "Backspace"}, 0.5, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.FitLabel(tt.label, tt.width))
		})
	}
}

func TestColorsFor(t *testing.T) {
	base := components.ColorsFor(1, keycode.Basic, false)
	assert.Equal(t, components.LayerColor(1), base.Background)
	assert.Equal(t, uint8(255), base.Font.A)

	special := components.ColorsFor(1, keycode.Special, false)
	assert.Less(t, special.Background.G, base.Background.G)

	faded := components.ColorsFor(1, keycode.Basic, true)
	assert.NotEqual(t, base.Background, faded.Background)
	assert.Less(t, faded.Font.A, base.Font.A)

	layer0 := components.ColorsFor(0, keycode.Basic, true)
	assert.Equal(t, components.LayerColor(0), layer0.Background, "layer 0 is never faded")

	assert.Equal(t, components.LayerColor(6), components.LayerColor(200))
}

func TestOverlay(t *testing.T) {
	rc := renderContext(60, resolved(0, 0, 1, 1, keycode.Label{Long: "<&>"}, 0, false))

	var buf bytes.Buffer

	require.NoError(t, components.Overlay(&rc).Render(context.Background(), &buf))
	assert.Empty(t, buf.String(), "hidden overlay renders nothing")

	rc.Visible = true
	rc.PositionCSS = "top:0px;left:0px;"

	require.NoError(t, components.Page("layerlens", 250, components.Overlay(&rc)).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, `viewBox="0 0 60 60"`)
	assert.Contains(t, html, "&lt;&amp;&gt;")
	assert.Contains(t, html, "location.reload")
}
