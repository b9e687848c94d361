package model_test

import (
	"testing"

	"github.com/dasdy/layerlens/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutDimensions(t *testing.T) {
	tests := []struct {
		name          string
		keys          []model.Key
		width, height float64
	}{
		{"empty layout", nil, 0, 0},
		{"single key", []model.Key{{X: 0, Y: 0, W: 1, H: 1}}, 1, 1},
		{
			"wide and tall keys",
			[]model.Key{
				{X: 0, Y: 0, W: 1, H: 1},
				{X: 1, Y: 0, W: 2.25, H: 1},
				{X: 4, Y: 0.5, W: 1, H: 2},
			},
			5, 2.5,
		},
		{"offset key", []model.Key{{X: 6.5, Y: 3.25, W: 1.5, H: 1}}, 8, 4.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := model.Layout{Name: "LAYOUT", Keys: tt.keys}

			width, height := layout.Dimensions()

			assert.InDelta(t, tt.width, width, 1e-9)
			assert.InDelta(t, tt.height, height, 1e-9)
		})
	}
}

func TestKeyboardInfoLayout(t *testing.T) {
	info := model.KeyboardInfo{
		Layouts: []model.Layout{{Name: "LAYOUT_split"}, {Name: "LAYOUT_ortho"}},
		Aliases: map[string]string{"LAYOUT": "LAYOUT_split", "BROKEN": "LAYOUT_missing"},
	}

	l, err := info.Layout("LAYOUT_ortho")
	require.NoError(t, err)
	assert.Equal(t, "LAYOUT_ortho", l.Name)

	l, err = info.Layout("LAYOUT")
	require.NoError(t, err)
	assert.Equal(t, "LAYOUT_split", l.Name)

	_, err = info.Layout("BROKEN")
	require.ErrorIs(t, err, model.ErrLayoutNotFound)

	assert.Equal(t, []string{"LAYOUT_split", "LAYOUT_ortho"}, info.LayoutNames())
}

func TestLayerStateHighestLayer(t *testing.T) {
	assert.Equal(t, 0, model.LayerState{Default: 1}.HighestLayer())
	assert.Equal(t, 3, model.LayerState{Default: 1, Momentary: 1<<3 | 1<<1}.HighestLayer())
	assert.Equal(t, 2, model.LayerState{Default: 1 << 2}.HighestLayer())
}
