package layout_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dasdy/layerlens/layout"
	"github.com/dasdy/layerlens/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pins(n int) string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf(`"GP%d"`, i)
	}

	return "[" + strings.Join(names, ",") + "]"
}

func infoJSON(rows, cols int, keys string) string {
	return fmt.Sprintf(`{
		"usb": {"vid": "0xFEED", "pid": "0x6060"},
		"matrix_pins": {"rows": %s, "cols": %s},
		"layouts": {"LAYOUT": {"layout": [%s]}}
	}`, pins(rows), pins(cols), keys)
}

func TestLoadKeyboardInfo(t *testing.T) {
	t.Run("reads matrix size and keys", func(t *testing.T) {
		info, err := layout.LoadKeyboardInfo(strings.NewReader(infoJSON(4, 12, `{"matrix": [1, 5], "x": 5, "y": 1}`)))
		require.NoError(t, err)

		assert.Equal(t, uint16(0xFEED), info.VendorID)
		assert.Equal(t, uint16(0x6060), info.ProductID)
		assert.Equal(t, 4, info.Rows)
		assert.Equal(t, 12, info.Cols)
		assert.Equal(t, []string{"LAYOUT"}, info.LayoutNames())

		l, err := info.Layout("LAYOUT")
		require.NoError(t, err)
		require.Len(t, l.Keys, 1)
		assert.Equal(t, model.Key{RowCol: model.RowCol{Row: 1, Col: 5}, X: 5, Y: 1, W: 1, H: 1}, l.Keys[0])
	})

	t.Run("reads split keyboard file", func(t *testing.T) {
		info, err := layout.LoadFile(filepath.Join("testdata", "split_3x6.json"))
		require.NoError(t, err)

		assert.Equal(t, uint16(0x4653), info.VendorID)
		assert.Equal(t, uint16(0x0001), info.ProductID)
		assert.Equal(t, 4, info.Rows, "split keyboards double the row count")
		assert.Equal(t, 3, info.Cols)

		l, err := info.Layout("LAYOUT")
		require.NoError(t, err, "alias resolves to the real layout")
		assert.Equal(t, "LAYOUT_split", l.Name)
		require.Len(t, l.Keys, 5)
		assert.InDelta(t, 2.0, l.Keys[2].H, 0.001)
		assert.InDelta(t, 1.5, l.Keys[3].W, 0.001)
		assert.Equal(t, model.RowCol{Row: 3, Col: 2}, l.Keys[4].RowCol)
		assert.Zero(t, l.Keys[4].X)

		_, err = info.Layout("LAYOUT_ortho")
		assert.ErrorIs(t, err, model.ErrLayoutNotFound)
	})

	errorCases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "not JSON",
			input:   `{"usb":`,
			wantErr: "could not decode keyboard info JSON",
		},
		{
			name:    "missing usb",
			input:   `{"matrix_pins": {"rows": [], "cols": []}, "layouts": {"L": {"layout": []}}}`,
			wantErr: "usb",
		},
		{
			name: "bad vid",
			input: `{"usb": {"vid": "0xZZ", "pid": "1"}, "matrix_pins": {"rows": [], "cols": []},
				"layouts": {"L": {"layout": []}}}`,
			wantErr: "usb.vid",
		},
		{
			name: "missing layout array",
			input: `{"usb": {"vid": "1", "pid": "1"}, "matrix_pins": {"rows": [], "cols": []},
				"layouts": {"L": {}}}`,
			wantErr: "layouts.L",
		},
		{
			name:    "matrix is not a pair",
			input:   infoJSON(2, 2, `{"matrix": [1]}`),
			wantErr: "matrix",
		},
		{
			name:    "key outside the matrix",
			input:   infoJSON(2, 2, `{"matrix": [1, 2]}`),
			wantErr: "outside the 2x2 matrix",
		},
		{
			name: "alias to unknown layout",
			input: `{"usb": {"vid": "1", "pid": "1"}, "matrix_pins": {"rows": [1], "cols": [1]},
				"layouts": {"L": {"layout": []}}, "layout_aliases": {"X": "Y"}}`,
			wantErr: "unknown layout 'Y'",
		},
	}

	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := layout.LoadKeyboardInfo(strings.NewReader(tc.input))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := layout.LoadFile(filepath.Join(t.TempDir(), "nope.json"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestHexToUint16(t *testing.T) {
	testCases := []struct {
		input string
		want  uint16
		fails bool
	}{
		{input: "0x4653", want: 0x4653},
		{input: "0XfeEd", want: 0xFEED},
		{input: "1", want: 1},
		{input: " 0x0001 ", want: 1},
		{input: "0x10000", fails: true},
		{input: "g", fails: true},
		{input: "", fails: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := layout.HexToUint16(tc.input)
			if tc.fails {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "info.json")

	require.NoError(t, os.WriteFile(path, []byte(infoJSON(1, 1, `{"matrix": [0, 0]}`)), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	updates, err := layout.Watch(ctx, path)
	require.NoError(t, err)

	// Broken edits are skipped.
	require.NoError(t, os.WriteFile(path, []byte(`{"usb":`), 0o600))
	time.Sleep(300 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(infoJSON(2, 3, `{"matrix": [1, 2]}`)), 0o600))

	select {
	case info := <-updates:
		assert.Equal(t, 2, info.Rows)
		assert.Equal(t, 3, info.Cols)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()

	assert.Eventually(t, func() bool {
		_, ok := <-updates

		return !ok
	}, 2*time.Second, 10*time.Millisecond)
}
