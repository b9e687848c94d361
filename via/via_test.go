package via_test

import (
	"context"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/dasdy/layerlens/via"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKeyboard answers VIA requests from an in-memory keymap.
type fakeKeyboard struct {
	version  uint16
	layers   int
	keymap   []uint16
	pending  [][]byte
	noise    int
	requests int
}

func (f *fakeKeyboard) Write(p []byte) (int, error) {
	f.requests++

	for range f.noise {
		f.pending = append(f.pending, report(0xFF, 4, 1))
	}

	switch p[0] {
	case via.CmdProtocolVersion:
		r := report(via.CmdProtocolVersion)
		binary.BigEndian.PutUint16(r[1:], f.version)
		f.pending = append(f.pending, r)
	case via.CmdLayerCount:
		f.pending = append(f.pending, report(via.CmdLayerCount, byte(f.layers)))
	case via.CmdKeymapBuffer:
		offset := int(binary.BigEndian.Uint16(p[1:3]))
		size := int(p[3])
		r := report(p[0], p[1], p[2], p[3])

		raw := make([]byte, 2*len(f.keymap))
		for i, k := range f.keymap {
			binary.BigEndian.PutUint16(raw[2*i:], k)
		}

		copy(r[4:4+size], raw[offset:])
		f.pending = append(f.pending, r)
	default:
		f.pending = append(f.pending, report(0xFF))
	}

	return len(p), nil
}

func (f *fakeKeyboard) Read(p []byte) (int, error) {
	if len(f.pending) == 0 {
		return 0, io.EOF
	}

	n := copy(p, f.pending[0])
	f.pending = f.pending[1:]

	return n, nil
}

func (f *fakeKeyboard) Close() error { return nil }

func report(prefix ...byte) []byte {
	buf := make([]byte, ports.ReportSize)
	copy(buf, prefix)

	return buf
}

func TestProtocolVersion(t *testing.T) {
	t.Run("accepts recent firmware", func(t *testing.T) {
		v, err := via.NewClient(&fakeKeyboard{version: 12}).ProtocolVersion()

		require.NoError(t, err)
		assert.Equal(t, uint16(12), v)
	})

	t.Run("rejects old firmware", func(t *testing.T) {
		v, err := via.NewClient(&fakeKeyboard{version: 9}).ProtocolVersion()

		require.ErrorIs(t, err, via.ErrProtocolTooOld)
		assert.Contains(t, err.Error(), "protocol version 9 is too old, need at least 12")
		assert.Equal(t, uint16(9), v)
	})

	t.Run("skips unrelated reports", func(t *testing.T) {
		v, err := via.NewClient(&fakeKeyboard{version: 13, noise: 3}).ProtocolVersion()

		require.NoError(t, err)
		assert.Equal(t, uint16(13), v)
	})

	t.Run("gives up when no reply arrives", func(t *testing.T) {
		_, err := via.NewClient(&fakeKeyboard{version: 13, noise: 100}).ProtocolVersion()

		require.Error(t, err)
	})
}

func TestLayerCount(t *testing.T) {
	n, err := via.NewClient(&fakeKeyboard{layers: 4}).LayerCount()

	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestKeymapBuffer(t *testing.T) {
	kb := &fakeKeyboard{keymap: []uint16{0x0004, 0x5223, 0x0001}}
	client := via.NewClient(kb)

	chunk, err := client.KeymapBuffer(2, 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x52, 0x23, 0x00, 0x01}, chunk)

	_, err = client.KeymapBuffer(0, via.MaxBufferChunk+1)
	require.Error(t, err)
}

func TestFetchKeymap(t *testing.T) {
	const layers, rows, cols = 2, 4, 12

	keycodes := make([]uint16, layers*rows*cols)
	for i := range keycodes {
		keycodes[i] = 0x0004
	}

	keycodes[1*rows*cols+1*cols+5] = 0x5223

	kb := &fakeKeyboard{keymap: keycodes, noise: 1}

	m, err := via.NewClient(kb).FetchKeymap(context.Background(), layers, rows, cols, nil)
	require.NoError(t, err)

	assert.Equal(t, uint16(0x5223), m.Keycode(1, 1, 5))
	assert.Equal(t, uint16(0x0004), m.Keycode(0, 3, 11))
	assert.Equal(t, 7, kb.requests, "192 bytes in 28 byte chunks")

	t.Run("stops when cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := via.NewClient(kb).FetchKeymap(ctx, layers, rows, cols, nil)

		assert.True(t, errors.Is(err, context.Canceled))
	})
}
