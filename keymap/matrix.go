package keymap

import (
	"fmt"
	"sync"
)

// Matrix holds the keycodes read from the keyboard at startup and the live
// pressed state of each switch. Keycodes never change after construction.
type Matrix struct {
	keycodes [][][]uint16
	rows     int
	cols     int

	pressedLock sync.RWMutex
	pressed     [][]bool
}

func NewMatrix(keycodes [][][]uint16, rows, cols int) *Matrix {
	pressed := make([][]bool, rows)
	for i := range pressed {
		pressed[i] = make([]bool, cols)
	}

	return &Matrix{
		keycodes: keycodes,
		rows:     rows,
		cols:     cols,
		pressed:  pressed,
	}
}

// FromBuffer builds a matrix from the flat layer-major buffer returned by the
// dynamic keymap commands.
func FromBuffer(buf []uint16, layers, rows, cols int) (*Matrix, error) {
	if want := layers * rows * cols; len(buf) != want {
		return nil, fmt.Errorf("keymap buffer has %d keycodes, expected %d (%d layers x %d rows x %d cols)",
			len(buf), want, layers, rows, cols)
	}

	keycodes := make([][][]uint16, layers)

	for l := range layers {
		keycodes[l] = make([][]uint16, rows)
		for r := range rows {
			start := (l*rows + r) * cols
			keycodes[l][r] = append([]uint16(nil), buf[start:start+cols]...)
		}
	}

	return NewMatrix(keycodes, rows, cols), nil
}

func (m *Matrix) Layers() int {
	return len(m.keycodes)
}

func (m *Matrix) Rows() int {
	return m.rows
}

func (m *Matrix) Cols() int {
	return m.cols
}

// Keycode returns KC_NO for any index outside the matrix.
func (m *Matrix) Keycode(layer, row, col int) uint16 {
	if layer < 0 || layer >= len(m.keycodes) {
		return 0
	}

	if row < 0 || row >= len(m.keycodes[layer]) {
		return 0
	}

	if col < 0 || col >= len(m.keycodes[layer][row]) {
		return 0
	}

	return m.keycodes[layer][row][col]
}

func (m *Matrix) IsPressed(row, col int) bool {
	m.pressedLock.RLock()
	defer m.pressedLock.RUnlock()

	if row < 0 || row >= len(m.pressed) || col < 0 || col >= len(m.pressed[row]) {
		return false
	}

	return m.pressed[row][col]
}

func (m *Matrix) SetPressed(row, col int, value bool) {
	m.pressedLock.Lock()
	defer m.pressedLock.Unlock()

	if row < 0 || row >= len(m.pressed) || col < 0 || col >= len(m.pressed[row]) {
		return
	}

	m.pressed[row][col] = value
}
