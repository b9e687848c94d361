package ports_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/stretchr/testify/assert"
)

func readFrames(c <-chan []byte) [][]byte {
	result := make([][]byte, 0)

	for frame := range c {
		result = append(result, frame)
	}

	return result
}

func TestReadReports(t *testing.T) {
	t.Run("should split stream into frames", func(t *testing.T) {
		r := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6})

		frames := readFrames(ports.ReadReports(context.Background(), r, 3))

		assert.Equal(t, [][]byte{{1, 2, 3}, {4, 5, 6}}, frames)
	})

	t.Run("should handle empty stream", func(t *testing.T) {
		frames := readFrames(ports.ReadReports(context.Background(), bytes.NewReader(nil), 32))

		assert.Equal(t, [][]byte{}, frames)
	})

	t.Run("should drop trailing partial frame", func(t *testing.T) {
		r := bytes.NewReader([]byte{1, 2, 3, 4})

		frames := readFrames(ports.ReadReports(context.Background(), r, 3))

		assert.Equal(t, [][]byte{{1, 2, 3}}, frames)
	})

	t.Run("should stop sending once the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		frames := ports.ReadReports(ctx, endlessReports{}, 4)

		assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, <-frames)

		cancel()

		// Nobody is receiving, the reader must still give up.
		time.Sleep(20 * time.Millisecond)

		done := make(chan struct{})

		go func() {
			for range frames {
			}

			close(done)
		}()

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatal("report channel was not closed after cancel")
		}
	})
}

// endlessReports never runs out of data.
type endlessReports struct{}

func (endlessReports) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0xFF
	}

	return len(p), nil
}

func TestLooksLikeKeyboardPort(t *testing.T) {
	testCases := []struct {
		name     string
		expected bool
	}{
		{"/dev/tty.usbmodem12301", true},
		{"/dev/ttyACM0", true},
		{"/dev/cu.usbserial-1410", true},
		{"/dev/ttyS0", false},
		{"COM3", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ports.LooksLikeKeyboardPort(tc.name))
		})
	}
}

func TestHIDInterfaceString(t *testing.T) {
	i := ports.HIDInterface{Path: "/dev/hidraw3", VendorID: 0x4653, ProductID: 1, Manufacturer: "Acme", Product: "Split"}

	assert.Equal(t, "4653:0001 Acme Split (/dev/hidraw3)", i.String())
}
