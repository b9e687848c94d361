package ports

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"

	"go.bug.st/serial"
)

// ReportSize is the length of every raw HID report exchanged with the keyboard.
const ReportSize = 32

// ErrDeviceClosed is returned by reads and writes on a closed device.
var ErrDeviceClosed = errors.New("device closed")

// Device is an open connection to the keyboard that exchanges whole reports.
type Device interface {
	io.ReadWriteCloser
}

// ReadReports reads fixed-size frames from r until it fails, hits EOF or ctx
// is done. The channel is closed when reading stops. A read already in
// progress when ctx ends finishes first, so r should be closed afterwards to
// release it.
func ReadReports(ctx context.Context, r io.Reader, size int) <-chan []byte {
	out := make(chan []byte)

	go func() {
		defer close(out)

		for {
			frame := make([]byte, size)

			if _, err := io.ReadFull(r, frame); err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, ErrDeviceClosed) {
					slog.ErrorContext(ctx, "Report stream ended", "error", err)
				}

				return
			}

			select {
			case out <- frame:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// SerialDevice frames a serial byte stream into whole reports.
type SerialDevice struct {
	port   serial.Port
	path   string
	closed atomic.Bool
}

func OpenSerial(path string, baudRate int) (*SerialDevice, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baudRate,
	})
	if err != nil {
		return nil, fmt.Errorf("could not open serial port %s: %w", path, err)
	}

	// Reads block until the next report arrives.
	if err := port.SetReadTimeout(serial.NoTimeout); err != nil {
		port.Close()

		return nil, fmt.Errorf("could not configure serial port %s: %w", path, err)
	}

	slog.Info("Opened serial port", "path", path, "baud", baudRate)

	return &SerialDevice{port: port, path: path}, nil
}

// Read fills p completely, so one call returns one report. Closing the port
// releases a blocked Read with ErrDeviceClosed.
func (d *SerialDevice) Read(p []byte) (int, error) {
	n, err := io.ReadFull(d.port, p)
	if err != nil && d.closed.Load() {
		return n, ErrDeviceClosed
	}

	if err != nil {
		return n, fmt.Errorf("could not read from %s: %w", d.path, err)
	}

	return n, nil
}

func (d *SerialDevice) Write(p []byte) (int, error) {
	n, err := d.port.Write(p)
	if err != nil {
		return n, fmt.Errorf("could not write to %s: %w", d.path, err)
	}

	return n, nil
}

func (d *SerialDevice) Close() error {
	if d.closed.Swap(true) {
		return nil
	}

	if err := d.port.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", d.path, err)
	}

	return nil
}

var serialPortHints = []string{"usbmodem", "ttyACM", "usbserial"}

func LooksLikeKeyboardPort(name string) bool {
	return slices.ContainsFunc(serialPortHints, func(hint string) bool {
		return strings.Contains(name, hint)
	})
}

// GetAvailablePorts lists serial ports that look like USB CDC devices, or all
// ports when none of them do.
func GetAvailablePorts() ([]string, error) {
	names, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("could not get list of serial ports: %w", err)
	}

	result := make([]string, 0, len(names))

	for _, n := range names {
		if LooksLikeKeyboardPort(n) {
			result = append(result, n)
		}
	}

	if len(result) == 0 {
		return names, nil
	}

	return result, nil
}
