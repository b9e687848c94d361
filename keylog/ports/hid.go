package ports

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/sstallion/go-hid"
)

// Raw HID interface exposed by VIA-enabled firmware.
const (
	RawUsagePage = 0xFF60
	RawUsage     = 0x61
)

var ErrDeviceNotFound = errors.New("no raw HID interface found")

type HIDInterface struct {
	Path         string
	VendorID     uint16
	ProductID    uint16
	Manufacturer string
	Product      string
}

func (i HIDInterface) String() string {
	return fmt.Sprintf("%04x:%04x %s %s (%s)", i.VendorID, i.ProductID, i.Manufacturer, i.Product, i.Path)
}

// Init must be called once before any other HID function.
func Init() error {
	if err := hid.Init(); err != nil {
		return fmt.Errorf("could not initialise hidapi: %w", err)
	}

	return nil
}

func Exit() error {
	return hid.Exit()
}

// FindDevices lists raw HID interfaces for vid:pid. Zero matches any id.
func FindDevices(vid, pid uint16) ([]HIDInterface, error) {
	var found []HIDInterface

	err := hid.Enumerate(vid, pid, func(info *hid.DeviceInfo) error {
		if info.UsagePage != RawUsagePage || info.Usage != RawUsage {
			return nil
		}

		found = append(found, HIDInterface{
			Path:         info.Path,
			VendorID:     info.VendorID,
			ProductID:    info.ProductID,
			Manufacturer: info.MfrStr,
			Product:      info.ProductStr,
		})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("could not enumerate HID devices: %w", err)
	}

	return found, nil
}

// hidPollInterval bounds how long Close waits for a read in progress.
const hidPollInterval = 100 * time.Millisecond

// rawHID is the part of *hid.Device used here.
type rawHID interface {
	ReadWithTimeout(p []byte, timeout time.Duration) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// HIDDevice is an open raw HID interface. hidapi handles are not safe for
// concurrent use, so every call into the handle holds lock.
type HIDDevice struct {
	dev    rawHID
	info   HIDInterface
	lock   sync.Mutex
	closed bool
}

func OpenHID(vid, pid uint16) (*HIDDevice, error) {
	candidates, err := FindDevices(vid, pid)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("could not find device %04x:%04x: %w", vid, pid, ErrDeviceNotFound)
	}

	info := candidates[0]
	slog.Info("Opening HID device", "device", info.String())

	dev, err := hid.OpenPath(info.Path)
	if err != nil {
		return nil, fmt.Errorf("could not open device %04x:%04x: %w", vid, pid, err)
	}

	return &HIDDevice{dev: dev, info: info}, nil
}

func (d *HIDDevice) Info() HIDInterface {
	return d.info
}

// Read blocks until one input report arrives or the device is closed.
func (d *HIDDevice) Read(p []byte) (int, error) {
	for {
		n, err := d.readSlice(p)

		switch {
		case errors.Is(err, hid.ErrTimeout) || (err == nil && n == 0):
			continue
		case errors.Is(err, ErrDeviceClosed):
			return 0, err
		case err != nil:
			return n, fmt.Errorf("could not read from %s: %w", d.info.Path, err)
		default:
			return n, nil
		}
	}
}

func (d *HIDDevice) readSlice(p []byte) (int, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return 0, ErrDeviceClosed
	}

	return d.dev.ReadWithTimeout(p, hidPollInterval)
}

// Write sends p as one output report, prefixed with report id 0.
func (d *HIDDevice) Write(p []byte) (int, error) {
	buf := make([]byte, len(p)+1)
	copy(buf[1:], p)

	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return 0, ErrDeviceClosed
	}

	n, err := d.dev.Write(buf)
	if err != nil {
		return max(n-1, 0), fmt.Errorf("could not write to %s: %w", d.info.Path, err)
	}

	return max(n-1, 0), nil
}

// Close waits for a read in progress to return before releasing the handle.
// Further reads and writes fail with ErrDeviceClosed.
func (d *HIDDevice) Close() error {
	d.lock.Lock()
	defer d.lock.Unlock()

	if d.closed {
		return nil
	}

	d.closed = true

	if err := d.dev.Close(); err != nil {
		return fmt.Errorf("could not close %s: %w", d.info.Path, err)
	}

	return nil
}
