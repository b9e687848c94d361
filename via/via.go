// Package via talks the VIA raw HID protocol used to read the keymap stored
// on the keyboard.
package via

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dasdy/layerlens/keylog/ports"
	"github.com/dasdy/layerlens/keymap"
	"github.com/schollz/progressbar/v3"
)

const (
	CmdProtocolVersion = 0x01
	CmdLayerCount      = 0x11
	CmdKeymapBuffer    = 0x12

	MinProtocolVersion = 12

	// MaxBufferChunk is the keymap payload that fits in one response after
	// the 4 header bytes.
	MaxBufferChunk = ports.ReportSize - 4

	defaultMaxSkips = 16
)

var (
	ErrProtocolTooOld   = errors.New("protocol version too old")
	ErrUnexpectedReply  = errors.New("unexpected reply")
	errChunkTooLarge    = errors.New("keymap chunk too large")
	errNoMatchingAnswer = errors.New("no matching reply")
)

type Client struct {
	dev ports.Device
	// maxSkips bounds how many unrelated reports are skipped while waiting
	// for a reply.
	maxSkips int
}

func NewClient(dev ports.Device) *Client {
	return &Client{dev: dev, maxSkips: defaultMaxSkips}
}

func (c *Client) request(cmd byte, args ...byte) ([]byte, error) {
	req := make([]byte, ports.ReportSize)
	req[0] = cmd
	copy(req[1:], args)

	if _, err := c.dev.Write(req); err != nil {
		return nil, fmt.Errorf("could not send command 0x%02x: %w", cmd, err)
	}

	resp := make([]byte, ports.ReportSize)

	for range c.maxSkips + 1 {
		n, err := c.dev.Read(resp)
		if err != nil {
			return nil, fmt.Errorf("could not read reply to command 0x%02x: %w", cmd, err)
		}

		if n > 0 && resp[0] == cmd {
			return resp[:n], nil
		}

		slog.Debug("Skipping unrelated report", "cmd", cmd, "tag", resp[0])
	}

	return nil, fmt.Errorf("command 0x%02x: %w after %d reports", cmd, errNoMatchingAnswer, c.maxSkips+1)
}

// ProtocolVersion reads the VIA protocol version and fails when it is older
// than MinProtocolVersion.
func (c *Client) ProtocolVersion() (uint16, error) {
	resp, err := c.request(CmdProtocolVersion)
	if err != nil {
		return 0, err
	}

	if len(resp) < 3 {
		return 0, fmt.Errorf("protocol version reply: %w", ErrUnexpectedReply)
	}

	version := binary.BigEndian.Uint16(resp[1:3])
	if version < MinProtocolVersion {
		return version, fmt.Errorf("protocol version %d is too old, need at least %d: %w",
			version, MinProtocolVersion, ErrProtocolTooOld)
	}

	return version, nil
}

func (c *Client) LayerCount() (int, error) {
	resp, err := c.request(CmdLayerCount)
	if err != nil {
		return 0, err
	}

	if len(resp) < 2 {
		return 0, fmt.Errorf("layer count reply: %w", ErrUnexpectedReply)
	}

	return int(resp[1]), nil
}

// KeymapBuffer reads size bytes of the dynamic keymap starting at offset.
func (c *Client) KeymapBuffer(offset uint16, size int) ([]byte, error) {
	if size > MaxBufferChunk {
		return nil, fmt.Errorf("%w: %d > %d", errChunkTooLarge, size, MaxBufferChunk)
	}

	resp, err := c.request(CmdKeymapBuffer, byte(offset>>8), byte(offset), byte(size))
	if err != nil {
		return nil, err
	}

	if len(resp) < 4+size || binary.BigEndian.Uint16(resp[1:3]) != offset {
		return nil, fmt.Errorf("keymap buffer reply at offset %d: %w", offset, ErrUnexpectedReply)
	}

	return resp[4 : 4+size], nil
}

// FetchKeymap downloads the whole keymap. bar may be nil.
func (c *Client) FetchKeymap(
	ctx context.Context,
	layers, rows, cols int,
	bar *progressbar.ProgressBar,
) (*keymap.Matrix, error) {
	total := layers * rows * cols * 2
	if total > 0xFFFF {
		return nil, fmt.Errorf("keymap of %d bytes does not fit the protocol's 16-bit offsets", total)
	}

	raw := make([]byte, 0, total)

	for offset := 0; offset < total; offset += MaxBufferChunk {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("keymap fetch interrupted: %w", err)
		}

		size := min(MaxBufferChunk, total-offset)

		chunk, err := c.KeymapBuffer(uint16(offset), size)
		if err != nil {
			return nil, err
		}

		raw = append(raw, chunk...)

		if bar != nil {
			if err := bar.Add(size); err != nil {
				slog.Error("could not update progress bar", "error", err)
			}
		}
	}

	if bar != nil {
		if err := bar.Finish(); err != nil {
			slog.Error("could not finish progress bar", "error", err)
		}
	}

	keycodes := make([]uint16, total/2)
	for i := range keycodes {
		keycodes[i] = binary.BigEndian.Uint16(raw[2*i:])
	}

	return keymap.FromBuffer(keycodes, layers, rows, cols)
}
