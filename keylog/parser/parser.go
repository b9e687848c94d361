package parser

import (
	"encoding/binary"
	"fmt"

	"github.com/dasdy/layerlens/model"
)

// Report tags sent by the overlay-aware firmware.
const (
	TagLayerState = 0xFF
	TagLayerMask  = 0x01
	TagKeyEvent   = 0xF1
)

// ParseReport decodes one raw HID report. Reports with unknown tags are
// ignored and yield a nil event with no error.
func ParseReport(report []byte) (model.Event, error) {
	if len(report) == 0 {
		return nil, nil
	}

	switch report[0] {
	case TagLayerState:
		return parseLayerState(report)
	case TagLayerMask:
		if len(report) < 5 {
			return nil, fmt.Errorf("layer mask report too short: got %d bytes, need 5", len(report))
		}

		return model.MomentaryEvent{Mask: binary.LittleEndian.Uint32(report[1:5])}, nil
	case TagKeyEvent:
		if len(report) < 4 {
			return nil, fmt.Errorf("key event report too short: got %d bytes, need 4", len(report))
		}

		return model.KeyEvent{Row: int(report[1]), Col: int(report[2]), Pressed: report[3] != 0}, nil
	default:
		return nil, nil
	}
}

func parseLayerState(report []byte) (model.Event, error) {
	if len(report) < 2 {
		return nil, fmt.Errorf("layer state report too short: got %d bytes, need 2", len(report))
	}

	size := int(report[1])
	if size != 1 && size != 2 && size != 4 {
		return nil, fmt.Errorf("could not parse layer state: unsupported mask size %d", size)
	}

	if len(report) < 2+2*size {
		return nil, fmt.Errorf("layer state report too short: got %d bytes, need %d", len(report), 2+2*size)
	}

	return model.LayerEvent{
		Default:   readLE(report[2 : 2+size]),
		Momentary: readLE(report[2+size : 2+2*size]),
	}, nil
}

func readLE(b []byte) uint32 {
	var v uint32
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint32(b[i])
	}

	return v
}
