package layout

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/dasdy/layerlens/model"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed keyboard_info.schema.json
var keyboardInfoSchema []byte

const schemaURL = "keyboard_info.schema.json"

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, bytes.NewReader(keyboardInfoSchema)); err != nil {
		return nil, fmt.Errorf("could not add keyboard info schema: %w", err)
	}

	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("could not compile keyboard info schema: %w", err)
	}

	return schema, nil
})

type QMKKeyDescriptor struct {
	Matrix []int    `json:"matrix"`
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	W      *float64 `json:"w"`
	H      *float64 `json:"h"`
}

type QMKLayout struct {
	Layout []QMKKeyDescriptor `json:"layout"`
}

type QMKInfoJSON struct {
	USB *struct {
		VID string `json:"vid"`
		PID string `json:"pid"`
	} `json:"usb"`
	MatrixPins *struct {
		Rows []json.RawMessage `json:"rows"`
		Cols []json.RawMessage `json:"cols"`
	} `json:"matrix_pins"`
	Split struct {
		Enabled bool `json:"enabled"`
	} `json:"split"`
	Layouts       map[string]QMKLayout `json:"layouts"`
	LayoutAliases map[string]string    `json:"layout_aliases"`
}

// LoadKeyboardInfo reads a QMK info.json style keyboard description.
func LoadKeyboardInfo(reader io.Reader) (*model.KeyboardInfo, error) {
	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("error reading keyboard info: %w", err)
	}

	if err := validateSchema(source); err != nil {
		return nil, err
	}

	var info QMKInfoJSON
	if err := json.Unmarshal(source, &info); err != nil {
		return nil, fmt.Errorf("could not decode keyboard info JSON: %w", err)
	}

	return info.toKeyboardInfo()
}

func validateSchema(source []byte) error {
	schema, err := compiledSchema()
	if err != nil {
		return err
	}

	var doc any
	if err := json.Unmarshal(source, &doc); err != nil {
		return fmt.Errorf("could not decode keyboard info JSON: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		var validationErr *jsonschema.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("invalid keyboard info: %s", describeValidationError(validationErr))
		}

		return fmt.Errorf("invalid keyboard info: %w", err)
	}

	return nil
}

// describeValidationError reports the innermost failure, which names the field.
func describeValidationError(err *jsonschema.ValidationError) string {
	for len(err.Causes) > 0 {
		err = err.Causes[0]
	}

	location := strings.TrimPrefix(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	}

	return fmt.Sprintf("%s: %s", strings.ReplaceAll(location, "/", "."), err.Message)
}

func (info *QMKInfoJSON) toKeyboardInfo() (*model.KeyboardInfo, error) {
	if info.USB == nil {
		return nil, errors.New("missing 'usb' in keyboard info")
	}

	vid, err := HexToUint16(info.USB.VID)
	if err != nil {
		return nil, fmt.Errorf("invalid value for 'usb.vid': %w", err)
	}

	pid, err := HexToUint16(info.USB.PID)
	if err != nil {
		return nil, fmt.Errorf("invalid value for 'usb.pid': %w", err)
	}

	if info.MatrixPins == nil || info.MatrixPins.Rows == nil || info.MatrixPins.Cols == nil {
		return nil, errors.New("missing 'matrix_pins.rows' or 'matrix_pins.cols' in keyboard info")
	}

	rows := len(info.MatrixPins.Rows)
	if info.Split.Enabled {
		rows *= 2
	}

	cols := len(info.MatrixPins.Cols)

	names := slices.Sorted(maps.Keys(info.Layouts))
	layouts := make([]model.Layout, 0, len(names))

	for _, name := range names {
		keys, err := collectLayoutKeys(name, info.Layouts[name], rows, cols)
		if err != nil {
			return nil, err
		}

		layouts = append(layouts, model.Layout{Name: name, Keys: keys})
	}

	for alias, target := range info.LayoutAliases {
		if _, ok := info.Layouts[target]; !ok {
			return nil, fmt.Errorf("layout alias '%s' points at unknown layout '%s'", alias, target)
		}
	}

	return &model.KeyboardInfo{
		VendorID:  vid,
		ProductID: pid,
		Rows:      rows,
		Cols:      cols,
		Layouts:   layouts,
		Aliases:   info.LayoutAliases,
	}, nil
}

func collectLayoutKeys(name string, layout QMKLayout, rows, cols int) ([]model.Key, error) {
	if layout.Layout == nil {
		return nil, fmt.Errorf("missing 'layouts.%s.layout' array", name)
	}

	keys := make([]model.Key, 0, len(layout.Layout))

	for i, key := range layout.Layout {
		if len(key.Matrix) != 2 {
			return nil, fmt.Errorf("'layouts.%s.layout[%d].matrix' must be a [row, col] pair", name, i)
		}

		row, col := key.Matrix[0], key.Matrix[1]
		if row < 0 || row >= rows || col < 0 || col >= cols {
			return nil, fmt.Errorf("'layouts.%s.layout[%d].matrix' [%d, %d] is outside the %dx%d matrix",
				name, i, row, col, rows, cols)
		}

		keys = append(keys, model.Key{
			RowCol: model.RowCol{Row: row, Col: col},
			X:      valueOr(key.X, 0),
			Y:      valueOr(key.Y, 0),
			W:      valueOr(key.W, 1),
			H:      valueOr(key.H, 1),
		})
	}

	return keys, nil
}

func valueOr(v *float64, fallback float64) float64 {
	if v == nil {
		return fallback
	}

	return *v
}

// HexToUint16 parses "0x4653" or "4653".
func HexToUint16(s string) (uint16, error) {
	cleaned := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "0x"), "0X")

	v, err := strconv.ParseUint(cleaned, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("could not parse '%s' as hex: %w", s, err)
	}

	return uint16(v), nil
}
