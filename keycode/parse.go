package keycode

import (
	"strconv"
	"strings"
	"sync"
)

var basicByName = sync.OnceValue(func() map[string]uint16 {
	names := make(map[string]uint16, len(basicKeycodes))

	for code, l := range basicKeycodes {
		if l.Long == "" {
			continue
		}

		name := strings.ToLower(l.Long)
		// Several keycodes share a label, keep the lowest one.
		if prev, ok := names[name]; ok && prev < code {
			continue
		}

		names[name] = code
	}

	return names
})

// Parse reads a keycode written as hex ("0x5223"), decimal, a basic key label
// ("Enter") or a layer action ("MO(3)").
func Parse(s string) (uint16, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if hex, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return 0, false
		}

		return uint16(v), true
	}

	if v, err := strconv.ParseUint(s, 10, 16); err == nil {
		return uint16(v), true
	}

	if code, ok := basicByName()[strings.ToLower(s)]; ok {
		return code, true
	}

	return parseLayerAction(s)
}

func parseLayerAction(s string) (uint16, bool) {
	name, rest, ok := strings.Cut(s, "(")
	if !ok || !strings.HasSuffix(rest, ")") {
		return 0, false
	}

	n, err := strconv.ParseUint(strings.TrimSuffix(rest, ")"), 10, 16)
	if err != nil {
		return 0, false
	}

	for _, a := range layerActions {
		if !strings.EqualFold(a.name, name) {
			continue
		}

		code := a.rng.Start + uint16(n)
		if !a.rng.Contains(code) || n >= uint64(a.rng.End-a.rng.Start) {
			return 0, false
		}

		return code, true
	}

	return 0, false
}
