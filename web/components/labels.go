package components

import (
	"math"
	"unicode/utf8"

	"github.com/dasdy/layerlens/keycode"
)

const (
	// Text may use this share of the key width.
	labelWidthRatio = 0.85
	// Font size relative to one key unit.
	FontRatio = 0.3
	// Average glyph width relative to the font size.
	glyphWidthRatio = 0.55

	ellipsis = "..."
)

// LabelBudget is how many characters fit on a key keyWidth units wide.
func LabelBudget(keyWidth float64) int {
	return int(math.Floor(keyWidth * labelWidthRatio / (FontRatio * glyphWidthRatio)))
}

// FitLabel picks the long label, then the short one, then the shortest
// truncation with an ellipsis that fits. It returns "" when nothing fits.
func FitLabel(label keycode.Label, keyWidth float64) string {
	budget := LabelBudget(keyWidth)

	fits := func(s string) bool {
		return utf8.RuneCountInString(s) <= budget
	}

	if fits(label.Long) {
		return label.Long
	}

	candidate := label.Long
	if label.Short != "" {
		if fits(label.Short) {
			return label.Short
		}

		candidate = label.Short
	}

	runes := []rune(candidate)
	for len(runes) > 1 {
		runes = runes[:len(runes)-1]

		if truncated := string(runes) + ellipsis; fits(truncated) {
			return truncated
		}
	}

	return ""
}
