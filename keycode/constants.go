package keycode

// Range is a half-open interval of keycodes.
type Range struct {
	Start uint16
	End   uint16
}

func (r Range) Contains(code uint16) bool {
	return code >= r.Start && code < r.End
}

// The ranges below are valid for VIA protocol version 12.
var (
	QKMods             = Range{0x0100, 0x2000}
	QKModTap           = Range{0x2000, 0x4000}
	QKLayerTap         = Range{0x4000, 0x5000}
	QKLayerMod         = Range{0x5000, 0x5200}
	QKTo               = Range{0x5200, 0x5220}
	QKMomentary        = Range{0x5220, 0x5240}
	QKDefLayer         = Range{0x5240, 0x5260}
	QKToggleLayer      = Range{0x5260, 0x5280}
	QKOneShotLayer     = Range{0x5280, 0x52A0}
	QKOneShotMod       = Range{0x52A0, 0x52C0}
	QKLayerTapToggle   = Range{0x52C0, 0x52E0}
	QKMacro            = Range{0x7700, 0x7780}
	QKKeyboardSpecific = Range{0x7E00, 0x7F00}
)

const (
	KCNo          uint16 = 0x0000
	KCTransparent uint16 = 0x0001
)

// Modifier bits of a QK_MODS keycode.
const (
	qkLCtl      uint16 = 0x0100
	qkLSft      uint16 = 0x0200
	qkLAlt      uint16 = 0x0400
	qkLGui      uint16 = 0x0800
	qkRModsMin  uint16 = 0x1000
	qkRCtl      uint16 = 0x1100
	qkRSft      uint16 = 0x1200
	qkRAlt      uint16 = 0x1400
	qkRGui      uint16 = 0x1800
	qkModsMask  uint16 = 0x1F00
	qkBasicMask uint16 = 0x00FF
)

// Modifier bits used by mod-tap, layer-mod and one-shot-mod keycodes.
const (
	ModLCtl uint16 = 0x01
	ModLSft uint16 = 0x02
	ModLAlt uint16 = 0x04
	ModLGui uint16 = 0x08
	ModRCtl uint16 = 0x10
	ModRSft uint16 = 0x20
	ModRAlt uint16 = 0x40
	ModRGui uint16 = 0x80
)

type namedMods struct {
	name  string
	value uint16
}

// Checked in order, first match wins. Aliases follow their canonical name.
var modifierCombos = []namedMods{
	{"LCTL", qkLCtl},
	{"C", qkLCtl},
	{"LSFT", qkLSft},
	{"S", qkLSft},
	{"LALT", qkLAlt},
	{"A", qkLAlt},
	{"LGUI", qkLGui},
	{"LCMD", qkLGui},
	{"LWIN", qkLGui},
	{"G", qkLGui},
	{"RCTL", qkRCtl},
	{"RSFT", qkRSft},
	{"ALGR", qkRAlt},
	{"RALT", qkRAlt},
	{"RCMD", qkRGui},
	{"RWIN", qkRGui},
	{"RGUI", qkRGui},
	{"SCMD", qkLSft | qkLGui},
	{"SWIN", qkLSft | qkLGui},
	{"SGUI", qkLSft | qkLGui},
	{"LSG", qkLSft | qkLGui},
	{"LAG", qkLAlt | qkLGui},
	{"RSG", qkRSft | qkRGui},
	{"RAG", qkRAlt | qkRGui},
	{"LCA", qkLCtl | qkLAlt},
	{"LSA", qkLSft | qkLAlt},
	{"SAGR", qkRSft | qkRAlt},
	{"RSA", qkRSft | qkRAlt},
	{"RCS", qkRCtl | qkRSft},
	{"LCAG", qkLCtl | qkLAlt | qkLGui},
	{"MEH", qkLCtl | qkLAlt | qkLSft},
	{"HYPR", qkLCtl | qkLAlt | qkLSft | qkLGui},
}

// Single modifiers used when a QK_MODS keycode has no named combination.
var singleModifiers = []namedMods{
	{"LCTL", qkLCtl},
	{"LSFT", qkLSft},
	{"LALT", qkLAlt},
	{"LGUI", qkLGui},
	{"RCTL", qkRCtl},
	{"RSFT", qkRSft},
	{"RALT", qkRAlt},
	{"RGUI", qkRGui},
}

var modBitNames = []namedMods{
	{"MOD_LCTL", ModLCtl},
	{"MOD_LSFT", ModLSft},
	{"MOD_LALT", ModLAlt},
	{"MOD_LGUI", ModLGui},
	{"MOD_RCTL", ModRCtl},
	{"MOD_RSFT", ModRSft},
	{"MOD_RALT", ModRAlt},
	{"MOD_RGUI", ModRGui},
}
