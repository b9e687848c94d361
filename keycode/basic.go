package keycode

// basicKeycodes covers the HID keyboard usage page as remapped by QMK and the
// fixed quantum keycodes. Labels without a short form fit any key.
var basicKeycodes = map[uint16]Label{
	KCNo:          {},
	KCTransparent: {Long: "▽"},

	// Letters
	0x0004: {Long: "A"},
	0x0005: {Long: "B"},
	0x0006: {Long: "C"},
	0x0007: {Long: "D"},
	0x0008: {Long: "E"},
	0x0009: {Long: "F"},
	0x000A: {Long: "G"},
	0x000B: {Long: "H"},
	0x000C: {Long: "I"},
	0x000D: {Long: "J"},
	0x000E: {Long: "K"},
	0x000F: {Long: "L"},
	0x0010: {Long: "M"},
	0x0011: {Long: "N"},
	0x0012: {Long: "O"},
	0x0013: {Long: "P"},
	0x0014: {Long: "Q"},
	0x0015: {Long: "R"},
	0x0016: {Long: "S"},
	0x0017: {Long: "T"},
	0x0018: {Long: "U"},
	0x0019: {Long: "V"},
	0x001A: {Long: "W"},
	0x001B: {Long: "X"},
	0x001C: {Long: "Y"},
	0x001D: {Long: "Z"},

	// Digits
	0x001E: {Long: "1"},
	0x001F: {Long: "2"},
	0x0020: {Long: "3"},
	0x0021: {Long: "4"},
	0x0022: {Long: "5"},
	0x0023: {Long: "6"},
	0x0024: {Long: "7"},
	0x0025: {Long: "8"},
	0x0026: {Long: "9"},
	0x0027: {Long: "0"},

	0x0028: {Long: "Enter", Short: "↵"},
	0x0029: {Long: "Esc"},
	0x002A: {Long: "Backspace", Short: "⌫"},
	0x002B: {Long: "Tab", Short: "⇥"},
	0x002C: {Long: "Space", Short: "␣"},
	0x002D: {Long: "-"},
	0x002E: {Long: "="},
	0x002F: {Long: "["},
	0x0030: {Long: "]"},
	0x0031: {Long: "\\"},
	0x0032: {Long: "#"},
	0x0033: {Long: ";"},
	0x0034: {Long: "'"},
	0x0035: {Long: "`"},
	0x0036: {Long: ","},
	0x0037: {Long: "."},
	0x0038: {Long: "/"},
	0x0039: {Long: "Caps Lock", Short: "Caps"},

	// Function keys
	0x003A: {Long: "F1"},
	0x003B: {Long: "F2"},
	0x003C: {Long: "F3"},
	0x003D: {Long: "F4"},
	0x003E: {Long: "F5"},
	0x003F: {Long: "F6"},
	0x0040: {Long: "F7"},
	0x0041: {Long: "F8"},
	0x0042: {Long: "F9"},
	0x0043: {Long: "F10"},
	0x0044: {Long: "F11"},
	0x0045: {Long: "F12"},

	0x0046: {Long: "Print Screen", Short: "PrtSc"},
	0x0047: {Long: "Scroll Lock", Short: "ScrLk"},
	0x0048: {Long: "Pause"},
	0x0049: {Long: "Insert", Short: "Ins"},
	0x004A: {Long: "Home"},
	0x004B: {Long: "Page Up", Short: "PgUp"},
	0x004C: {Long: "Delete", Short: "Del"},
	0x004D: {Long: "End"},
	0x004E: {Long: "Page Down", Short: "PgDn"},
	0x004F: {Long: "→"},
	0x0050: {Long: "←"},
	0x0051: {Long: "↓"},
	0x0052: {Long: "↑"},

	// Keypad
	0x0053: {Long: "Num Lock", Short: "NumLk"},
	0x0054: {Long: "Num /", Short: "/"},
	0x0055: {Long: "Num *", Short: "*"},
	0x0056: {Long: "Num -", Short: "-"},
	0x0057: {Long: "Num +", Short: "+"},
	0x0058: {Long: "Num Enter", Short: "↵"},
	0x0059: {Long: "Num 1", Short: "1"},
	0x005A: {Long: "Num 2", Short: "2"},
	0x005B: {Long: "Num 3", Short: "3"},
	0x005C: {Long: "Num 4", Short: "4"},
	0x005D: {Long: "Num 5", Short: "5"},
	0x005E: {Long: "Num 6", Short: "6"},
	0x005F: {Long: "Num 7", Short: "7"},
	0x0060: {Long: "Num 8", Short: "8"},
	0x0061: {Long: "Num 9", Short: "9"},
	0x0062: {Long: "Num 0", Short: "0"},
	0x0063: {Long: "Num .", Short: "."},
	0x0064: {Long: "ISO \\", Short: "\\"},
	0x0065: {Long: "Menu"},
	0x0066: {Long: "Power", Kind: Special},
	0x0067: {Long: "Num =", Short: "="},

	0x0068: {Long: "F13"},
	0x0069: {Long: "F14"},
	0x006A: {Long: "F15"},
	0x006B: {Long: "F16"},
	0x006C: {Long: "F17"},
	0x006D: {Long: "F18"},
	0x006E: {Long: "F19"},
	0x006F: {Long: "F20"},
	0x0070: {Long: "F21"},
	0x0071: {Long: "F22"},
	0x0072: {Long: "F23"},
	0x0073: {Long: "F24"},

	0x0074: {Long: "Execute", Short: "Exec"},
	0x0075: {Long: "Help"},
	0x0076: {Long: "Menu"},
	0x0077: {Long: "Select", Short: "Sel"},
	0x0078: {Long: "Stop"},
	0x0079: {Long: "Again"},
	0x007A: {Long: "Undo"},
	0x007B: {Long: "Cut"},
	0x007C: {Long: "Copy"},
	0x007D: {Long: "Paste"},
	0x007E: {Long: "Find"},
	0x007F: {Long: "Mute"},
	0x0080: {Long: "Volume Up", Short: "Vol+"},
	0x0081: {Long: "Volume Down", Short: "Vol-"},
	0x0082: {Long: "Locking Caps", Short: "LCaps"},
	0x0083: {Long: "Locking Num", Short: "LNum"},
	0x0084: {Long: "Locking Scroll", Short: "LScr"},
	0x0085: {Long: "Num ,", Short: ","},
	0x0086: {Long: "Num = (AS400)", Short: "="},

	// International and language keys
	0x0087: {Long: "INT1"},
	0x0088: {Long: "INT2"},
	0x0089: {Long: "INT3"},
	0x008A: {Long: "INT4"},
	0x008B: {Long: "INT5"},
	0x008C: {Long: "INT6"},
	0x008D: {Long: "INT7"},
	0x008E: {Long: "INT8"},
	0x008F: {Long: "INT9"},
	0x0090: {Long: "LANG1"},
	0x0091: {Long: "LANG2"},
	0x0092: {Long: "LANG3"},
	0x0093: {Long: "LANG4"},
	0x0094: {Long: "LANG5"},
	0x0095: {Long: "LANG6"},
	0x0096: {Long: "LANG7"},
	0x0097: {Long: "LANG8"},
	0x0098: {Long: "LANG9"},

	0x0099: {Long: "Alt Erase", Short: "Erase"},
	0x009A: {Long: "SysReq"},
	0x009B: {Long: "Cancel"},
	0x009C: {Long: "Clear"},
	0x009D: {Long: "Prior"},
	0x009E: {Long: "Return", Short: "Ret"},
	0x009F: {Long: "Separator", Short: "Sep"},
	0x00A0: {Long: "Out"},
	0x00A1: {Long: "Oper"},
	0x00A2: {Long: "Clear Again", Short: "ClrAg"},
	0x00A3: {Long: "CrSel"},
	0x00A4: {Long: "ExSel"},

	// System and consumer
	0x00A5: {Long: "System Power", Short: "Pwr", Kind: Special},
	0x00A6: {Long: "System Sleep", Short: "Sleep", Kind: Special},
	0x00A7: {Long: "System Wake", Short: "Wake", Kind: Special},
	0x00A8: {Long: "Audio Mute", Short: "Mute"},
	0x00A9: {Long: "Audio Vol+", Short: "Vol+"},
	0x00AA: {Long: "Audio Vol-", Short: "Vol-"},
	0x00AB: {Long: "Next Track", Short: "Next"},
	0x00AC: {Long: "Prev Track", Short: "Prev"},
	0x00AD: {Long: "Media Stop", Short: "Stop"},
	0x00AE: {Long: "Play/Pause", Short: "Play"},
	0x00AF: {Long: "Media Select", Short: "MSel"},
	0x00B0: {Long: "Eject"},
	0x00B1: {Long: "Mail"},
	0x00B2: {Long: "Calculator", Short: "Calc"},
	0x00B3: {Long: "My Computer", Short: "MyPC"},
	0x00B4: {Long: "Browser Search", Short: "WSrch"},
	0x00B5: {Long: "Browser Home", Short: "WHome"},
	0x00B6: {Long: "Browser Back", Short: "WBack"},
	0x00B7: {Long: "Browser Forward", Short: "WFwd"},
	0x00B8: {Long: "Browser Stop", Short: "WStop"},
	0x00B9: {Long: "Browser Refresh", Short: "WRef"},
	0x00BA: {Long: "Browser Favorites", Short: "WFav"},
	0x00BB: {Long: "Fast Forward", Short: "FFwd"},
	0x00BC: {Long: "Rewind", Short: "Rwd"},
	0x00BD: {Long: "Brightness Up", Short: "Bri+"},
	0x00BE: {Long: "Brightness Down", Short: "Bri-"},
	0x00BF: {Long: "Control Panel", Short: "CPnl"},
	0x00C0: {Long: "Assistant", Short: "Asst"},
	0x00C1: {Long: "Mission Control", Short: "MCtl"},
	0x00C2: {Long: "Launchpad", Short: "LPad"},

	// Mouse keys
	0x00CD: {Long: "Mouse ↑", Short: "M↑"},
	0x00CE: {Long: "Mouse ↓", Short: "M↓"},
	0x00CF: {Long: "Mouse ←", Short: "M←"},
	0x00D0: {Long: "Mouse →", Short: "M→"},
	0x00D1: {Long: "Mouse 1", Short: "MB1"},
	0x00D2: {Long: "Mouse 2", Short: "MB2"},
	0x00D3: {Long: "Mouse 3", Short: "MB3"},
	0x00D4: {Long: "Mouse 4", Short: "MB4"},
	0x00D5: {Long: "Mouse 5", Short: "MB5"},
	0x00D6: {Long: "Mouse 6", Short: "MB6"},
	0x00D7: {Long: "Mouse 7", Short: "MB7"},
	0x00D8: {Long: "Mouse 8", Short: "MB8"},
	0x00D9: {Long: "Wheel ↑", Short: "W↑"},
	0x00DA: {Long: "Wheel ↓", Short: "W↓"},
	0x00DB: {Long: "Wheel ←", Short: "W←"},
	0x00DC: {Long: "Wheel →", Short: "W→"},
	0x00DD: {Long: "Mouse Accel 0", Short: "Acc0"},
	0x00DE: {Long: "Mouse Accel 1", Short: "Acc1"},
	0x00DF: {Long: "Mouse Accel 2", Short: "Acc2"},

	// Modifiers
	0x00E0: {Long: "Left Ctrl", Short: "Ctrl", Kind: Modifier},
	0x00E1: {Long: "Left Shift", Short: "⇧", Kind: Modifier},
	0x00E2: {Long: "Left Alt", Short: "Alt", Kind: Modifier},
	0x00E3: {Long: "Left GUI", Short: "GUI", Kind: Modifier},
	0x00E4: {Long: "Right Ctrl", Short: "RCtrl", Kind: Modifier},
	0x00E5: {Long: "Right Shift", Short: "R⇧", Kind: Modifier},
	0x00E6: {Long: "Right Alt", Short: "RAlt", Kind: Modifier},
	0x00E7: {Long: "Right GUI", Short: "RGUI", Kind: Modifier},

	// Magic
	0x7000: {Long: "Swap Ctrl/Caps", Short: "CG⇄", Kind: Special},
	0x7001: {Long: "Unswap Ctrl/Caps", Short: "CG=", Kind: Special},
	0x7002: {Long: "Toggle Ctrl/Caps", Short: "CGT", Kind: Special},
	0x7003: {Long: "Caps as Ctrl Off", Short: "CCOff", Kind: Special},
	0x7004: {Long: "Caps as Ctrl On", Short: "CCOn", Kind: Special},
	0x7005: {Long: "Swap LAlt/LGUI", Short: "LAG⇄", Kind: Special},
	0x7006: {Long: "Unswap LAlt/LGUI", Short: "LAG=", Kind: Special},
	0x7007: {Long: "Swap RAlt/RGUI", Short: "RAG⇄", Kind: Special},
	0x7008: {Long: "Unswap RAlt/RGUI", Short: "RAG=", Kind: Special},
	0x7009: {Long: "GUI On", Short: "GUI+", Kind: Special},
	0x700A: {Long: "GUI Off", Short: "GUI-", Kind: Special},
	0x700B: {Long: "Toggle GUI", Short: "GUIT", Kind: Special},
	0x700C: {Long: "Swap `/Esc", Short: "GE⇄", Kind: Special},
	0x700D: {Long: "Unswap `/Esc", Short: "GE=", Kind: Special},
	0x700E: {Long: "Swap \\/Backspace", Short: "BS⇄", Kind: Special},
	0x700F: {Long: "Unswap \\/Backspace", Short: "BS=", Kind: Special},
	0x7010: {Long: "Toggle \\/Backspace", Short: "BST", Kind: Special},
	0x7011: {Long: "NKRO On", Short: "NK+", Kind: Special},
	0x7012: {Long: "NKRO Off", Short: "NK-", Kind: Special},
	0x7013: {Long: "Toggle NKRO", Short: "NKT", Kind: Special},

	// Backlight
	0x7800: {Long: "Backlight On", Short: "BL+", Kind: Special},
	0x7801: {Long: "Backlight Off", Short: "BL-", Kind: Special},
	0x7802: {Long: "Backlight Toggle", Short: "BLT", Kind: Special},
	0x7803: {Long: "Backlight Down", Short: "BL↓", Kind: Special},
	0x7804: {Long: "Backlight Up", Short: "BL↑", Kind: Special},
	0x7805: {Long: "Backlight Step", Short: "BLS", Kind: Special},
	0x7806: {Long: "Backlight Breathing", Short: "BLB", Kind: Special},

	// RGB
	0x7820: {Long: "RGB Toggle", Short: "RGB", Kind: Special},
	0x7821: {Long: "RGB Mode +", Short: "Mode+", Kind: Special},
	0x7822: {Long: "RGB Mode -", Short: "Mode-", Kind: Special},
	0x7823: {Long: "Hue +", Short: "Hue+", Kind: Special},
	0x7824: {Long: "Hue -", Short: "Hue-", Kind: Special},
	0x7825: {Long: "Saturation +", Short: "Sat+", Kind: Special},
	0x7826: {Long: "Saturation -", Short: "Sat-", Kind: Special},
	0x7827: {Long: "Brightness +", Short: "Val+", Kind: Special},
	0x7828: {Long: "Brightness -", Short: "Val-", Kind: Special},
	0x7829: {Long: "Effect Speed +", Short: "Spd+", Kind: Special},
	0x782A: {Long: "Effect Speed -", Short: "Spd-", Kind: Special},
	0x782B: {Long: "RGB Plain", Short: "Plain", Kind: Special},
	0x782C: {Long: "RGB Breathe", Short: "Brth", Kind: Special},
	0x782D: {Long: "RGB Rainbow", Short: "Rnbw", Kind: Special},
	0x782E: {Long: "RGB Swirl", Short: "Swirl", Kind: Special},
	0x782F: {Long: "RGB Snake", Short: "Snake", Kind: Special},
	0x7830: {Long: "RGB Knight", Short: "Kngt", Kind: Special},
	0x7831: {Long: "RGB Christmas", Short: "Xmas", Kind: Special},
	0x7832: {Long: "RGB Gradient", Short: "Grad", Kind: Special},
	0x7833: {Long: "RGB Test", Short: "Test", Kind: Special},
	0x7834: {Long: "RGB Twinkle", Short: "Twnk", Kind: Special},

	// Quantum
	0x7C00: {Long: "Bootloader", Short: "Boot", Kind: Special},
	0x7C01: {Long: "Reboot", Short: "Rbt", Kind: Special},
	0x7C02: {Long: "Debug Toggle", Short: "Dbg", Kind: Special},
	0x7C03: {Long: "Clear EEPROM", Short: "EEClr", Kind: Special},
	0x7C04: {Long: "Make", Kind: Special},
	0x7C10: {Long: "Auto Shift Down", Short: "AS↓", Kind: Special},
	0x7C11: {Long: "Auto Shift Up", Short: "AS↑", Kind: Special},
	0x7C12: {Long: "Auto Shift Report", Short: "ASRp", Kind: Special},
	0x7C13: {Long: "Auto Shift On", Short: "AS+", Kind: Special},
	0x7C14: {Long: "Auto Shift Off", Short: "AS-", Kind: Special},
	0x7C15: {Long: "Auto Shift Toggle", Short: "ASTg", Kind: Special},
	0x7C16: {Long: "Esc/`", Short: "GEsc"},
	0x7C18: {Long: "LCtrl/(", Short: "LCPO", Kind: Modifier},
	0x7C19: {Long: "RCtrl/)", Short: "RCPC", Kind: Modifier},
	0x7C1A: {Long: "LShift/(", Short: "LSPO", Kind: Modifier},
	0x7C1B: {Long: "RShift/)", Short: "RSPC", Kind: Modifier},
	0x7C1C: {Long: "LAlt/(", Short: "LAPO", Kind: Modifier},
	0x7C1D: {Long: "RAlt/)", Short: "RAPC", Kind: Modifier},
	0x7C1E: {Long: "RShift/Enter", Short: "SEnt", Kind: Modifier},
	0x7C50: {Long: "Combo On", Short: "Cmb+", Kind: Special},
	0x7C51: {Long: "Combo Off", Short: "Cmb-", Kind: Special},
	0x7C52: {Long: "Combo Toggle", Short: "CmbT", Kind: Special},
	0x7C73: {Long: "Caps Word", Short: "CW"},
	0x7C77: {Long: "Tri Layer Lower", Short: "TL↓"},
	0x7C78: {Long: "Tri Layer Upper", Short: "TL↑"},
	0x7C79: {Long: "Repeat Key", Short: "Rep"},
	0x7C7A: {Long: "Alt Repeat Key", Short: "ARep"},
}
