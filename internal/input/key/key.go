package key

import (
	"fmt"
	"strings"
)

// Code is a platform virtual-key code. Windows VK values are used as the
// canonical code space on every platform; other backends translate.
type Code uint16

// Virtual-key codes for keys the codec names. Letter and digit codes
// match their ASCII values and are not enumerated here.
const (
	CodeBackspace Code = 0x08
	CodeTab       Code = 0x09
	CodeEnter     Code = 0x0D
	CodeShift     Code = 0x10
	CodeCtrl      Code = 0x11
	CodeAlt       Code = 0x12
	CodeEscape    Code = 0x1B
	CodeSpace     Code = 0x20

	CodeNumpad0 Code = 0x60
	CodeNumpad9 Code = 0x69

	CodeF1  Code = 0x70
	CodeF24 Code = 0x87

	// OEM punctuation on the US layout.
	CodeApostrophe Code = 0xDE
	CodeBacktick   Code = 0xC0
)

// Name returns the canonical symbolic name for a code.
//
// Covered: A-Z, 0-9, F1-F24, Numpad0-9, Space, Enter, Tab, Backspace,
// Escape, Shift, Ctrl, Alt, backtick and apostrophe. Anything else
// renders as "VK_<hex>", which is guaranteed never to match a configured
// hotkey because configured names are drawn from the covered set.
func (c Code) Name() string {
	switch {
	case c >= 'A' && c <= 'Z':
		return string(rune(c))
	case c >= '0' && c <= '9':
		return string(rune(c))
	case c >= CodeNumpad0 && c <= CodeNumpad9:
		return fmt.Sprintf("Numpad%d", c-CodeNumpad0)
	case c >= CodeF1 && c <= CodeF24:
		return fmt.Sprintf("F%d", c-CodeF1+1)
	}

	switch c {
	case CodeBacktick:
		return "`"
	case CodeApostrophe:
		return "'"
	case CodeSpace:
		return "Space"
	case CodeEnter:
		return "Enter"
	case CodeTab:
		return "Tab"
	case CodeBackspace:
		return "Backspace"
	case CodeEscape:
		return "Escape"
	case CodeShift:
		return "Shift"
	case CodeCtrl:
		return "Ctrl"
	case CodeAlt:
		return "Alt"
	}

	return fmt.Sprintf("VK_%X", uint16(c))
}

// namedCodes maps uppercase symbolic names and aliases to codes.
var namedCodes = map[string]Code{
	"SPACE":     CodeSpace,
	"ENTER":     CodeEnter,
	"RETURN":    CodeEnter,
	"TAB":       CodeTab,
	"BACKSPACE": CodeBackspace,
	"ESC":       CodeEscape,
	"ESCAPE":    CodeEscape,
	"SHIFT":     CodeShift,
	"CTRL":      CodeCtrl,
	"CONTROL":   CodeCtrl,
	"ALT":       CodeAlt,
	"`":         CodeBacktick,
	"'":         CodeApostrophe,
}

// Parse resolves a symbolic key name to its code. Matching is
// case-insensitive. It accepts everything Name produces plus a few
// aliases (Esc, Return, Control). The VK_<hex> fallback is deliberately
// not parseable.
func Parse(name string) (Code, bool) {
	s := strings.ToUpper(strings.TrimSpace(name))
	if s == "" {
		return 0, false
	}

	if len(s) == 1 {
		r := rune(s[0])
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return Code(r), true
		}
	}

	if c, ok := namedCodes[s]; ok {
		return c, true
	}

	if n, ok := strings.CutPrefix(s, "NUMPAD"); ok {
		if len(n) == 1 && n[0] >= '0' && n[0] <= '9' {
			return CodeNumpad0 + Code(n[0]-'0'), true
		}
		return 0, false
	}

	if n, ok := strings.CutPrefix(s, "F"); ok {
		var fn int
		if _, err := fmt.Sscanf(n, "%d", &fn); err == nil && fn >= 1 && fn <= 24 && n == fmt.Sprintf("%d", fn) {
			return CodeF1 + Code(fn-1), true
		}
	}

	return 0, false
}

// FromChar maps a typeable character to the code whose press+release
// produces it. Only ASCII letters, digits, space, CR, LF and tab are
// supported; anything else reports false and the caller skips the
// character. Unicode injection is out of scope.
func FromChar(r rune) (Code, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return Code(r - 'a' + 'A'), true
	case r >= 'A' && r <= 'Z':
		return Code(r), true
	case r >= '0' && r <= '9':
		return Code(r), true
	}

	switch r {
	case ' ':
		return CodeSpace, true
	case '\r', '\n':
		return CodeEnter, true
	case '\t':
		return CodeTab, true
	}

	return 0, false
}
