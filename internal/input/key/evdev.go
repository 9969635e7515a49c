package key

// Linux evdev KEY_* values for the keys the codec names. Kept here so the
// Linux hook and synthesis adapters stay thin translation layers. The
// constants are wire values from linux/input-event-codes.h; no platform
// import is needed to state them.
const (
	evKeyEsc       = 1
	evKey1         = 2 // KEY_1..KEY_9 are 2..10, KEY_0 is 11
	evKey0         = 11
	evKeyBackspace = 14
	evKeyTab       = 15
	evKeyEnter     = 28
	evKeyLeftCtrl  = 29
	evKeyLeftShift = 42
	evKeyLeftAlt   = 56
	evKeySpace     = 57
	evKeyGrave     = 41
	evKeyApos      = 40
	evKeyKP0       = 82 // KEY_KP0; KP1..KP9 are 79..73,71..72 (non-linear)
	evKeyF1        = 59 // F1..F10 are 59..68
	evKeyF11       = 87
	evKeyF12       = 88
	evKeyF13       = 183 // F13..F24 are 183..194
)

// Keyboard row ordering for letters in evdev is layout order, not
// alphabetical, so letters get an explicit table.
var evdevLetters = map[Code]uint16{
	'Q': 16, 'W': 17, 'E': 18, 'R': 19, 'T': 20, 'Y': 21, 'U': 22,
	'I': 23, 'O': 24, 'P': 25, 'A': 30, 'S': 31, 'D': 32, 'F': 33,
	'G': 34, 'H': 35, 'J': 36, 'K': 37, 'L': 38, 'Z': 44, 'X': 45,
	'C': 46, 'V': 47, 'B': 48, 'N': 49, 'M': 50,
}

// Numpad digits are not a contiguous range in evdev.
var evdevNumpad = [10]uint16{82, 79, 80, 81, 75, 76, 77, 71, 72, 73}

// EvdevCode translates a canonical code to its Linux evdev key code.
func EvdevCode(c Code) (uint16, bool) {
	if ev, ok := evdevLetters[c]; ok {
		return ev, true
	}

	switch {
	case c == '0':
		return evKey0, true
	case c >= '1' && c <= '9':
		return evKey1 + uint16(c-'1'), true
	case c >= CodeNumpad0 && c <= CodeNumpad9:
		return evdevNumpad[c-CodeNumpad0], true
	case c >= CodeF1 && c <= CodeF1+9:
		return evKeyF1 + uint16(c-CodeF1), true
	case c == CodeF1+10:
		return evKeyF11, true
	case c == CodeF1+11:
		return evKeyF12, true
	case c >= CodeF1+12 && c <= CodeF24:
		return evKeyF13 + uint16(c-CodeF1-12), true
	}

	switch c {
	case CodeEscape:
		return evKeyEsc, true
	case CodeBackspace:
		return evKeyBackspace, true
	case CodeTab:
		return evKeyTab, true
	case CodeEnter:
		return evKeyEnter, true
	case CodeCtrl:
		return evKeyLeftCtrl, true
	case CodeShift:
		return evKeyLeftShift, true
	case CodeAlt:
		return evKeyLeftAlt, true
	case CodeSpace:
		return evKeySpace, true
	case CodeBacktick:
		return evKeyGrave, true
	case CodeApostrophe:
		return evKeyApos, true
	}

	return 0, false
}

// evdevToCode is the inverse of EvdevCode, built once at init.
var evdevToCode = func() map[uint16]Code {
	m := make(map[uint16]Code, 80)
	for c := Code('A'); c <= 'Z'; c++ {
		m[evdevLetters[c]] = c
	}
	for c := Code('0'); c <= '9'; c++ {
		ev, _ := EvdevCode(c)
		m[ev] = c
	}
	for c := CodeNumpad0; c <= CodeNumpad9; c++ {
		ev, _ := EvdevCode(c)
		m[ev] = c
	}
	for c := CodeF1; c <= CodeF24; c++ {
		ev, _ := EvdevCode(c)
		m[ev] = c
	}
	for _, c := range []Code{
		CodeEscape, CodeBackspace, CodeTab, CodeEnter, CodeCtrl,
		CodeShift, CodeAlt, CodeSpace, CodeBacktick, CodeApostrophe,
	} {
		ev, _ := EvdevCode(c)
		m[ev] = c
	}
	return m
}()

// FromEvdev translates a Linux evdev key code to its canonical code.
func FromEvdev(ev uint16) (Code, bool) {
	c, ok := evdevToCode[ev]
	return c, ok
}
