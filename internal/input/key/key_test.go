package key

import "testing"

func TestCodeName(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{'A', "A"},
		{'Z', "Z"},
		{'0', "0"},
		{'9', "9"},
		{CodeF1, "F1"},
		{CodeF1 + 11, "F12"},
		{CodeF24, "F24"},
		{CodeNumpad0, "Numpad0"},
		{CodeNumpad9, "Numpad9"},
		{CodeSpace, "Space"},
		{CodeEnter, "Enter"},
		{CodeTab, "Tab"},
		{CodeBackspace, "Backspace"},
		{CodeEscape, "Escape"},
		{CodeShift, "Shift"},
		{CodeCtrl, "Ctrl"},
		{CodeAlt, "Alt"},
		{CodeBacktick, "`"},
		{CodeApostrophe, "'"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.code.Name(); got != tt.want {
				t.Errorf("Code(%#x).Name() = %q, want %q", uint16(tt.code), got, tt.want)
			}
		})
	}
}

func TestCodeNameFallback(t *testing.T) {
	// Unmapped codes must render to a raw string that Parse rejects, so
	// they can never match a configured hotkey.
	for _, c := range []Code{0x01, 0x5B, 0xFF} {
		name := c.Name()
		if name == "" {
			t.Fatalf("Code(%#x).Name() returned empty string", uint16(c))
		}
		if _, ok := Parse(name); ok {
			t.Errorf("fallback name %q unexpectedly parseable", name)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Code
		ok   bool
	}{
		{"A", 'A', true},
		{"a", 'A', true},
		{"z", 'Z', true},
		{"5", '5', true},
		{"F2", CodeF1 + 1, true},
		{"f12", CodeF1 + 11, true},
		{"F24", CodeF24, true},
		{"Numpad3", CodeNumpad0 + 3, true},
		{"NUMPAD9", CodeNumpad9, true},
		{"Space", CodeSpace, true},
		{"SPACE", CodeSpace, true},
		{"Enter", CodeEnter, true},
		{"Return", CodeEnter, true},
		{"Esc", CodeEscape, true},
		{"Escape", CodeEscape, true},
		{"Ctrl", CodeCtrl, true},
		{"Control", CodeCtrl, true},
		{"Shift", CodeShift, true},
		{"Alt", CodeAlt, true},
		{"`", CodeBacktick, true},
		{"'", CodeApostrophe, true},
		{"", 0, false},
		{"F0", 0, false},
		{"F25", 0, false},
		{"Numpad10", 0, false},
		{"VK_5B", 0, false},
		{"Ctrl+Shift+A", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Parse(tt.name)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Parse(%q) = (%#x, %v), want (%#x, %v)", tt.name, uint16(got), ok, uint16(tt.want), tt.ok)
			}
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	codes := []Code{'A', 'Q', '0', CodeF1, CodeF24, CodeNumpad0 + 5, CodeSpace, CodeShift, CodeBacktick}
	for _, c := range codes {
		got, ok := Parse(c.Name())
		if !ok || got != c {
			t.Errorf("Parse(Name(%#x)) = (%#x, %v), want identity", uint16(c), uint16(got), ok)
		}
	}
}

func TestFromChar(t *testing.T) {
	tests := []struct {
		r    rune
		want Code
		ok   bool
	}{
		{'a', 'A', true},
		{'A', 'A', true},
		{'z', 'Z', true},
		{'7', '7', true},
		{' ', CodeSpace, true},
		{'\n', CodeEnter, true},
		{'\r', CodeEnter, true},
		{'\t', CodeTab, true},
		{'!', 0, false},
		{'é', 0, false},
		{'中', 0, false},
	}

	for _, tt := range tests {
		got, ok := FromChar(tt.r)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FromChar(%q) = (%#x, %v), want (%#x, %v)", tt.r, uint16(got), ok, uint16(tt.want), tt.ok)
		}
	}
}

func TestEvdevRoundTrip(t *testing.T) {
	var codes []Code
	for c := Code('A'); c <= 'Z'; c++ {
		codes = append(codes, c)
	}
	for c := Code('0'); c <= '9'; c++ {
		codes = append(codes, c)
	}
	for c := CodeNumpad0; c <= CodeNumpad9; c++ {
		codes = append(codes, c)
	}
	for c := CodeF1; c <= CodeF24; c++ {
		codes = append(codes, c)
	}
	codes = append(codes, CodeEscape, CodeBackspace, CodeTab, CodeEnter,
		CodeCtrl, CodeShift, CodeAlt, CodeSpace, CodeBacktick, CodeApostrophe)

	for _, c := range codes {
		ev, ok := EvdevCode(c)
		if !ok {
			t.Errorf("EvdevCode(%#x) not mapped", uint16(c))
			continue
		}
		back, ok := FromEvdev(ev)
		if !ok || back != c {
			t.Errorf("FromEvdev(EvdevCode(%#x)) = (%#x, %v), want identity", uint16(c), uint16(back), ok)
		}
	}
}

func TestEvdevUnmapped(t *testing.T) {
	if _, ok := EvdevCode(0x5B); ok { // left Win key, outside the named set
		t.Error("EvdevCode mapped a code outside the named set")
	}
	if _, ok := FromEvdev(999); ok {
		t.Error("FromEvdev mapped an unknown evdev code")
	}
}
