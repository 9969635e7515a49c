package gamepad

// Button bitmask values, XInput wButtons layout.
const (
	MaskDUp    uint16 = 0x0001
	MaskDDown  uint16 = 0x0002
	MaskDLeft  uint16 = 0x0004
	MaskDRight uint16 = 0x0008
	MaskStart  uint16 = 0x0010
	MaskBack   uint16 = 0x0020
	MaskLS     uint16 = 0x0040
	MaskRS     uint16 = 0x0080
	MaskLB     uint16 = 0x0100
	MaskRB     uint16 = 0x0200
	MaskA      uint16 = 0x1000
	MaskB      uint16 = 0x2000
	MaskX      uint16 = 0x4000
	MaskY      uint16 = 0x8000
)

// buttons is the ordered name table for the 14 reported buttons.
var buttons = [14]struct {
	mask uint16
	name string
}{
	{MaskDUp, "DUp"},
	{MaskDDown, "DDown"},
	{MaskDLeft, "DLeft"},
	{MaskDRight, "DRight"},
	{MaskStart, "Start"},
	{MaskBack, "Back"},
	{MaskLS, "LS"},
	{MaskRS, "RS"},
	{MaskLB, "LB"},
	{MaskRB, "RB"},
	{MaskA, "A"},
	{MaskB, "B"},
	{MaskX, "X"},
	{MaskY, "Y"},
}

// Transition is one button changing state between two polls.
type Transition struct {
	// Button is the canonical button name ("A", "DUp", ...).
	Button string

	// Pressed is true when the button went down, false when it came up.
	Pressed bool
}

// Transitions diffs two button bitmasks and returns the transitions in
// button-table order. Bits outside the named table are ignored.
func Transitions(prev, curr uint16) []Transition {
	changed := prev ^ curr
	if changed == 0 {
		return nil
	}

	var out []Transition
	for _, b := range buttons {
		if changed&b.mask == 0 {
			continue
		}
		out = append(out, Transition{
			Button:  b.name,
			Pressed: curr&b.mask != 0,
		})
	}
	return out
}

// Event is one button transition on one controller slot.
type Event struct {
	Slot    int
	Button  string
	Pressed bool
}

// Device reads raw controller state. The platform implementation wraps
// XInput; tests supply fakes.
type Device interface {
	// State returns the button bitmask for a slot and whether a
	// controller is connected there.
	State(slot int) (buttons uint16, connected bool)
}
