package engine

// Source identifies where an event originated.
type Source int

const (
	// SourceKeyboard is a physical key via the hook.
	SourceKeyboard Source = iota
	// SourceGamepad is a controller button via the poller.
	SourceGamepad
)

// String returns the source name.
func (s Source) String() string {
	switch s {
	case SourceKeyboard:
		return "keyboard"
	case SourceGamepad:
		return "gamepad"
	default:
		return "unknown"
	}
}

// Event is one hotkey transition flowing from the classifier or the
// forwarder to the executor. It is transient; nothing outside the
// channel holds one.
type Event struct {
	// Source is keyboard or gamepad.
	Source Source

	// Name is the canonical key or button name. Gamepad names carry no
	// namespace here; the executor applies the GP: prefix at resolution
	// time.
	Name string

	// Press is true for press, false for release.
	Press bool
}
