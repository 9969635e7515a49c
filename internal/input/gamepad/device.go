package gamepad

// disconnectedDevice reports every slot empty.
type disconnectedDevice struct{}

// State implements Device.
func (disconnectedDevice) State(int) (uint16, bool) { return 0, false }
