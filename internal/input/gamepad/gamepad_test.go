package gamepad

import (
	"reflect"
	"testing"
	"time"
)

func TestTransitions(t *testing.T) {
	tests := []struct {
		name string
		prev uint16
		curr uint16
		want []Transition
	}{
		{
			name: "no change",
			prev: MaskA,
			curr: MaskA,
			want: nil,
		},
		{
			name: "single press",
			prev: 0,
			curr: MaskA,
			want: []Transition{{Button: "A", Pressed: true}},
		},
		{
			name: "single release",
			prev: MaskA,
			curr: 0,
			want: []Transition{{Button: "A", Pressed: false}},
		},
		{
			name: "press and release in one tick",
			prev: MaskA,
			curr: MaskB,
			want: []Transition{
				{Button: "A", Pressed: false},
				{Button: "B", Pressed: true},
			},
		},
		{
			name: "held button stays silent",
			prev: MaskLB | MaskA,
			curr: MaskLB | MaskB,
			want: []Transition{
				{Button: "A", Pressed: false},
				{Button: "B", Pressed: true},
			},
		},
		{
			name: "dpad ordering follows table order",
			prev: 0,
			curr: MaskDUp | MaskDLeft | MaskStart,
			want: []Transition{
				{Button: "DUp", Pressed: true},
				{Button: "DLeft", Pressed: true},
				{Button: "Start", Pressed: true},
			},
		},
		{
			name: "unnamed bits ignored",
			prev: 0,
			curr: 0x0400 | 0x0800, // guide/reserved bits
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transitions(tt.prev, tt.curr)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Transitions(%#x, %#x) = %v, want %v", tt.prev, tt.curr, got, tt.want)
			}
		})
	}
}

func TestTransitionsAllButtons(t *testing.T) {
	got := Transitions(0, 0xFFFF)
	if len(got) != 14 {
		t.Fatalf("full-mask press produced %d transitions, want 14", len(got))
	}
	names := map[string]bool{}
	for _, tr := range got {
		if !tr.Pressed {
			t.Errorf("button %s reported released on 0->0xFFFF", tr.Button)
		}
		names[tr.Button] = true
	}
	for _, want := range []string{"DUp", "DDown", "DLeft", "DRight", "Start", "Back", "LS", "RS", "LB", "RB", "A", "B", "X", "Y"} {
		if !names[want] {
			t.Errorf("button %s missing from transitions", want)
		}
	}
}

// scriptedDevice plays back a fixed series of per-tick states. The
// poller queries slots strictly in order on one goroutine, so the tick
// advances after the last slot of each sweep; the final state repeats.
type scriptedDevice struct {
	steps [][Slots]slotState
	tick  int
}

type slotState struct {
	buttons   uint16
	connected bool
}

func (d *scriptedDevice) State(slot int) (uint16, bool) {
	i := d.tick
	if i >= len(d.steps) {
		i = len(d.steps) - 1
	}
	st := d.steps[i][slot]
	if slot == Slots-1 && d.tick < len(d.steps) {
		d.tick++
	}
	return st.buttons, st.connected
}

func TestPollerEmitsTransitions(t *testing.T) {
	dev := &scriptedDevice{
		steps: [][Slots]slotState{
			{{0, true}},     // connect transition, mask reset
			{{MaskA, true}}, // A pressed
			{{MaskA, true}}, // held, no event
			{{0, true}},     // A released
			{{0, true}},     // steady state
		},
	}

	p := NewPoller(dev, WithInterval(time.Millisecond))
	p.Start()
	defer p.Close()

	want := []Event{
		{Slot: 0, Button: "A", Pressed: true},
		{Slot: 0, Button: "A", Pressed: false},
	}
	for i, w := range want {
		select {
		case got := <-p.Events():
			if got != w {
				t.Fatalf("event[%d] = %+v, want %+v", i, got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d", i)
		}
	}
}

func TestPollerDisconnectResetsMask(t *testing.T) {
	dev := &scriptedDevice{
		steps: [][Slots]slotState{
			{{0, true}},      // connect
			{{MaskB, true}},  // press B
			{{0, false}},     // unplug while held
			{{MaskB, false}}, // noise while unplugged
			{{0, true}},      // reconnect, no phantom release
			{{0, true}},
		},
	}

	p := NewPoller(dev, WithInterval(time.Millisecond))
	p.Start()
	defer p.Close()

	// Only the press should ever arrive; the disconnect swallows the
	// release and the reconnect must not invent one.
	select {
	case got := <-p.Events():
		want := Event{Slot: 0, Button: "B", Pressed: true}
		if got != want {
			t.Fatalf("first event = %+v, want %+v", got, want)
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for press")
	}

	select {
	case got := <-p.Events():
		t.Fatalf("unexpected event after disconnect: %+v", got)
	case <-time.After(50 * time.Millisecond):
	}
}
