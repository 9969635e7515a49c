package action

import (
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestTypeTextCharDelay(t *testing.T) {
	ms := func(n int64) *int64 { return &n }

	tests := []struct {
		name string
		tt   TypeText
		want time.Duration
	}{
		{"fastest preset", TypeText{Speed: "fastest"}, 5 * time.Millisecond},
		{"fast preset", TypeText{Speed: "fast"}, 10 * time.Millisecond},
		{"normal preset", TypeText{Speed: "normal"}, 20 * time.Millisecond},
		{"slow preset", TypeText{Speed: "slow"}, 50 * time.Millisecond},
		{"unset defaults", TypeText{}, 10 * time.Millisecond},
		{"unknown preset defaults", TypeText{Speed: "ludicrous"}, 10 * time.Millisecond},
		{"explicit delay wins", TypeText{Speed: "slow", Delay: ms(7)}, 7 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tt.CharDelay(); got != tt.want {
				t.Errorf("CharDelay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseKeyAction(t *testing.T) {
	tests := []struct {
		in      string
		want    KeyAction
		wantErr bool
	}{
		{"", ActionComplete, false},
		{"complete", ActionComplete, false},
		{"press", ActionPress, false},
		{"PRESS", ActionPress, false},
		{"release", ActionRelease, false},
		{"hold", "", true},
	}

	for _, tt := range tests {
		got, err := ParseKeyAction(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseKeyAction(%q) = (%q, %v), want (%q, err=%v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestStepUnmarshalYAML(t *testing.T) {
	src := `
- { type: "key", value: "Shift", action: "press" }
- { type: "key", value: "a", delay: 50 }
- { type: "wait", value: 100 }
- { type: "text", value: "done", delay: 5 }
- { type: "key", value: "Shift", action: "release" }
`
	var steps []Step
	if err := yaml.Unmarshal([]byte(src), &steps); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("decoded %d steps, want 5", len(steps))
	}

	if steps[0].Type != StepKey || steps[0].Key != "Shift" || steps[0].Action != ActionPress {
		t.Errorf("step[0] = %+v, want Shift press", steps[0])
	}
	if steps[1].Action != ActionComplete {
		t.Errorf("step[1] action = %q, want default complete", steps[1].Action)
	}
	if steps[1].Delay == nil || *steps[1].Delay != 50 {
		t.Errorf("step[1] delay = %v, want 50", steps[1].Delay)
	}
	if steps[2].Type != StepWait || steps[2].Wait != 100 {
		t.Errorf("step[2] = %+v, want wait 100", steps[2])
	}
	if steps[3].Type != StepText || steps[3].Text != "done" || steps[3].Delay == nil || *steps[3].Delay != 5 {
		t.Errorf("step[3] = %+v, want text done delay 5", steps[3])
	}
	if steps[4].Action != ActionRelease {
		t.Errorf("step[4] action = %q, want release", steps[4].Action)
	}
}

func TestStepUnmarshalRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"unknown type", `{ type: "hover", value: "a" }`},
		{"unknown action", `{ type: "key", value: "a", action: "smash" }`},
		{"non-numeric wait", `{ type: "wait", value: "soon" }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Step
			if err := yaml.Unmarshal([]byte(tt.src), &s); err == nil {
				t.Errorf("Unmarshal(%q) succeeded, want error", tt.src)
			}
		})
	}
}

func TestStepDelayDuration(t *testing.T) {
	var s Step
	if s.DelayDuration() != 0 {
		t.Error("unset delay should be zero")
	}
	d := int64(25)
	s.Delay = &d
	if s.DelayDuration() != 25*time.Millisecond {
		t.Errorf("DelayDuration() = %v, want 25ms", s.DelayDuration())
	}
}
