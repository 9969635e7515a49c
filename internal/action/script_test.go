package action

import (
	"errors"
	"strings"
	"testing"
	"time"
)

// recordingBridge logs every host call a script makes.
type recordingBridge struct {
	calls  []string
	keyErr error
}

func (b *recordingBridge) TypeText(text string, delay time.Duration) error {
	b.calls = append(b.calls, "type:"+text)
	return nil
}

func (b *recordingBridge) Key(name string, action KeyAction) error {
	b.calls = append(b.calls, "key:"+name+":"+string(action))
	return b.keyErr
}

func (b *recordingBridge) Wait(d time.Duration) {
	b.calls = append(b.calls, "wait:"+d.String())
}

func TestScriptRunnerHostFunctions(t *testing.T) {
	b := &recordingBridge{}
	r := NewScriptRunner(b, nil)

	err := r.Run(`
		key("Ctrl", "press")
		type_text("hello")
		wait(30)
		key("Ctrl", "release")
		key("Enter")
	`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{
		"key:Ctrl:press",
		"type:hello",
		"wait:30ms",
		"key:Ctrl:release",
		"key:Enter:complete",
	}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, b.calls[i], want[i])
		}
	}
}

func TestScriptRunnerLuaLogic(t *testing.T) {
	b := &recordingBridge{}
	r := NewScriptRunner(b, nil)

	err := r.Run(`
		for i = 1, 3 do
			type_text("x" .. i)
		end
	`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(b.calls) != 3 || b.calls[2] != "type:x3" {
		t.Errorf("calls = %v, want three type calls ending in x3", b.calls)
	}
}

func TestScriptRunnerHostErrorAborts(t *testing.T) {
	b := &recordingBridge{keyErr: errors.New("injection refused")}
	r := NewScriptRunner(b, nil)

	err := r.Run(`
		key("A")
		type_text("never reached")
	`)
	if err == nil {
		t.Fatal("Run succeeded, want script error")
	}
	var se *ScriptError
	if !errors.As(err, &se) {
		t.Fatalf("error type = %T, want *ScriptError", err)
	}
	for _, c := range b.calls {
		if strings.HasPrefix(c, "type:") {
			t.Error("script continued past failing host call")
		}
	}
}

func TestScriptRunnerHostErrorRecoverable(t *testing.T) {
	b := &recordingBridge{keyErr: errors.New("injection refused")}
	r := NewScriptRunner(b, nil)

	err := r.Run(`
		pcall(function() key("A") end)
		wait(10)
	`)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if b.calls[len(b.calls)-1] != "wait:10ms" {
		t.Errorf("calls = %v, want pcall-guarded continuation", b.calls)
	}
}

func TestScriptRunnerSandbox(t *testing.T) {
	r := NewScriptRunner(&recordingBridge{}, nil)

	// Filesystem and loader escapes must be gone.
	for _, src := range []string{
		`dofile("/etc/passwd")`,
		`loadfile("x")`,
		`load("return 1")()`,
		`io.open("/etc/passwd")`,
		`os.execute("true")`,
	} {
		if err := r.Run(src); err == nil {
			t.Errorf("sandbox allowed %q", src)
		}
	}

	// The safe subset still works.
	if err := r.Run(`local s = string.upper("ok"); local n = math.max(1, 2)`); err != nil {
		t.Errorf("safe stdlib broken: %v", err)
	}
}

func TestScriptRunnerSyntaxError(t *testing.T) {
	r := NewScriptRunner(&recordingBridge{}, nil)
	if err := r.Run(`this is not lua`); err == nil {
		t.Error("syntax error not reported")
	}
}
