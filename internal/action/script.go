package action

import (
	"fmt"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/macrostorm/internal/logging"
)

// Bridge is what a script may do to the machine. The executor implements
// it with the same interpreters and error recovery that type_text and
// sequence actions use.
type Bridge interface {
	// TypeText types a string with the given per-key delay; zero means
	// the default delay.
	TypeText(text string, delay time.Duration) error

	// Key synthesizes one key step.
	Key(name string, action KeyAction) error

	// Wait pauses script execution.
	Wait(d time.Duration)
}

// ScriptError wraps a Lua failure.
type ScriptError struct {
	Err error
}

// Error implements the error interface.
func (e *ScriptError) Error() string {
	return fmt.Sprintf("script action: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ScriptError) Unwrap() error { return e.Err }

// ScriptRunner executes script action bodies.
//
// gopher-lua states are not goroutine-safe and are cheap to discard, so
// each run gets a fresh state. Runs happen on the executor goroutine
// only, which also keeps script sleeps off the hook thread.
type ScriptRunner struct {
	bridge Bridge
	log    *logging.Logger
}

// NewScriptRunner creates a runner bound to a bridge.
func NewScriptRunner(bridge Bridge, log *logging.Logger) *ScriptRunner {
	if log == nil {
		log = logging.NullLogger
	}
	return &ScriptRunner{bridge: bridge, log: log}
}

// safeLibs is the stdlib subset scripts get. No io, no os, no debug.
var safeLibs = []struct {
	name string
	fn   lua.LGFunction
}{
	{lua.BaseLibName, lua.OpenBase},
	{lua.TabLibName, lua.OpenTable},
	{lua.StringLibName, lua.OpenString},
	{lua.MathLibName, lua.OpenMath},
}

// blockedBase are base-library escape hatches removed after OpenBase.
var blockedBase = []string{"dofile", "loadfile", "load", "loadstring", "print"}

// Run executes one script body. Host failures surface as Lua errors so a
// script can pcall around a failing step; an unhandled error aborts the
// rest of the script, mirroring how a sequence stops only on Lua-level
// failure, never on a skipped step.
func (r *ScriptRunner) Run(source string) error {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range safeLibs {
		L.Push(L.NewFunction(lib.fn))
		L.Push(lua.LString(lib.name))
		L.Call(1, 0)
	}
	for _, name := range blockedBase {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("type_text", L.NewFunction(r.luaTypeText))
	L.SetGlobal("key", L.NewFunction(r.luaKey))
	L.SetGlobal("wait", L.NewFunction(r.luaWait))
	L.SetGlobal("log", L.NewFunction(r.luaLog))

	if err := L.DoString(source); err != nil {
		return &ScriptError{Err: err}
	}
	return nil
}

// luaTypeText implements type_text(text[, delay_ms]).
func (r *ScriptRunner) luaTypeText(L *lua.LState) int {
	text := L.CheckString(1)
	delay := time.Duration(L.OptInt64(2, 0)) * time.Millisecond
	if err := r.bridge.TypeText(text, delay); err != nil {
		L.RaiseError("type_text: %v", err)
	}
	return 0
}

// luaKey implements key(name[, action]) with action press, release or
// complete.
func (r *ScriptRunner) luaKey(L *lua.LState) int {
	name := L.CheckString(1)
	act, err := ParseKeyAction(L.OptString(2, ""))
	if err != nil {
		L.RaiseError("key: %v", err)
		return 0
	}
	if err := r.bridge.Key(name, act); err != nil {
		L.RaiseError("key: %v", err)
	}
	return 0
}

// luaWait implements wait(ms).
func (r *ScriptRunner) luaWait(L *lua.LState) int {
	ms := L.CheckInt64(1)
	if ms > 0 {
		r.bridge.Wait(time.Duration(ms) * time.Millisecond)
	}
	return 0
}

// luaLog implements log(msg), replacing the removed print.
func (r *ScriptRunner) luaLog(L *lua.LState) int {
	r.log.Info("script: %s", L.CheckString(1))
	return 0
}
