// Package synth emits tagged synthetic key input.
//
// Every event a Synthesizer injects carries the fixed sentinel tag so the
// hook-side classifier can recognize the engine's own output and pass it
// through untouched, breaking the feedback loop between injection and the
// system-wide hook.
package synth
