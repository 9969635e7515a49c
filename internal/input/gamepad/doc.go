// Package gamepad polls controller slots and emits button transitions.
//
// The poller is free-running and independent of the engine's toggle and
// phase: gating happens downstream in the executor. Bitmask diffing is a
// pure function so transition logic is testable without hardware.
package gamepad
