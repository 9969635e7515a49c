// Package engine is the macro engine core: the hook-side event
// classifier, the Idle/Executing phase state machine, the single-consumer
// macro executor, and the gamepad event forwarder.
//
// The classifier runs inside the OS hook callback and must return in
// bounded time; it reads shared state through atomics and a short-held
// read lock and hands work to the executor over a buffered channel. The
// executor owns all sleeping and all synthesis, so a multi-second macro
// never stalls the hook. The phase state machine guarantees at most one
// macro body runs at any instant, regardless of how keyboard and gamepad
// events interleave.
package engine
