// Package hook installs the process-wide low-level keyboard hook and
// delivers every keyboard event to an injectable callback.
//
// The callback runs inside the OS hook invocation and must return within
// a short bounded time: no blocking, no I/O, no long-held locks, or the
// OS may silently remove the hook. The platform-level trampoline is
// stateless; it resolves the owning adapter through a registered handle
// table and delegates, so classification logic is unit-testable without a
// live hook.
package hook
