package hook

import (
	"sync"

	"github.com/dshills/macrostorm/internal/input/key"
)

// KeyEvent is one keyboard transition as seen by the hook.
type KeyEvent struct {
	// Code is the canonical virtual-key code.
	Code key.Code

	// Down is true for key-down, false for key-up.
	Down bool

	// Repeat is true for auto-repeat events of a held key.
	Repeat bool

	// Injected is true when the event carries the synthesis sentinel,
	// i.e. the engine generated it itself.
	Injected bool
}

// Decision tells the hook what to do with the original event.
type Decision struct {
	// Swallow blocks the event from reaching the focused application.
	Swallow bool
}

// Callback classifies one event. It executes inside the hook invocation
// and is bound by the hook timing contract.
type Callback func(KeyEvent) Decision

// Handle is an installed hook. Install acquires it once; Uninstall
// releases it exactly once, later calls are no-ops.
type Handle struct {
	id       uint64
	mu       sync.Mutex
	released bool
	platform platformHook
}

// Uninstall removes the hook. Safe to call more than once; only the
// first call reaches the platform. Errors wrap ErrUninstallFailed and
// are non-fatal: callers log and continue.
func (h *Handle) Uninstall() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.released {
		return nil
	}
	h.released = true
	deregister(h.id)
	if h.platform == nil {
		return nil
	}
	return h.platform.uninstall()
}

// platformHook is the OS-specific half of a Handle.
type platformHook interface {
	uninstall() error
}

// registry is the process-global handle table the trampoline resolves
// through. Lookup is a short-held read lock, safe inside the hook.
var registry = struct {
	mu     sync.RWMutex
	nextID uint64
	cbs    map[uint64]Callback
}{cbs: make(map[uint64]Callback)}

// register adds a callback and returns its handle id.
func register(cb Callback) uint64 {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.nextID++
	id := registry.nextID
	registry.cbs[id] = cb
	return id
}

// resolve returns the callback for a handle id, or nil.
func resolve(id uint64) Callback {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.cbs[id]
}

// deregister removes a handle id from the table.
func deregister(id uint64) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	delete(registry.cbs, id)
}

// dispatch runs the callback registered under id. Events with no live
// callback pass through.
func dispatch(id uint64, ev KeyEvent) Decision {
	cb := resolve(id)
	if cb == nil {
		return Decision{}
	}
	return cb(ev)
}
