// Package key provides the codec between platform virtual-key codes and
// canonical symbolic key names.
//
// The codec is pure: it holds no state and performs no platform calls.
// Canonical names are the ones accepted in hotkey configuration ("A",
// "F2", "Numpad7", "Space", ...). Codes the codec does not know render to
// a raw "VK_<hex>" fallback that can never match a configured name.
package key
