// Package action defines the macro action model: the parameter types a
// hotkey can bind to and the Lua runner behind script actions.
//
// Actions carry data only. Interpretation (synthesis, sleeping, error
// recovery) belongs to the engine's executor; scripts call back into it
// through the Bridge interface.
package action
