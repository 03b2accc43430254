package statekit

import "fmt"

// NoInitialStateError is returned when Fire is called before Init.
type NoInitialStateError struct{}

func (e *NoInitialStateError) Error() string {
	return "no initial state: call Init before firing triggers"
}

// TriggerNotFoundError is returned when a fired trigger has no reachable
// transition in the current state or any of its ancestors, and no
// unhandled-trigger handler is registered.
type TriggerNotFoundError struct {
	Trigger any
	State   any
}

func (e *TriggerNotFoundError) Error() string {
	return fmt.Sprintf(
		"trigger '%v' is not handled by state '%v' or any of its ancestors",
		e.Trigger, e.State)
}

// UnknownStateError indicates a strict registry lookup on a state that was
// never configured.
type UnknownStateError struct {
	State any
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("state '%v' is not configured", e.State)
}

// DynamicResolutionError indicates a dynamic resolver failed to produce a
// destination state.
type DynamicResolutionError struct {
	Trigger any
	Err     error
}

func (e *DynamicResolutionError) Error() string {
	return fmt.Sprintf(
		"dynamic transition for trigger '%v' did not resolve to a destination: %v",
		e.Trigger, e.Err)
}

func (e *DynamicResolutionError) Unwrap() error { return e.Err }

// ConfigurationError indicates an invalid machine configuration, such as a
// cycle in a parent chain.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return e.Message }
