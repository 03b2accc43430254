package statekit

import "strconv"

// StateConfig is the fluent configurator for a single state. All methods
// return the receiver for chaining. The fluent form is sugar over the
// registries: any sequence of calls producing the same edges and handlers is
// equivalent.
type StateConfig[TState, TTrigger comparable] struct {
	machine *Machine[TState, TTrigger]
	node    *stateNode[TState, TTrigger]
}

// State returns the state being configured.
func (c *StateConfig[TState, TTrigger]) State() TState {
	return c.node.state
}

// SubstateOf makes the state a substate of parent. The substate inherits every
// parent transition it does not shadow with an edge of its own.
func (c *StateConfig[TState, TTrigger]) SubstateOf(parent TState) *StateConfig[TState, TTrigger] {
	c.machine.registry.ensure(parent)
	c.node.setParent(parent)
	return c
}

// Permit adds an unconditional transition to destination on trigger,
// overwriting any previous edge for the trigger.
func (c *StateConfig[TState, TTrigger]) Permit(trigger TTrigger, destination TState) *StateConfig[TState, TTrigger] {
	c.node.setTransition(&transitionDef[TState, TTrigger]{
		source:      c.node.state,
		trigger:     trigger,
		destination: destination,
	})
	return c
}

// PermitIf adds a transition taken only when guard passes. A failing guard
// makes Fire return false without dispatching any event.
func (c *StateConfig[TState, TTrigger]) PermitIf(trigger TTrigger, destination TState, guard GuardFunc[TState, TTrigger]) *StateConfig[TState, TTrigger] {
	c.node.setTransition(&transitionDef[TState, TTrigger]{
		source:      c.node.state,
		trigger:     trigger,
		destination: destination,
		guard:       guard,
		guardDesc:   functionDescription(guard),
	})
	return c
}

// PermitWhen adds a transition gated by a literal verdict, mirroring a boolean
// guard in a declarative definition.
func (c *StateConfig[TState, TTrigger]) PermitWhen(trigger TTrigger, destination TState, allowed bool) *StateConfig[TState, TTrigger] {
	c.node.setTransition(&transitionDef[TState, TTrigger]{
		source:      c.node.state,
		trigger:     trigger,
		destination: destination,
		guard:       GuardValue[TState, TTrigger](allowed),
		guardDesc:   strconv.FormatBool(allowed),
	})
	return c
}

// PermitDynamic adds a transition whose destination is computed by resolver at
// fire time.
func (c *StateConfig[TState, TTrigger]) PermitDynamic(trigger TTrigger, resolver ResolverFunc[TState, TTrigger]) *StateConfig[TState, TTrigger] {
	c.node.setTransition(&transitionDef[TState, TTrigger]{
		source:       c.node.state,
		trigger:      trigger,
		resolver:     resolver,
		resolverDesc: functionDescription(resolver),
	})
	return c
}

// PermitDynamicIf adds a dynamic transition taken only when guard passes.
func (c *StateConfig[TState, TTrigger]) PermitDynamicIf(trigger TTrigger, resolver ResolverFunc[TState, TTrigger], guard GuardFunc[TState, TTrigger]) *StateConfig[TState, TTrigger] {
	c.node.setTransition(&transitionDef[TState, TTrigger]{
		source:       c.node.state,
		trigger:      trigger,
		resolver:     resolver,
		resolverDesc: functionDescription(resolver),
		guard:        guard,
		guardDesc:    functionDescription(guard),
	})
	return c
}

// OnEntry registers a handler run after the machine enters this state.
// Handlers run in registration order and cannot be removed.
func (c *StateConfig[TState, TTrigger]) OnEntry(fn HandlerFunc[TState, TTrigger]) *StateConfig[TState, TTrigger] {
	c.machine.events.addEntry(c.node.state, fn)
	return c
}

// OnExit registers a handler run before the machine leaves this state. Only
// the current state's exit handlers run on a transition, not its ancestors'.
func (c *StateConfig[TState, TTrigger]) OnExit(fn HandlerFunc[TState, TTrigger]) *StateConfig[TState, TTrigger] {
	c.machine.events.addExit(c.node.state, fn)
	return c
}
