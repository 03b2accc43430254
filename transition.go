package statekit

// Transition describes one state change. It is handed to guards, dynamic
// resolvers and event handlers together with the resolved data value.
type Transition[TState, TTrigger comparable] struct {
	// Source is the state transitioned from.
	Source TState

	// Destination is the state transitioned to. For a dynamic transition it
	// holds the zero value until the resolver has run.
	Destination TState

	// Trigger is the trigger that caused the transition.
	Trigger TTrigger
}

// IsReentry returns true if the transition is the identity transition.
func (t Transition[TState, TTrigger]) IsReentry() bool {
	return t.Source == t.Destination
}

// transitionDef is one configured (state, trigger) edge. A state holds at most
// one edge per trigger; re-declaring a trigger replaces the previous edge.
type transitionDef[TState, TTrigger comparable] struct {
	source       TState
	trigger      TTrigger
	destination  TState
	guard        GuardFunc[TState, TTrigger]
	guardDesc    string
	resolver     ResolverFunc[TState, TTrigger]
	resolverDesc string
}

func (d *transitionDef[TState, TTrigger]) isDynamic() bool {
	return d.resolver != nil
}

// guardPasses evaluates the configured guard. A nil guard always passes.
func (d *transitionDef[TState, TTrigger]) guardPasses(t Transition[TState, TTrigger], data any) bool {
	if d.guard == nil {
		return true
	}
	return d.guard(t, data)
}

// resolveDestination returns the effective destination of the edge. Static
// destinations are returned as configured; the resolver runs only when
// evaluateDynamic is set, and a resolver failure is reported as a
// DynamicResolutionError naming the trigger.
func (d *transitionDef[TState, TTrigger]) resolveDestination(
	t Transition[TState, TTrigger],
	data any,
	evaluateDynamic bool,
) (TState, error) {
	if d.resolver == nil || !evaluateDynamic {
		return d.destination, nil
	}
	destination, err := d.resolver(t, data)
	if err != nil {
		var zero TState
		return zero, &DynamicResolutionError{Trigger: d.trigger, Err: err}
	}
	return destination, nil
}
