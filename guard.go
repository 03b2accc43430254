package statekit

// GuardFunc gates whether a transition may be taken. It receives the pending
// transition and the resolved data value. For a dynamic transition the
// destination is not yet known when the guard runs.
type GuardFunc[TState, TTrigger comparable] func(t Transition[TState, TTrigger], data any) bool

// ResolverFunc computes the destination of a dynamic transition at fire time.
// Returning an error aborts the fire with a DynamicResolutionError before any
// event dispatch or state mutation.
type ResolverFunc[TState, TTrigger comparable] func(t Transition[TState, TTrigger], data any) (TState, error)

// GuardValue returns a guard with a fixed verdict, the programmatic equivalent
// of a literal boolean guard in a declarative definition.
func GuardValue[TState, TTrigger comparable](allowed bool) GuardFunc[TState, TTrigger] {
	return func(Transition[TState, TTrigger], any) bool {
		return allowed
	}
}
