package statekit

// HandlerFunc is invoked with the transition information and the resolved data
// value. It is the signature of entry, exit and transition handlers.
type HandlerFunc[TState, TTrigger comparable] func(t Transition[TState, TTrigger], data any)

// UnhandledTriggerFunc is invoked when a fired trigger has no reachable
// transition in the current state's hierarchy.
type UnhandledTriggerFunc[TState, TTrigger comparable] func(trigger TTrigger, state TState)

// eventRegistry stores event handlers in registration order. Entry and exit
// handlers are scoped to a state; transition and unhandled handlers are
// global. Handlers cannot be removed once registered.
type eventRegistry[TState, TTrigger comparable] struct {
	entry      map[TState][]HandlerFunc[TState, TTrigger]
	exit       map[TState][]HandlerFunc[TState, TTrigger]
	transition []HandlerFunc[TState, TTrigger]
	unhandled  []UnhandledTriggerFunc[TState, TTrigger]
}

func newEventRegistry[TState, TTrigger comparable]() *eventRegistry[TState, TTrigger] {
	return &eventRegistry[TState, TTrigger]{
		entry: make(map[TState][]HandlerFunc[TState, TTrigger]),
		exit:  make(map[TState][]HandlerFunc[TState, TTrigger]),
	}
}

func (e *eventRegistry[TState, TTrigger]) addEntry(state TState, fn HandlerFunc[TState, TTrigger]) {
	e.entry[state] = append(e.entry[state], fn)
}

func (e *eventRegistry[TState, TTrigger]) addExit(state TState, fn HandlerFunc[TState, TTrigger]) {
	e.exit[state] = append(e.exit[state], fn)
}

func (e *eventRegistry[TState, TTrigger]) addTransition(fn HandlerFunc[TState, TTrigger]) {
	e.transition = append(e.transition, fn)
}

func (e *eventRegistry[TState, TTrigger]) addUnhandled(fn UnhandledTriggerFunc[TState, TTrigger]) {
	e.unhandled = append(e.unhandled, fn)
}

func (e *eventRegistry[TState, TTrigger]) dispatchEntry(state TState, t Transition[TState, TTrigger], data any) {
	for _, fn := range e.entry[state] {
		fn(t, data)
	}
}

func (e *eventRegistry[TState, TTrigger]) dispatchExit(state TState, t Transition[TState, TTrigger], data any) {
	for _, fn := range e.exit[state] {
		fn(t, data)
	}
}

func (e *eventRegistry[TState, TTrigger]) dispatchTransition(t Transition[TState, TTrigger], data any) {
	for _, fn := range e.transition {
		fn(t, data)
	}
}

// dispatchUnhandled invokes all unhandled-trigger handlers and reports whether
// any were registered.
func (e *eventRegistry[TState, TTrigger]) dispatchUnhandled(trigger TTrigger, state TState) bool {
	if len(e.unhandled) == 0 {
		return false
	}
	for _, fn := range e.unhandled {
		fn(trigger, state)
	}
	return true
}
