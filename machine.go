package statekit

import (
	"fmt"

	"go.uber.org/zap"
)

// DynamicPlaceholder is reported by AllowedTriggers for a dynamic transition
// that was left unresolved.
const DynamicPlaceholder = "?"

// Destination is one value of the AllowedTriggers result: either a concrete
// destination state or an unresolved dynamic edge.
type Destination[TState comparable] struct {
	// State is the destination state. It holds the zero value when Dynamic is
	// set.
	State TState

	// Dynamic indicates a dynamic transition that was not resolved.
	Dynamic bool
}

func (d Destination[TState]) String() string {
	if d.Dynamic {
		return DynamicPlaceholder
	}
	return fmt.Sprintf("%v", d.State)
}

// Machine drives state transitions for a single workflow instance. It owns the
// state registry, the event registry and the data context, and holds exactly
// one current state at any time.
//
// A Machine is not safe for concurrent use. Guards, resolvers and event
// handlers run inline on the calling goroutine; a host needing concurrent
// access must serialize calls externally.
type Machine[TState, TTrigger comparable] struct {
	current     TState
	initialized bool
	registry    *stateRegistry[TState, TTrigger]
	events      *eventRegistry[TState, TTrigger]
	data        *dataContext
	stateHook   func(TState)
	log         *zap.Logger
}

// New creates an empty machine. Init must be called before firing triggers.
func New[TState, TTrigger comparable]() *Machine[TState, TTrigger] {
	return &Machine[TState, TTrigger]{
		registry: newStateRegistry[TState, TTrigger](),
		events:   newEventRegistry[TState, TTrigger](),
		data:     &dataContext{},
		log:      zap.NewNop(),
	}
}

// Init force-sets the current state without firing any events, bypassing the
// transition protocol entirely. It may be called again at any time, e.g. to
// restore a persisted state.
func (m *Machine[TState, TTrigger]) Init(state TState) {
	m.current = state
	m.initialized = true
}

// State returns the current state.
func (m *Machine[TState, TTrigger]) State() TState {
	return m.current
}

// States returns the configured state names, in no particular order.
func (m *Machine[TState, TTrigger]) States() []TState {
	states := make([]TState, 0, len(m.registry.nodes))
	for state := range m.registry.nodes {
		states = append(states, state)
	}
	return states
}

// Configure begins configuration of a state, creating it on first reference.
func (m *Machine[TState, TTrigger]) Configure(state TState) *StateConfig[TState, TTrigger] {
	return &StateConfig[TState, TTrigger]{
		machine: m,
		node:    m.registry.ensure(state),
	}
}

// SetDataContext configures the ambient data value supplied to guards,
// resolvers and handlers when Fire is called without an explicit datum. The
// value may be a plain value or a func() any producing one per call.
func (m *Machine[TState, TTrigger]) SetDataContext(v any) {
	m.data.set(v)
}

// DataContext returns the resolved ambient data value.
func (m *Machine[TState, TTrigger]) DataContext() any {
	return m.data.current()
}

// OnTransition registers a global handler invoked after every successful
// transition, once the new state is in place. Handlers run in registration
// order.
func (m *Machine[TState, TTrigger]) OnTransition(fn HandlerFunc[TState, TTrigger]) {
	m.events.addTransition(fn)
}

// OnUnhandledTrigger registers a handler invoked when a fired trigger has no
// reachable transition. With at least one handler registered, Fire reports
// such triggers as a non-error false instead of a TriggerNotFoundError.
func (m *Machine[TState, TTrigger]) OnUnhandledTrigger(fn UnhandledTriggerFunc[TState, TTrigger]) {
	m.events.addUnhandled(fn)
}

// OnStateChanged sets the hook invoked with the new state after every
// successful transition, replacing any previously set hook. Intended for
// mirroring the state into external storage.
func (m *Machine[TState, TTrigger]) OnStateChanged(fn func(TState)) {
	m.stateHook = fn
}

// SetLogger attaches a structured logger for fire attempts, transitions and
// unhandled triggers. The default is a no-op logger.
func (m *Machine[TState, TTrigger]) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	m.log = log
}

// Fire attempts to run the transition for trigger from the current state. The
// optional datum overrides the configured data context for this call.
//
// It returns true when a transition ran to completion. It returns false
// without an error on the two expected non-transitions: a guard rejected the
// trigger, or the trigger was unhandled and an unhandled-trigger handler is
// registered. Configuration and resolution failures are returned as errors,
// detected before any state mutation: either the full exit, mutate, entry
// sequence completes or nothing observable changes.
func (m *Machine[TState, TTrigger]) Fire(trigger TTrigger, data any) (bool, error) {
	if !m.initialized {
		return false, &NoInitialStateError{}
	}
	source := m.current
	m.log.Debug("firing trigger",
		zap.Any("trigger", trigger),
		zap.Any("state", source))

	def, err := m.registry.findHandler(source, trigger)
	if err != nil {
		return false, err
	}
	if def == nil {
		if m.events.dispatchUnhandled(trigger, source) {
			m.log.Warn("unhandled trigger",
				zap.Any("trigger", trigger),
				zap.Any("state", source))
			return false, nil
		}
		return false, &TriggerNotFoundError{Trigger: trigger, State: source}
	}

	resolved := m.data.resolve(data)

	info := Transition[TState, TTrigger]{
		Source:      source,
		Destination: def.destination,
		Trigger:     trigger,
	}
	if !def.guardPasses(info, resolved) {
		m.log.Debug("guard rejected trigger",
			zap.Any("trigger", trigger),
			zap.Any("state", source))
		return false, nil
	}

	destination, err := def.resolveDestination(info, resolved, true)
	if err != nil {
		return false, err
	}
	info.Destination = destination

	// Exit handlers observe the old state, everything after the mutation the
	// new one.
	m.events.dispatchExit(source, info, resolved)
	m.current = destination
	if m.stateHook != nil {
		m.stateHook(destination)
	}
	m.events.dispatchTransition(info, resolved)
	m.events.dispatchEntry(destination, info, resolved)

	m.log.Debug("transitioned",
		zap.Any("from", source),
		zap.Any("to", destination),
		zap.Any("trigger", trigger))
	return true, nil
}

// CanFire reports whether trigger has a guard-passing transition reachable
// from the current state. It evaluates only the guard: no destination is
// resolved, no handler runs and no state mutates.
func (m *Machine[TState, TTrigger]) CanFire(trigger TTrigger, data any) (bool, error) {
	def, err := m.registry.findHandler(m.current, trigger)
	if err != nil {
		return false, err
	}
	if def == nil {
		return false, nil
	}
	info := Transition[TState, TTrigger]{
		Source:      m.current,
		Destination: def.destination,
		Trigger:     trigger,
	}
	return def.guardPasses(info, m.data.resolve(data)), nil
}

// AllowedTriggers returns the guard-passing triggers reachable from the
// current state with their destinations. A state's own edge shadows an
// inherited edge of the same trigger even when its guard fails. Dynamic
// destinations are resolved only when evaluateDynamic is set; otherwise they
// are reported as unresolved and render as the "?" placeholder. An
// unconfigured current state yields an empty result.
func (m *Machine[TState, TTrigger]) AllowedTriggers(data any, evaluateDynamic bool) (map[TTrigger]Destination[TState], error) {
	resolved := m.data.resolve(data)
	result := make(map[TTrigger]Destination[TState])
	considered := make(map[TTrigger]bool)
	seen := make(map[TState]bool)

	node, ok := m.registry.lookup(m.current)
	for ok {
		if seen[node.state] {
			return nil, cycleError(m.current)
		}
		seen[node.state] = true
		for trigger, def := range node.transitions {
			if considered[trigger] {
				continue
			}
			considered[trigger] = true
			info := Transition[TState, TTrigger]{
				Source:      m.current,
				Destination: def.destination,
				Trigger:     trigger,
			}
			if !def.guardPasses(info, resolved) {
				continue
			}
			if def.isDynamic() && !evaluateDynamic {
				result[trigger] = Destination[TState]{Dynamic: true}
				continue
			}
			destination, err := def.resolveDestination(info, resolved, evaluateDynamic)
			if err != nil {
				return nil, err
			}
			result[trigger] = Destination[TState]{State: destination}
		}
		node, ok = m.registry.parentOf(node)
	}
	return result, nil
}

// IsInState reports whether the current state is state itself or a descendant
// of it, direct or transitive.
func (m *Machine[TState, TTrigger]) IsInState(state TState) (bool, error) {
	return m.registry.isInState(m.current, state)
}

// String returns a string representation of the current state.
func (m *Machine[TState, TTrigger]) String() string {
	return fmt.Sprintf("Machine { State = %v }", m.current)
}
