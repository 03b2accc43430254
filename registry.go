package statekit

import "fmt"

// stateRegistry owns all state nodes of a machine. States come into existence
// on first configuration reference and are never removed.
type stateRegistry[TState, TTrigger comparable] struct {
	nodes map[TState]*stateNode[TState, TTrigger]
}

func newStateRegistry[TState, TTrigger comparable]() *stateRegistry[TState, TTrigger] {
	return &stateRegistry[TState, TTrigger]{
		nodes: make(map[TState]*stateNode[TState, TTrigger]),
	}
}

// ensure returns the node for state, creating an empty one on first reference.
func (r *stateRegistry[TState, TTrigger]) ensure(state TState) *stateNode[TState, TTrigger] {
	node, ok := r.nodes[state]
	if !ok {
		node = newStateNode[TState, TTrigger](state)
		r.nodes[state] = node
	}
	return node
}

func (r *stateRegistry[TState, TTrigger]) lookup(state TState) (*stateNode[TState, TTrigger], bool) {
	node, ok := r.nodes[state]
	return node, ok
}

// require is the strict lookup used for internal consistency checks.
func (r *stateRegistry[TState, TTrigger]) require(state TState) (*stateNode[TState, TTrigger], error) {
	node, ok := r.nodes[state]
	if !ok {
		return nil, &UnknownStateError{State: state}
	}
	return node, nil
}

// parentOf returns the node of a state's parent, if the state has one and the
// parent has been configured.
func (r *stateRegistry[TState, TTrigger]) parentOf(node *stateNode[TState, TTrigger]) (*stateNode[TState, TTrigger], bool) {
	if !node.hasParent {
		return nil, false
	}
	return r.lookup(node.parent)
}

// findHandler resolves trigger against the state's own transitions first, then
// walks up the parent chain. A state's own edge always shadows an inherited
// one of the same trigger. The walk refuses parent cycles instead of spinning
// forever. A nil result with a nil error means not found.
func (r *stateRegistry[TState, TTrigger]) findHandler(state TState, trigger TTrigger) (*transitionDef[TState, TTrigger], error) {
	seen := make(map[TState]bool)
	node, ok := r.lookup(state)
	for ok {
		if seen[node.state] {
			return nil, cycleError(state)
		}
		seen[node.state] = true
		if def, found := node.transition(trigger); found {
			return def, nil
		}
		node, ok = r.parentOf(node)
	}
	return nil, nil
}

// isInState reports whether current is target itself or a descendant of it,
// following the parent chain. The current state must be configured unless it
// equals the target directly.
func (r *stateRegistry[TState, TTrigger]) isInState(current, target TState) (bool, error) {
	if current == target {
		return true, nil
	}
	node, err := r.require(current)
	if err != nil {
		return false, err
	}
	seen := make(map[TState]bool)
	for {
		seen[node.state] = true
		parent, ok := r.parentOf(node)
		if !ok {
			return false, nil
		}
		if seen[parent.state] {
			return false, cycleError(current)
		}
		if parent.state == target {
			return true, nil
		}
		node = parent
	}
}

func cycleError[TState comparable](state TState) error {
	return &ConfigurationError{
		Message: fmt.Sprintf("parent chain of state '%v' contains a cycle", state),
	}
}
