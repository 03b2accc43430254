package statekit

// stateNode is the configuration record for a single state: its optional
// parent and the transitions it declares. Nodes are created lazily on first
// configuration reference and live for the lifetime of the machine.
type stateNode[TState, TTrigger comparable] struct {
	state       TState
	parent      TState
	hasParent   bool
	transitions map[TTrigger]*transitionDef[TState, TTrigger]
}

func newStateNode[TState, TTrigger comparable](state TState) *stateNode[TState, TTrigger] {
	return &stateNode[TState, TTrigger]{
		state:       state,
		transitions: make(map[TTrigger]*transitionDef[TState, TTrigger]),
	}
}

// setParent records the parent state. Reconfiguring replaces the old parent.
func (n *stateNode[TState, TTrigger]) setParent(parent TState) {
	n.parent = parent
	n.hasParent = true
}

// setTransition installs an edge, overwriting any previous declaration for the
// same trigger.
func (n *stateNode[TState, TTrigger]) setTransition(def *transitionDef[TState, TTrigger]) {
	n.transitions[def.trigger] = def
}

func (n *stateNode[TState, TTrigger]) transition(trigger TTrigger) (*transitionDef[TState, TTrigger], bool) {
	def, ok := n.transitions[trigger]
	return def, ok
}
