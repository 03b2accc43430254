package statekit

import (
	"fmt"
	"sort"
)

// MachineInfo is a snapshot of the machine configuration for introspection and
// diagram generation. State and trigger values are rendered with the fmt
// package; states and transitions are sorted by name for deterministic output.
type MachineInfo struct {
	// CurrentState is the rendered current state.
	CurrentState string

	// States describes every configured state.
	States []StateInfo
}

// StateInfo describes one configured state.
type StateInfo struct {
	// Name is the rendered state name.
	Name string

	// Parent is the rendered parent state name when HasParent is set.
	Parent string

	// HasParent indicates the state is a substate.
	HasParent bool

	// Transitions are the edges declared by this state, excluding inherited
	// ones.
	Transitions []TransitionInfo
}

// TransitionInfo describes one configured edge.
type TransitionInfo struct {
	// Trigger is the rendered trigger name.
	Trigger string

	// Destination is the rendered destination state. It is empty for dynamic
	// transitions.
	Destination string

	// Dynamic indicates the destination is computed at fire time.
	Dynamic bool

	// Guarded indicates a guard is configured.
	Guarded bool

	// Guard describes the guard function, when guarded.
	Guard string

	// Resolver describes the resolver function, when dynamic.
	Resolver string
}

// Info returns a snapshot of the machine configuration.
func (m *Machine[TState, TTrigger]) Info() MachineInfo {
	info := MachineInfo{
		CurrentState: fmt.Sprintf("%v", m.current),
		States:       make([]StateInfo, 0, len(m.registry.nodes)),
	}
	for _, node := range m.registry.nodes {
		si := StateInfo{
			Name:      fmt.Sprintf("%v", node.state),
			HasParent: node.hasParent,
		}
		if node.hasParent {
			si.Parent = fmt.Sprintf("%v", node.parent)
		}
		for trigger, def := range node.transitions {
			ti := TransitionInfo{
				Trigger:  fmt.Sprintf("%v", trigger),
				Dynamic:  def.isDynamic(),
				Guarded:  def.guard != nil,
				Guard:    def.guardDesc,
				Resolver: def.resolverDesc,
			}
			if !ti.Dynamic {
				ti.Destination = fmt.Sprintf("%v", def.destination)
			}
			si.Transitions = append(si.Transitions, ti)
		}
		sort.Slice(si.Transitions, func(i, j int) bool {
			return si.Transitions[i].Trigger < si.Transitions[j].Trigger
		})
		info.States = append(info.States, si)
	}
	sort.Slice(info.States, func(i, j int) bool {
		return info.States[i].Name < info.States[j].Name
	})
	return info
}
