package graph

import (
	"fmt"
	"strings"

	"github.com/zhanbolat/statekit"
)

// Dot renders the machine configuration as a Graphviz digraph in UML style.
// Parent states become clusters containing their own node and their substates,
// dynamic transitions point at a diamond decision node, and the current state
// is marked with a point node.
func Dot(info statekit.MachineInfo) string {
	var sb strings.Builder
	sb.WriteString("digraph {\n")
	sb.WriteString("compound=true;\n")
	sb.WriteString("node [shape=Mrecord]\n")
	sb.WriteString("rankdir=\"LR\"\n")

	children := childrenByParent(info)
	clustered := make(map[string]bool)
	for parent, substates := range children {
		clustered[parent] = true
		for _, substate := range substates {
			clustered[substate] = true
		}
	}

	for _, state := range info.States {
		substates, ok := children[state.Name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("subgraph \"cluster%s\" {\n", sanitizeName(state.Name)))
		sb.WriteString(fmt.Sprintf("\tlabel = \"%s\"\n", escapeLabel(state.Name)))
		sb.WriteString(fmt.Sprintf("\t%s\n", formatOneState(state.Name)))
		for _, substate := range substates {
			if _, isParent := children[substate]; isParent {
				// Nested clusters are emitted at the top level; the grouping
				// is still visible through the parent label.
				continue
			}
			sb.WriteString(fmt.Sprintf("\t%s\n", formatOneState(substate)))
		}
		sb.WriteString("}\n")
	}

	for _, state := range info.States {
		if clustered[state.Name] {
			continue
		}
		sb.WriteString(formatOneState(state.Name))
		sb.WriteString("\n")
	}

	for _, state := range info.States {
		for _, t := range state.Transitions {
			if t.Dynamic {
				choice := decisionNodeName(state.Name, t.Trigger)
				sb.WriteString(fmt.Sprintf("\"%s\" [shape=diamond, label=\"%s\"];\n",
					choice, escapeLabel(t.Resolver)))
				sb.WriteString(formatOneTransition(state.Name, choice, t))
				continue
			}
			sb.WriteString(formatOneTransition(state.Name, t.Destination, t))
		}
	}

	if hasState(info, info.CurrentState) {
		sb.WriteString("init [label=\"\", shape=point];\n")
		sb.WriteString(fmt.Sprintf("init -> \"%s\"\n", escapeLabel(info.CurrentState)))
	}

	sb.WriteString("}\n")
	return sb.String()
}

func formatOneState(name string) string {
	escaped := escapeLabel(name)
	return fmt.Sprintf("\"%s\" [label=\"%s\"];", escaped, escaped)
}

func formatOneTransition(source, destination string, t statekit.TransitionInfo) string {
	return fmt.Sprintf("\"%s\" -> \"%s\" [label=\"%s\"];\n",
		escapeLabel(source), escapeLabel(destination), escapeLabel(transitionLabel(t)))
}
