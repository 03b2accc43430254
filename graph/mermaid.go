package graph

import (
	"fmt"
	"strings"

	"github.com/zhanbolat/statekit"
)

// Direction specifies the flow direction of a Mermaid diagram.
type Direction int

const (
	// TopToBottom flows from top to bottom.
	TopToBottom Direction = iota
	// BottomToTop flows from bottom to top.
	BottomToTop
	// LeftToRight flows from left to right.
	LeftToRight
	// RightToLeft flows from right to left.
	RightToLeft
)

func (d Direction) code() string {
	switch d {
	case BottomToTop:
		return "BT"
	case LeftToRight:
		return "LR"
	case RightToLeft:
		return "RL"
	default:
		return "TB"
	}
}

// Mermaid renders the machine configuration as a Mermaid stateDiagram-v2
// flowing top to bottom.
func Mermaid(info statekit.MachineInfo) string {
	return MermaidWithDirection(info, TopToBottom)
}

// MermaidWithDirection renders the machine configuration as a Mermaid
// stateDiagram-v2 with the given flow direction. Parent states become
// composite states, dynamic transitions point at a choice pseudo-state, and
// the current state is marked as the start of the diagram.
func MermaidWithDirection(info statekit.MachineInfo, direction Direction) string {
	var sb strings.Builder
	sb.WriteString("stateDiagram-v2\n")
	sb.WriteString(fmt.Sprintf("\tdirection %s\n", direction.code()))

	// Alias sanitized identifiers back to the original names.
	for _, state := range info.States {
		if sanitized := sanitizeName(state.Name); sanitized != state.Name {
			sb.WriteString(fmt.Sprintf("\t%s : %s\n", sanitized, state.Name))
		}
	}

	children := childrenByParent(info)
	for _, state := range info.States {
		substates, ok := children[state.Name]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("\tstate %s {\n", sanitizeName(state.Name)))
		for _, substate := range substates {
			sb.WriteString(fmt.Sprintf("\t\t%s\n", sanitizeName(substate)))
		}
		sb.WriteString("\t}\n")
	}

	for _, state := range info.States {
		for _, t := range state.Transitions {
			if t.Dynamic {
				choice := decisionNodeName(state.Name, t.Trigger)
				sb.WriteString(fmt.Sprintf("\tstate %s <<choice>>\n", choice))
				sb.WriteString(fmt.Sprintf("\t%s --> %s : %s\n",
					sanitizeName(state.Name), choice, transitionLabel(t)))
				continue
			}
			sb.WriteString(fmt.Sprintf("\t%s --> %s : %s\n",
				sanitizeName(state.Name), sanitizeName(t.Destination), transitionLabel(t)))
		}
	}

	if hasState(info, info.CurrentState) {
		sb.WriteString(fmt.Sprintf("\t[*] --> %s\n", sanitizeName(info.CurrentState)))
	}

	return sb.String()
}
