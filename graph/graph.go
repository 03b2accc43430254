// Package graph renders statekit machine configurations as diagrams.
package graph

import (
	"strings"
	"unicode"

	"github.com/zhanbolat/statekit"
)

// sanitizeName makes a state or trigger name safe for use as a node
// identifier: every character that is not a letter, digit or underscore is
// replaced with an underscore.
func sanitizeName(name string) string {
	var sb strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	if sb.Len() == 0 {
		return "_"
	}
	return sb.String()
}

// escapeLabel escapes double quotes in DOT labels.
func escapeLabel(label string) string {
	return strings.ReplaceAll(label, `"`, `\"`)
}

// decisionNodeName names the synthetic decision node rendered for a dynamic
// transition.
func decisionNodeName(state, trigger string) string {
	return sanitizeName(state) + "_" + sanitizeName(trigger) + "_choice"
}

// transitionLabel renders the edge label for a transition: the trigger name,
// followed by the guard description in brackets when the edge is guarded.
func transitionLabel(t statekit.TransitionInfo) string {
	var sb strings.Builder
	sb.WriteString(t.Trigger)
	if t.Guarded {
		desc := t.Guard
		if desc == "" {
			desc = "guard"
		}
		sb.WriteString(" [")
		sb.WriteString(desc)
		sb.WriteString("]")
	}
	return sb.String()
}

// childrenByParent groups substate names under their parent's name.
func childrenByParent(info statekit.MachineInfo) map[string][]string {
	children := make(map[string][]string)
	for _, state := range info.States {
		if state.HasParent {
			children[state.Parent] = append(children[state.Parent], state.Name)
		}
	}
	return children
}

// hasState reports whether name is a configured state of the machine.
func hasState(info statekit.MachineInfo, name string) bool {
	for _, state := range info.States {
		if state.Name == name {
			return true
		}
	}
	return false
}
