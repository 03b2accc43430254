// Package def loads declarative machine definitions from YAML documents and
// builds string-typed statekit machines from them. A definition is an
// alternative configuration surface over the same registries as the fluent
// API; guard and resolver functions are referenced by name and bound by the
// host at build time.
package def

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zhanbolat/statekit"
)

// Definition is the top-level declarative form of a machine.
type Definition struct {
	// ID identifies the machine definition.
	ID string `yaml:"id"`

	// Initial is the state the built machine starts in.
	Initial string `yaml:"initial"`

	// States declares all states by name.
	States map[string]*State `yaml:"states"`
}

// State declares one state: its optional parent and its outgoing transitions
// keyed by trigger.
type State struct {
	Parent string                 `yaml:"parent,omitempty"`
	On     map[string]*Transition `yaml:"on,omitempty"`
}

// Transition declares one edge. Exactly one of Target and Dynamic must be set:
// Target names a declared state, Dynamic names a resolver from the host
// bindings. Guard names a predicate from the host bindings; When is a literal
// boolean guard. Guard and When are mutually exclusive.
type Transition struct {
	Target  string `yaml:"target,omitempty"`
	Dynamic string `yaml:"dynamic,omitempty"`
	Guard   string `yaml:"guard,omitempty"`
	When    *bool  `yaml:"when,omitempty"`
}

// Bindings supplies the host functions a definition refers to by name.
type Bindings struct {
	Guards    map[string]statekit.GuardFunc[string, string]
	Resolvers map[string]statekit.ResolverFunc[string, string]
}

// Parse decodes and validates a definition.
func Parse(data []byte) (*Definition, error) {
	var d Definition
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode definition: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Load reads and parses a definition from r.
func Load(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}
	return Parse(data)
}

// Validate checks the definition for structural errors: missing id or initial
// state, undeclared targets and parents, contradictory transition bodies and
// parent cycles.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return errors.New("machine id is required")
	}
	if d.Initial == "" {
		return errors.New("initial state is required")
	}
	if len(d.States) == 0 {
		return errors.New("at least one state is required")
	}
	if _, ok := d.States[d.Initial]; !ok {
		return fmt.Errorf("initial state %q is not declared", d.Initial)
	}

	for name, state := range d.States {
		if state == nil {
			continue
		}
		if state.Parent != "" {
			if _, ok := d.States[state.Parent]; !ok {
				return fmt.Errorf("state %q: parent %q is not declared", name, state.Parent)
			}
		}
		for trigger, t := range state.On {
			if t == nil {
				return fmt.Errorf("state %q, trigger %q: transition body is required", name, trigger)
			}
			if (t.Target == "") == (t.Dynamic == "") {
				return fmt.Errorf("state %q, trigger %q: exactly one of target and dynamic is required", name, trigger)
			}
			if t.Target != "" {
				if _, ok := d.States[t.Target]; !ok {
					return fmt.Errorf("state %q, trigger %q: target %q is not declared", name, trigger, t.Target)
				}
			}
			if t.Guard != "" && t.When != nil {
				return fmt.Errorf("state %q, trigger %q: guard and when are mutually exclusive", name, trigger)
			}
		}
	}

	// Parent chains must form a tree.
	for name := range d.States {
		seen := make(map[string]bool)
		for cur := name; cur != ""; {
			if seen[cur] {
				return fmt.Errorf("state %q: parent chain contains a cycle", name)
			}
			seen[cur] = true
			state := d.States[cur]
			if state == nil {
				break
			}
			cur = state.Parent
		}
	}

	return nil
}

// Build constructs a machine from the definition, resolving named guards and
// resolvers from the bindings. The machine is initialized to the declared
// initial state; entry, exit and transition handlers are attached by the host
// afterwards.
func (d *Definition) Build(b Bindings) (*statekit.Machine[string, string], error) {
	m := statekit.New[string, string]()
	for name, state := range d.States {
		cfg := m.Configure(name)
		if state == nil {
			continue
		}
		if state.Parent != "" {
			cfg.SubstateOf(state.Parent)
		}
		for trigger, t := range state.On {
			if err := applyTransition(cfg, trigger, t, b); err != nil {
				return nil, fmt.Errorf("state %q: %w", name, err)
			}
		}
	}
	m.Init(d.Initial)
	return m, nil
}

func applyTransition(cfg *statekit.StateConfig[string, string], trigger string, t *Transition, b Bindings) error {
	if t.Dynamic != "" {
		resolver, ok := b.Resolvers[t.Dynamic]
		if !ok {
			return fmt.Errorf("trigger %q: resolver %q is not bound", trigger, t.Dynamic)
		}
		switch {
		case t.Guard != "":
			guard, ok := b.Guards[t.Guard]
			if !ok {
				return fmt.Errorf("trigger %q: guard %q is not bound", trigger, t.Guard)
			}
			cfg.PermitDynamicIf(trigger, resolver, guard)
		case t.When != nil:
			cfg.PermitDynamicIf(trigger, resolver, statekit.GuardValue[string, string](*t.When))
		default:
			cfg.PermitDynamic(trigger, resolver)
		}
		return nil
	}

	switch {
	case t.Guard != "":
		guard, ok := b.Guards[t.Guard]
		if !ok {
			return fmt.Errorf("trigger %q: guard %q is not bound", trigger, t.Guard)
		}
		cfg.PermitIf(trigger, t.Target, guard)
	case t.When != nil:
		cfg.PermitWhen(trigger, t.Target, *t.When)
	default:
		cfg.Permit(trigger, t.Target)
	}
	return nil
}
