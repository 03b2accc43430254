// Package statekit provides an embeddable hierarchical state machine engine
// for Go.
//
// A Machine holds a registry of states, the triggers that move between them,
// guard conditions and lifecycle event handlers, and drives transitions when
// triggers are fired. Substates inherit the transitions of their parent for
// triggers they do not define themselves.
//
// # Basic Usage
//
// Create a machine, configure states and set the initial state:
//
//	m := statekit.New[string, string]()
//	m.Configure("offHook").Permit("callDialed", "ringing")
//	m.Configure("ringing").Permit("callConnected", "connected")
//	m.Init("offHook")
//
// Fire triggers to cause transitions:
//
//	fired, err := m.Fire("callDialed", nil)
//
// Fire returns false without an error when a guard rejects the trigger or
// when the trigger is unhandled and an unhandled-trigger handler is
// registered; configuration and resolution failures are returned as errors.
//
// # Guards
//
// Gate transitions with predicates over the transition and the data context:
//
//	m.Configure("reviewed").PermitIf("approve", "approved",
//	    func(t statekit.Transition[string, string], data any) bool {
//	        return data.(*Review).Approvals > 0
//	    })
//
// # Hierarchical States
//
// Create state hierarchies:
//
//	m.Configure("onHold").SubstateOf("connected")
//
// # Dynamic Transitions
//
// Compute the destination at fire time:
//
//	m.Configure("reviewed").PermitDynamic("submit",
//	    func(t statekit.Transition[string, string], data any) (string, error) {
//	        if data.(*Review).Complete() {
//	            return "reviewComplete", nil
//	        }
//	        return "reviewed", nil
//	    })
//
// # Data Context
//
// SetDataContext configures the ambient value handed to guards, resolvers and
// handlers; an explicit datum passed to Fire overrides it per call.
//
// # Diagrams
//
// Export to Mermaid or DOT format:
//
//	import "github.com/zhanbolat/statekit/graph"
//	fmt.Println(graph.Mermaid(m.Info()))
//
// Machines are not safe for concurrent use; serialize access externally.
package statekit
