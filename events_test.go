package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhanbolat/statekit"
)

func TestHandlersRunInRegistrationOrder(t *testing.T) {
	m := statekit.New[string, string]()
	var seq []string
	m.Configure("a").Permit("go", "b")
	m.Configure("b").
		OnEntry(func(statekit.Transition[string, string], any) { seq = append(seq, "first") }).
		OnEntry(func(statekit.Transition[string, string], any) { seq = append(seq, "second") }).
		OnEntry(func(statekit.Transition[string, string], any) { seq = append(seq, "third") })
	m.Init("a")

	_, err := m.Fire("go", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "third"}, seq)
}

// Leaving a substate runs only the substate's exit handlers; the ancestors'
// exit handlers stay untouched.
func TestExitScopedToCurrentStateOnly(t *testing.T) {
	m := newPhoneMachine()
	var exited []string
	m.Configure(connected).OnExit(func(statekit.Transition[string, string], any) {
		exited = append(exited, connected)
	})
	m.Configure(onHold).OnExit(func(statekit.Transition[string, string], any) {
		exited = append(exited, onHold)
	})
	m.Init(onHold)

	_, err := m.Fire(leftMessage, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{onHold}, exited)
	assert.Equal(t, offHook, m.State())
}

func TestTransitionHandlerReceivesFullInfo(t *testing.T) {
	m := newPhoneMachine()
	var got statekit.Transition[string, string]
	m.OnTransition(func(tr statekit.Transition[string, string], _ any) {
		got = tr
	})

	_, err := m.Fire(callDialed, nil)
	require.NoError(t, err)
	assert.Equal(t, offHook, got.Source)
	assert.Equal(t, ringing, got.Destination)
	assert.Equal(t, callDialed, got.Trigger)
}

func TestTransitionHandlerSeesResolvedDynamicDestination(t *testing.T) {
	data := &reviewData{ReviewCount: 2, MaxReviewers: 2}
	m := newReviewMachine(data)
	var got statekit.Transition[string, string]
	m.OnTransition(func(tr statekit.Transition[string, string], _ any) {
		got = tr
	})

	_, err := m.Fire("submitReview", nil)
	require.NoError(t, err)
	assert.Equal(t, "reviewComplete", got.Destination)
}

func TestMultipleUnhandledTriggerHandlers(t *testing.T) {
	m := newPhoneMachine()
	calls := 0
	m.OnUnhandledTrigger(func(string, string) { calls++ })
	m.OnUnhandledTrigger(func(string, string) { calls++ })

	fired, err := m.Fire("textMessage", nil)
	require.NoError(t, err)
	assert.False(t, fired)
	assert.Equal(t, 2, calls)
}

func TestEntryHandlersForOtherStatesStayQuiet(t *testing.T) {
	m := newPhoneMachine()
	var entered []string
	for _, state := range []string{ringing, connected, onHold} {
		state := state
		m.Configure(state).OnEntry(func(statekit.Transition[string, string], any) {
			entered = append(entered, state)
		})
	}

	_, err := m.Fire(callDialed, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{ringing}, entered)
}
