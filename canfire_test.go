package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhanbolat/statekit"
)

func TestCanFire(t *testing.T) {
	m := newPhoneMachine()

	can, err := m.CanFire(callDialed, nil)
	require.NoError(t, err)
	assert.True(t, can)

	can, err = m.CanFire(placedOnHold, nil)
	require.NoError(t, err)
	assert.False(t, can)
}

func TestCanFireInheritedTrigger(t *testing.T) {
	m := newPhoneMachine()
	m.Init(onHold)

	can, err := m.CanFire(leftMessage, nil)
	require.NoError(t, err)
	assert.True(t, can)
}

func TestCanFireEvaluatesGuardOnly(t *testing.T) {
	m := statekit.New[string, string]()
	guardCalls, resolverCalls, dispatched := 0, 0, 0
	m.Configure("reviewed").
		PermitDynamicIf("submitReview",
			func(statekit.Transition[string, string], any) (string, error) {
				resolverCalls++
				return "reviewComplete", nil
			},
			func(statekit.Transition[string, string], any) bool {
				guardCalls++
				return true
			}).
		OnExit(func(statekit.Transition[string, string], any) { dispatched++ })
	m.OnTransition(func(statekit.Transition[string, string], any) { dispatched++ })
	m.Init("reviewed")

	can, err := m.CanFire("submitReview", nil)
	require.NoError(t, err)
	assert.True(t, can)

	assert.Equal(t, 1, guardCalls)
	assert.Zero(t, resolverCalls)
	assert.Zero(t, dispatched)
	assert.Equal(t, "reviewed", m.State())
}

func TestCanFireUnconfiguredCurrentState(t *testing.T) {
	m := newPhoneMachine()
	m.Init("ghost")

	can, err := m.CanFire(callDialed, nil)
	require.NoError(t, err)
	assert.False(t, can)
}

func TestAllowedTriggersGuardFiltering(t *testing.T) {
	m := statekit.New[string, string]()
	m.Configure("draft").
		Permit("save", "saved").
		PermitWhen("publish", "published", false).
		PermitIf("archive", "archived", func(_ statekit.Transition[string, string], data any) bool {
			return data == "admin"
		})
	m.Init("draft")

	allowed, err := m.AllowedTriggers(nil, false)
	require.NoError(t, err)
	assert.Contains(t, allowed, "save")
	assert.NotContains(t, allowed, "publish")
	assert.NotContains(t, allowed, "archive")

	allowed, err = m.AllowedTriggers("admin", false)
	require.NoError(t, err)
	assert.Contains(t, allowed, "archive")
	assert.Equal(t, "archived", allowed["archive"].State)
}

func TestAllowedTriggersUnconfiguredCurrentState(t *testing.T) {
	m := newPhoneMachine()
	m.Init("ghost")

	allowed, err := m.AllowedTriggers(nil, false)
	require.NoError(t, err)
	assert.Empty(t, allowed)
}
