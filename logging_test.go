package statekit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerRecordsTransitions(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	m := newPhoneMachine()
	m.SetLogger(zap.New(core))

	_, err := m.Fire(callDialed, nil)
	require.NoError(t, err)

	entries := logs.FilterMessage("transitioned").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, offHook, fields["from"])
	assert.Equal(t, ringing, fields["to"])
	assert.Equal(t, callDialed, fields["trigger"])
}

func TestLoggerRecordsUnhandledTriggers(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := newPhoneMachine()
	m.SetLogger(zap.New(core))
	m.OnUnhandledTrigger(func(string, string) {})

	fired, err := m.Fire("textMessage", nil)
	require.NoError(t, err)
	assert.False(t, fired)
	assert.Equal(t, 1, logs.FilterMessage("unhandled trigger").Len())
}

func TestSetLoggerNilFallsBackToNop(t *testing.T) {
	m := newPhoneMachine()
	m.SetLogger(nil)

	_, err := m.Fire(callDialed, nil)
	require.NoError(t, err)
}
