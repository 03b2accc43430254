package def_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhanbolat/statekit"
	"github.com/zhanbolat/statekit/def"
)

const phoneYAML = `
id: phone
initial: offHook
states:
  offHook:
    on:
      callDialed: { target: ringing }
  ringing:
    on:
      callConnected: { target: connected }
      hungUp: { target: offHook }
  connected:
    on:
      placedOnHold: { target: onHold }
      leftMessage: { target: offHook }
      hungUp: { target: offHook }
      muteMicrophone: { target: connected, when: false }
  onHold:
    parent: connected
    on:
      takenOffHold: { target: connected }
`

func TestLoadAndBuildPhoneDefinition(t *testing.T) {
	d, err := def.Load(strings.NewReader(phoneYAML))
	require.NoError(t, err)
	assert.Equal(t, "phone", d.ID)

	m, err := d.Build(def.Bindings{})
	require.NoError(t, err)
	assert.Equal(t, "offHook", m.State())

	for _, trigger := range []string{"callDialed", "callConnected", "placedOnHold"} {
		fired, err := m.Fire(trigger, nil)
		require.NoError(t, err)
		require.True(t, fired)
	}
	assert.Equal(t, "onHold", m.State())

	in, err := m.IsInState("connected")
	require.NoError(t, err)
	assert.True(t, in)

	// Literal when guards block the edge without an error.
	m.Init("connected")
	fired, err := m.Fire("muteMicrophone", nil)
	require.NoError(t, err)
	assert.False(t, fired)
}

func TestBuildWithNamedGuardAndResolver(t *testing.T) {
	const doc = `
id: review
initial: reviewed
states:
  reviewed:
    on:
      submitReview: { dynamic: routeReview, guard: hasReviewer }
  reviewComplete: {}
`
	d, err := def.Parse([]byte(doc))
	require.NoError(t, err)

	m, err := d.Build(def.Bindings{
		Guards: map[string]statekit.GuardFunc[string, string]{
			"hasReviewer": func(_ statekit.Transition[string, string], data any) bool {
				return data != nil
			},
		},
		Resolvers: map[string]statekit.ResolverFunc[string, string]{
			"routeReview": func(statekit.Transition[string, string], any) (string, error) {
				return "reviewComplete", nil
			},
		},
	})
	require.NoError(t, err)

	fired, err := m.Fire("submitReview", nil)
	require.NoError(t, err)
	assert.False(t, fired, "guard should reject a nil datum")

	fired, err = m.Fire("submitReview", "reviewer")
	require.NoError(t, err)
	assert.True(t, fired)
	assert.Equal(t, "reviewComplete", m.State())
}

func TestBuildUnboundNamesFail(t *testing.T) {
	const doc = `
id: review
initial: reviewed
states:
  reviewed:
    on:
      submitReview: { dynamic: routeReview }
`
	d, err := def.Parse([]byte(doc))
	require.NoError(t, err)

	_, err = d.Build(def.Bindings{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `resolver "routeReview" is not bound`)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{
			name:    "missing id",
			doc:     "initial: a\nstates: {a: {}}",
			wantErr: "machine id is required",
		},
		{
			name:    "missing initial",
			doc:     "id: m\nstates: {a: {}}",
			wantErr: "initial state is required",
		},
		{
			name:    "undeclared initial",
			doc:     "id: m\ninitial: b\nstates: {a: {}}",
			wantErr: `initial state "b" is not declared`,
		},
		{
			name:    "undeclared target",
			doc:     "id: m\ninitial: a\nstates: {a: {on: {go: {target: b}}}}",
			wantErr: `target "b" is not declared`,
		},
		{
			name:    "undeclared parent",
			doc:     "id: m\ninitial: a\nstates: {a: {parent: b}}",
			wantErr: `parent "b" is not declared`,
		},
		{
			name:    "target and dynamic together",
			doc:     "id: m\ninitial: a\nstates: {a: {on: {go: {target: a, dynamic: r}}}}",
			wantErr: "exactly one of target and dynamic",
		},
		{
			name:    "neither target nor dynamic",
			doc:     "id: m\ninitial: a\nstates: {a: {on: {go: {guard: g}}}}",
			wantErr: "exactly one of target and dynamic",
		},
		{
			name:    "guard and when together",
			doc:     "id: m\ninitial: a\nstates: {a: {on: {go: {target: a, guard: g, when: true}}}}",
			wantErr: "guard and when are mutually exclusive",
		},
		{
			name:    "parent cycle",
			doc:     "id: m\ninitial: a\nstates: {a: {parent: b}, b: {parent: a}}",
			wantErr: "parent chain contains a cycle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := def.Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	_, err := def.Parse([]byte("id: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode definition")
}
