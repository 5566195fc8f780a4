package config

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())

	want := Model{
		Simulation: Simulation{Precision: 0.01, Order: "height-desc", Backend: "float64", MaxPasses: 1_000_000},
		Rain:       Rain{Source: "1.0"},
	}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Errorf("Default() mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(m *Model)
		expectErr []string
	}{
		{name: "defaults", mutate: func(*Model) {}},
		{name: "zero precision", mutate: func(m *Model) { m.Simulation.Precision = 0 }},
		{name: "decimal input order", mutate: func(m *Model) { m.Simulation.Backend = "decimal"; m.Simulation.Order = "input" }},
		{name: "negative precision", mutate: func(m *Model) { m.Simulation.Precision = -1 }, expectErr: []string{"precision"}},
		{name: "nan precision", mutate: func(m *Model) { m.Simulation.Precision = math.NaN() }, expectErr: []string{"precision"}},
		{name: "bad order", mutate: func(m *Model) { m.Simulation.Order = "random" }, expectErr: []string{"order"}},
		{name: "bad backend", mutate: func(m *Model) { m.Simulation.Backend = "float32" }, expectErr: []string{"backend"}},
		{
			name: "several problems",
			mutate: func(m *Model) {
				m.Simulation.MaxPasses = -1
				m.Simulation.Backend = ""
			},
			expectErr: []string{"max_passes", "backend"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Default()
			tc.mutate(&m)
			err := m.Validate()
			if len(tc.expectErr) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidValue)
			for _, s := range tc.expectErr {
				assert.ErrorContains(t, err, s)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	m := Default()
	err := m.ApplyOverrides(map[string]string{
		"precision":  "0.5",
		"order":      "input",
		"backend":    "decimal",
		"max_passes": "42",
		"monitor":    "true",
		"rain":       "index + 1",
	})
	require.NoError(t, err)

	assert.Equal(t, Simulation{Precision: 0.5, Order: "input", Backend: "decimal", MaxPasses: 42, Monitor: true}, m.Simulation)
	assert.Equal(t, "index + 1", m.Rain.Source)
	require.NoError(t, m.Validate())
}

func TestApplyOverrides_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		kv        map[string]string
		expectErr error
	}{
		{name: "unknown key", kv: map[string]string{"workers": "4"}, expectErr: ErrUnknownKey},
		{name: "precision not a number", kv: map[string]string{"precision": "tiny"}, expectErr: ErrInvalidValue},
		{name: "max passes not an int", kv: map[string]string{"max_passes": "many"}, expectErr: ErrInvalidValue},
		{name: "monitor not a bool", kv: map[string]string{"monitor": "perhaps"}, expectErr: ErrInvalidValue},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Default()
			err := m.ApplyOverrides(tc.kv)
			require.ErrorIs(t, err, tc.expectErr)
		})
	}
}

func TestRainExpr(t *testing.T) {
	m := Default()
	e, err := m.RainExpr()
	require.NoError(t, err)
	v, ok := e.Constant()
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	require.NoError(t, m.Set(KeyRain, "nope + 1"))
	_, err = m.RainExpr()
	require.ErrorIs(t, err, ErrInvalidValue)
	assert.ErrorContains(t, err, "nope")
}
