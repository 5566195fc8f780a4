package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/rainflow/internal/heightio"
	"github.com/vk/rainflow/internal/sample"
)

func TestRun_Reproducible(t *testing.T) {
	var a, b bytes.Buffer
	require.NoError(t, run(&a, &bytes.Buffer{}, []string{"-seed", "7", "20", "10"}))
	require.NoError(t, run(&b, &bytes.Buffer{}, []string{"-seed", "7", "20", "10"}))
	assert.Equal(t, a.String(), b.String())

	heights, err := heightio.ReadHeights(strings.NewReader(a.String()))
	require.NoError(t, err)
	require.Len(t, heights, 20)
	for _, h := range heights {
		assert.LessOrEqual(t, h, 10.0)
	}
}

func TestRun_DefaultUpperBound(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(&out, &bytes.Buffer{}, []string{"-seed", "1", "50"}))

	heights, err := heightio.ReadHeights(&out)
	require.NoError(t, err)
	require.Len(t, heights, 50)
	for _, h := range heights {
		assert.LessOrEqual(t, h, float64(sample.DefaultUpperBound))
	}
}

func TestRun_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		args      []string
		expectErr error
	}{
		{name: "no arguments", args: nil, expectErr: errUsage},
		{name: "too many arguments", args: []string{"5", "10", "15"}, expectErr: errUsage},
		{name: "points not a number", args: []string{"five"}, expectErr: errUsage},
		{name: "too few points", args: []string{"1"}, expectErr: sample.ErrPointsNum},
		{name: "upper bound too small", args: []string{"5", "3"}, expectErr: sample.ErrUpperBound},
		{name: "upper bound too large", args: []string{"5", "1001"}, expectErr: sample.ErrUpperBound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(&out, &bytes.Buffer{}, tc.args)
			require.ErrorIs(t, err, tc.expectErr)
			assert.ErrorIs(t, err, errUsage)
			assert.Zero(t, out.Len())
		})
	}
}
