package landscape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChain_Neighbors(t *testing.T) {
	testCases := []struct {
		name string
		n    int
		idx  int
		want []int
	}{
		{name: "single point", n: 1, idx: 0, want: nil},
		{name: "left end", n: 3, idx: 0, want: []int{1}},
		{name: "middle", n: 3, idx: 1, want: []int{0, 2}},
		{name: "right end", n: 3, idx: 2, want: []int{1}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewChain(tc.n).Neighbors(tc.idx, nil)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestChain_AppendsToDst(t *testing.T) {
	dst := make([]int, 0, 4)
	dst = append(dst, 42)
	got := NewChain(5).Neighbors(2, dst)
	assert.Equal(t, []int{42, 1, 3}, got)
}

func TestNewChain_Len(t *testing.T) {
	assert.Equal(t, 0, NewChain(0).Len())
	assert.Equal(t, 0, NewChain(-1).Len())
	assert.Equal(t, 7, NewChain(7).Len())
}
