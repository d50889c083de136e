package solver

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMex(t *testing.T) {
	tests := []struct {
		name   string
		values []int
		want   int
	}{
		{"empty", nil, 0},
		{"consecutive from zero", []int{0, 1, 2}, 3},
		{"zero missing", []int{1, 2, 3}, 0},
		{"gap in the middle", []int{0, 2, 4}, 1},
		{"later gap", []int{0, 1, 3, 5}, 2},
		{"large values only", []int{10, 20, 30}, 0},
		{"single non-zero", []int{5}, 0},
		{"single zero", []int{0}, 1},
		{"unordered with duplicates", []int{3, 0, 1, 3, 2, 0}, 4},
		{"unordered", []int{5, 1, 0, 3}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Mex(tt.values))
		})
	}
}

func TestMexDoesNotMutateInput(t *testing.T) {
	values := []int{3, 0, 1}
	Mex(values)
	require.Equal(t, []int{3, 0, 1}, values)
}
