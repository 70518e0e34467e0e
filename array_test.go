package testgen

import (
	"slices"
	"testing"

	"github.com/cdforces/testgen/internal/test"
	"github.com/google/go-cmp/cmp"
)

func TestRandomArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		draws  []int
		n      int
		max    int
		sorted bool
		want   []int
	}{
		{name: "empty", n: 0, max: 10, want: []int{}},
		{name: "negative length", n: -3, max: 10, want: []int{}},
		{name: "shifted into range", draws: []int{0, 9, 4}, n: 3, max: 10, want: []int{1, 10, 5}},
		{name: "sorted", draws: []int{8, 0, 3, 3}, n: 4, max: 10, sorted: true, want: []int{1, 4, 4, 9}},
		{name: "single value ceiling", draws: []int{0, 0}, n: 2, max: 1, want: []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := test.NewScriptedRand(t, tt.draws...)
			got := RandomArray(r, tt.n, tt.max, tt.sorted)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("RandomArray() mismatch (-want +got):\n%s", diff)
			}
			if r.Remaining() != 0 {
				t.Fatalf("%d draws left unused", r.Remaining())
			}
		})
	}
}

func TestRandomArrayBounds(t *testing.T) {
	t.Parallel()

	r := NewRand(12345)
	for _, maxValue := range []int{1, 2, 7, 5000} {
		values := RandomArray(r, 500, maxValue, false)
		if len(values) != 500 {
			t.Fatalf("len = %d, want 500", len(values))
		}
		for _, v := range values {
			if v < 1 || v > maxValue {
				t.Fatalf("value %d outside [1, %d]", v, maxValue)
			}
		}
	}
}

func TestRandomArraySortedIsNonDecreasing(t *testing.T) {
	t.Parallel()

	values := RandomArray(NewRand(3), 200, 50, true)
	if !slices.IsSorted(values) {
		t.Fatalf("values not sorted: %v", values)
	}
}
