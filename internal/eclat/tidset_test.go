package eclat

import (
	"reflect"
	"testing"
)

func TestTIDSet_Intersect(t *testing.T) {
	tests := []struct {
		name     string
		a, b     TIDSet
		expected TIDSet
	}{
		{
			name:     "overlap",
			a:        TIDSet{0, 1, 2, 4},
			b:        TIDSet{1, 2, 3},
			expected: TIDSet{1, 2},
		},
		{
			name:     "disjoint",
			a:        TIDSet{0, 2},
			b:        TIDSet{1, 3},
			expected: TIDSet{},
		},
		{
			name:     "subset",
			a:        TIDSet{1, 2},
			b:        TIDSet{0, 1, 2, 3},
			expected: TIDSet{1, 2},
		},
		{
			name:     "empty left",
			a:        TIDSet{},
			b:        TIDSet{1, 2},
			expected: TIDSet{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Intersect(%v, %v) = %v, expected %v", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestTIDSet_IntersectIsFresh(t *testing.T) {
	a := TIDSet{0, 1, 2, 3}
	b := TIDSet{0, 1, 2, 3}

	out := a.Intersect(b)
	out[0] = 99

	if a[0] != 0 || b[0] != 0 {
		t.Error("intersection mutated an input TID-set")
	}
}

func TestTIDSet_Support(t *testing.T) {
	if s := (TIDSet{1, 5, 9}).Support(); s != 3 {
		t.Errorf("expected support 3, got %d", s)
	}
	if s := (TIDSet{}).Support(); s != 0 {
		t.Errorf("expected support 0, got %d", s)
	}
}

func TestTIDSet_Contains(t *testing.T) {
	s := TIDSet{0, 3, 7, 11}

	for _, tid := range []int{0, 3, 7, 11} {
		if !s.Contains(tid) {
			t.Errorf("expected set to contain %d", tid)
		}
	}
	for _, tid := range []int{-1, 1, 8, 12} {
		if s.Contains(tid) {
			t.Errorf("expected set to not contain %d", tid)
		}
	}
	if (TIDSet{}).Contains(0) {
		t.Error("empty set should contain nothing")
	}
}
