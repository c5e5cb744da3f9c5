package eclat

import (
	"errors"
	"testing"
)

func TestAbsoluteSupport_Resolve(t *testing.T) {
	min := AbsoluteSupport(3)

	count, err := min.Resolve(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count 3, got %d", count)
	}
}

func TestAbsoluteSupport_Invalid(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		_, err := AbsoluteSupport(c).Resolve(10)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("count %d: expected ErrInvalidThreshold, got %v", c, err)
		}
	}
}

func TestRelativeSupport_CeilingConversion(t *testing.T) {
	tests := []struct {
		fraction     float64
		transactions int
		expected     int
	}{
		{0.5, 4, 2},
		{0.5, 5, 3},    // 2.5 rounds up
		{0.05, 101, 6}, // 5.05 rounds up
		{1.0, 7, 7},
		{0.01, 100, 1},
		{0.001, 100, 1}, // 0.1 rounds up to 1
	}

	for _, tt := range tests {
		count, err := RelativeSupport(tt.fraction).Resolve(tt.transactions)
		if err != nil {
			t.Fatalf("fraction %v: unexpected error: %v", tt.fraction, err)
		}
		if count != tt.expected {
			t.Errorf("fraction %v over %d transactions: expected %d, got %d",
				tt.fraction, tt.transactions, tt.expected, count)
		}
	}
}

func TestRelativeSupport_Invalid(t *testing.T) {
	for _, f := range []float64{0, -0.5, 1.0001, 2} {
		_, err := RelativeSupport(f).Resolve(10)
		if !errors.Is(err, ErrInvalidThreshold) {
			t.Errorf("fraction %v: expected ErrInvalidThreshold, got %v", f, err)
		}
	}
}

func TestMinSupport_IsRelative(t *testing.T) {
	if AbsoluteSupport(2).IsRelative() {
		t.Error("absolute threshold reported as relative")
	}
	if !RelativeSupport(0.5).IsRelative() {
		t.Error("relative threshold reported as absolute")
	}
}

func TestMinSupport_String(t *testing.T) {
	if s := AbsoluteSupport(2).String(); s != "2 transactions" {
		t.Errorf("unexpected string: %q", s)
	}
	if s := RelativeSupport(0.5).String(); s != "0.5 of transactions" {
		t.Errorf("unexpected string: %q", s)
	}
}
