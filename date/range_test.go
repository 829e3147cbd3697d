package date

import (
	"testing"
	"time"
)

func TestNewRangeSwaps(t *testing.T) {
	from, to := New(2024, time.May, 10), New(2024, time.May, 1)
	r := NewRange(from, to)
	if r.From != to || r.To != from {
		t.Errorf("NewRange() = %v, want swapped boundaries", r)
	}
}

func TestRangeAll(t *testing.T) {
	r := Range{From: New(2024, time.May, 1), To: New(2024, time.May, 3)}
	var got []Date
	for d := range r.All() {
		got = append(got, d)
	}
	want := []Date{New(2024, time.May, 1), New(2024, time.May, 2), New(2024, time.May, 3)}
	if len(got) != len(want) {
		t.Fatalf("All() yielded %d days, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRangeDays(t *testing.T) {
	r := Range{From: New(2024, time.January, 1), To: New(2024, time.December, 31)}
	if got := r.Days(); got != 365 { // 2024 is a leap year
		t.Errorf("Days() = %d, want 365", got)
	}
}
