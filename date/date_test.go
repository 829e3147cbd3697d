package date

import (
	"testing"
	"time"
)

func TestNewNormalizes(t *testing.T) {
	testCases := []struct {
		name string
		in   Date
		want Date
	}{
		{"plain", New(2024, time.March, 15), Date{2024, time.March, 15}},
		{"rollover day", New(2024, time.April, 31), Date{2024, time.May, 1}},
		{"rollover month", New(2024, 13, 1), Date{2025, time.January, 1}},
		{"day zero", New(2024, time.March, 0), Date{2024, time.February, 29}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.in != tc.want {
				t.Errorf("got %v, want %v", tc.in, tc.want)
			}
		})
	}
}

func TestAddMonthNormalizes(t *testing.T) {
	// Jan 31 + 1 month overflows February and lands early March.
	got := New(2023, time.January, 31).AddMonth(1)
	want := New(2023, time.March, 3)
	if got != want {
		t.Errorf("AddMonth(1) = %v, want %v", got, want)
	}
}

func TestSub(t *testing.T) {
	testCases := []struct {
		name string
		a, b Date
		want int
	}{
		{"same day", New(2024, time.June, 1), New(2024, time.June, 1), 0},
		{"one day", New(2024, time.June, 2), New(2024, time.June, 1), 1},
		{"leap year", New(2025, time.January, 1), New(2024, time.January, 1), 366},
		{"negative", New(2024, time.June, 1), New(2024, time.June, 11), -10},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Sub(tc.b); got != tc.want {
				t.Errorf("%v.Sub(%v) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	d, err := Parse("2025-7-1")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d != New(2025, time.July, 1) {
		t.Errorf("Parse() = %v, want 2025-07-01", d)
	}
	if d.String() != "2025-07-01" {
		t.Errorf("String() = %q, want %q", d.String(), "2025-07-01")
	}
	if _, err := Parse("not a date"); err == nil {
		t.Error("Parse() expected error for garbage input")
	}
}

func TestPeriodAdvance(t *testing.T) {
	start := New(2024, time.January, 15)
	testCases := []struct {
		p    Period
		n    int
		want Date
	}{
		{Daily, 10, New(2024, time.January, 25)},
		{Weekly, 2, New(2024, time.January, 29)},
		{Monthly, 1, New(2024, time.February, 15)},
		{Quarterly, 1, New(2024, time.April, 15)},
		{Yearly, 1, New(2025, time.January, 15)},
	}
	for _, tc := range testCases {
		t.Run(tc.p.String(), func(t *testing.T) {
			if got := tc.p.Advance(start, tc.n); got != tc.want {
				t.Errorf("%v.Advance(%v, %d) = %v, want %v", tc.p, start, tc.n, got, tc.want)
			}
		})
	}
}
