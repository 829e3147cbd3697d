package foliosim

import (
	"testing"

	"github.com/foliosim/foliosim/date"
)

func TestIntervalFor(t *testing.T) {
	start := date.New(2000, 1, 1)
	tests := []struct {
		days   int
		subDay bool
		want   Interval
	}{
		{30, true, Minute},
		{60, true, Minute},
		{61, true, Hourly},
		{99, true, Hourly},
		{100, true, Daily},
		{30, false, Daily},
		{899, false, Daily},
		{900, false, FiveDays}, // 2.5 years lands in the 5d bucket, not daily
		{2159, false, FiveDays},
		{2160, false, Weekly},
		{5399, false, Weekly},
		// 15 to 30 years fall through to daily, see IntervalFor.
		{5400, false, Daily},
		{10799, false, Daily},
		{10800, false, Monthly},
	}
	for _, tt := range tests {
		r := date.Range{From: start, To: start.Add(tt.days)}
		if got := IntervalFor(r, tt.subDay); got != tt.want {
			t.Errorf("IntervalFor(%d days, subDay=%v) = %q, want %q", tt.days, tt.subDay, got, tt.want)
		}
	}
}
