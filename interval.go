package foliosim

import "github.com/foliosim/foliosim/date"

// Interval is the sampling granularity token consumed by the historical
// price provider.
type Interval string

const (
	Minute   Interval = "1m"
	Hourly   Interval = "60m"
	Daily    Interval = "1d"
	FiveDays Interval = "5d"
	Weekly   Interval = "1wk"
	Monthly  Interval = "1mo"
)

// bucketing uses a 360-day year on purpose: the thresholds are round
// sampling buckets, not calendar years.
const bucketYear = 360

// IntervalFor maps a date range to the sampling interval used when fetching
// its price series. subDay allows minute or hourly granularity for short
// ranges.
//
// Ranges between 15 and 30 years fall through to Daily: the 15-30y gap is a
// known quirk of the bucketing table and is kept as is because downstream
// consumers depend on it.
func IntervalFor(r date.Range, subDay bool) Interval {
	days := r.Days()
	switch {
	case subDay && days <= 60:
		return Minute
	case subDay && days < 100:
		return Hourly
	case days < 2.5*bucketYear:
		return Daily
	case days >= 2.5*bucketYear && days < 6*bucketYear:
		return FiveDays
	case days >= 6*bucketYear && days < 15*bucketYear:
		return Weekly
	case days >= 30*bucketYear:
		return Monthly
	default:
		return Daily
	}
}
