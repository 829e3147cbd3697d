package foliosim

import (
	"github.com/google/uuid"

	"github.com/foliosim/foliosim/date"
)

// GeneratePeriodic expands a recurrence rule into discrete dated investments
// for the given asset, up to and including end. All installments of one call
// share a freshly generated periodic-group id.
//
// The walk starts at the rule's start date and emits an installment whenever
// the current date's day-of-month equals the anchor. After advancing by the
// configured interval, a date whose day-of-month no longer matches the anchor
// is snapped to the 1st of the next month and then to the anchor day. This
// drift policy is deliberate and not calendar-accurate: an anchor like 31
// combined with short months will skip or drift, and the schedule downstream
// reflects that.
func GeneratePeriodic(s PeriodicSettings, end date.Date, assetID string) []Investment {
	groupID := uuid.NewString()
	amount := s.Amount

	// Growth boundaries are counted with an integer counter rather than a
	// modulo on the fractional elapsed years, so a boundary can never be
	// stepped over unnoticed.
	applied := 0

	var invs []Investment
	for current := s.Start; !current.After(end); {
		if s.Dynamic != nil && s.Dynamic.YearInterval > 0 {
			due := int(current.Years(s.Start) / s.Dynamic.YearInterval)
			for ; applied < due; applied++ {
				switch s.Dynamic.Kind {
				case Percentage:
					amount *= 1 + s.Dynamic.Value/100
				case Fixed:
					amount += s.Dynamic.Value
				}
			}
		}

		if current.Day() == s.DayOfMonth {
			invs = append(invs, Investment{
				ID:              uuid.NewString(),
				AssetID:         assetID,
				Kind:            Periodic,
				Amount:          amount,
				Date:            current,
				PeriodicGroupID: groupID,
			})
		}

		next := s.Unit.Advance(current, s.Interval)
		if next.Day() != s.DayOfMonth {
			// Snap to the 1st of the month after the landing month, then to
			// the anchor day. date.New normalizes, so anchor days past the
			// month's end roll over and the installment is skipped.
			next = date.New(next.Year(), next.Month()+1, 1)
			next = date.New(next.Year(), next.Month(), s.DayOfMonth)
		}
		current = next
	}
	return invs
}
