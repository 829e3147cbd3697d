package date

import (
	"fmt"
	"strings"
)

// Period is a calendar recurrence unit.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	case Quarterly:
		return "quarterly"
	case Yearly:
		return "yearly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Advance returns d moved forward by n periods.
//
// Month-based units use normalized month arithmetic, see [Date.AddMonth].
func (p Period) Advance(d Date, n int) Date {
	switch p {
	case Daily:
		return d.Add(n)
	case Weekly:
		return d.Add(7 * n)
	case Monthly:
		return d.AddMonth(n)
	case Quarterly:
		return d.AddMonth(3 * n)
	case Yearly:
		return d.AddMonth(12 * n)
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

func ParsePeriod(p string) (Period, error) {
	p = strings.ToLower(p)
	switch p {
	case "daily", "day", "days":
		return Daily, nil
	case "weekly", "week", "weeks":
		return Weekly, nil
	case "monthly", "month", "months":
		return Monthly, nil
	case "quarterly", "quarter", "quarters":
		return Quarterly, nil
	case "yearly", "year", "years":
		return Yearly, nil
	default:
		return Daily, fmt.Errorf("unknown period %s", p)
	}
}
