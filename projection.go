package foliosim

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/foliosim/foliosim/date"
)

// WithdrawalInterval is the cadence of a withdrawal plan.
type WithdrawalInterval int

const (
	MonthlyWithdrawal WithdrawalInterval = iota
	// YearlyWithdrawal applies the full amount once a year, in January.
	YearlyWithdrawal
)

func (w WithdrawalInterval) String() string {
	switch w {
	case MonthlyWithdrawal:
		return "monthly"
	case YearlyWithdrawal:
		return "yearly"
	default:
		return "unknown"
	}
}

// StartTrigger decides when a withdrawal plan becomes active.
type StartTrigger int

const (
	// TriggerDate starts withdrawals once the simulated date reaches StartDate.
	TriggerDate StartTrigger = iota
	// TriggerValue starts withdrawals once the portfolio reaches StartValue.
	TriggerValue
	// TriggerAuto back-solves the start from the configured strategy.
	TriggerAuto
)

// StrategyKind is the target behavior of an auto-strategy withdrawal plan.
type StrategyKind int

const (
	// Maintain sizes the target so the monthly return alone funds the withdrawal.
	Maintain StrategyKind = iota
	// Deplete sizes the target as the annuity present value over TargetYears.
	Deplete
	// Grow sustains the withdrawal while still compounding at TargetGrowth.
	Grow
)

func (k StrategyKind) String() string {
	switch k {
	case Maintain:
		return "maintain"
	case Deplete:
		return "deplete"
	case Grow:
		return "grow"
	default:
		return "unknown"
	}
}

// ParseStrategyKind parses a string into a StrategyKind.
func ParseStrategyKind(s string) (StrategyKind, error) {
	switch s {
	case "maintain":
		return Maintain, nil
	case "deplete":
		return Deplete, nil
	case "grow":
		return Grow, nil
	default:
		return 0, fmt.Errorf("unknown withdrawal strategy: %q", s)
	}
}

// AutoStrategy configures the back-solved withdrawal start.
type AutoStrategy struct {
	Kind StrategyKind
	// TargetYears is the depletion horizon for the Deplete strategy.
	TargetYears float64
	// TargetGrowth is the annual growth (percent) to keep for the Grow strategy.
	TargetGrowth float64
}

// WithdrawalPlan configures withdrawals during a projection.
type WithdrawalPlan struct {
	Amount     float64
	Interval   WithdrawalInterval
	Trigger    StartTrigger
	StartDate  date.Date
	StartValue float64
	Enabled    bool
	Auto       AutoStrategy
}

// monthlyAmount is the plan's withdrawal expressed per month, used by the
// closed-form strategy targets.
func (p *WithdrawalPlan) monthlyAmount() float64 {
	if p.Interval == YearlyWithdrawal {
		return p.Amount / 12
	}
	return p.Amount
}

// ProjectionRow is one simulated month of a future projection.
type ProjectionRow struct {
	Date           date.Date
	Value          float64
	Invested       float64
	Withdrawal     float64
	TotalWithdrawn float64
}

// Sustainability summarizes whether a withdrawal plan holds up.
type Sustainability struct {
	// YearsToTarget is the time from now until withdrawals start.
	YearsToTarget float64
	// TargetValue is the portfolio value at that moment.
	TargetValue float64
	// SustainableYears is the time from withdrawal start to depletion,
	// or +Inf when the portfolio never depletes within the simulated century.
	SustainableYears float64
}

// Infinite reports that the plan never depletes the portfolio.
func (s Sustainability) Infinite() bool { return math.IsInf(s.SustainableYears, 1) }

// Projection is the outcome of a forward simulation.
type Projection struct {
	Rows           []ProjectionRow
	Sustainability Sustainability
}

// The simulation always runs a full century regardless of the requested
// display horizon, so sustainability analysis converges.
const horizonMonths = 100 * 12

// RequiredValue returns the portfolio value an auto-strategy needs before
// withdrawals can start, given the monthly growth rate r. The result can be
// +Inf (or negative for a Grow target above r) when the target is
// unreachable.
func (a AutoStrategy) RequiredValue(monthlyWithdrawal, r float64) float64 {
	switch a.Kind {
	case Maintain:
		return monthlyWithdrawal / r
	case Deplete:
		months := a.TargetYears * 12
		g := math.Pow(1+r, months)
		return monthlyWithdrawal * (g - 1) / (r * g)
	case Grow:
		tg := a.TargetGrowth / 100 / 12
		return monthlyWithdrawal / (r - tg)
	default:
		return math.Inf(1)
	}
}

// monthsToReach solves current*(1+r)^n == target for n, clamped at zero.
// Contributions are ignored on purpose: the closed form mirrors the strategy
// targets, which only consider compounding.
func monthsToReach(current, target, r float64) float64 {
	if current >= target {
		return 0
	}
	if current <= 0 || r <= 0 {
		return math.Inf(1)
	}
	return math.Log(target/current) / math.Log(1+r)
}

// Project simulates the portfolio forward from today. See ProjectFrom.
func Project(assets []*Asset, years int, annualRate float64, plan *WithdrawalPlan) *Projection {
	return ProjectFrom(assets, date.Today(), years, annualRate, plan)
}

// ProjectFrom simulates monthly compounding of the portfolio value from a
// given date, continuing the recurrence patterns found in existing periodic
// investments, with an optional withdrawal plan. It records one row per month
// of the display horizon (years) while simulating a full century internally.
//
// The withdrawal lifecycle is monotonic: not started, then active once the
// plan's trigger fires, then (possibly) depleted. Depletion clamps the value
// at zero and is recorded once.
func ProjectFrom(assets []*Asset, from date.Date, years int, annualRate float64, plan *WithdrawalPlan) *Projection {
	r := annualRate / 100 / 12

	summary := Analyze(assets).Summary
	value := summary.CurrentValue
	invested := summary.TotalInvested
	scheduled := scheduleInstallments(assets, from)

	// Resolve an auto-strategy into a concrete start date before simulating.
	var startDate date.Date
	var startValue float64
	withdrawing := false
	if plan != nil && plan.Enabled {
		switch plan.Trigger {
		case TriggerAuto:
			required := plan.Auto.RequiredValue(plan.monthlyAmount(), r)
			months := monthsToReach(value, required, r)
			if math.IsInf(months, 1) {
				startDate = from.AddMonth(horizonMonths + 1) // never, within this simulation
			} else {
				startDate = from.AddMonth(int(math.Ceil(months)))
			}
		case TriggerValue:
			startValue = plan.StartValue
		default:
			startDate = plan.StartDate
		}
	}

	p := &Projection{Sustainability: Sustainability{SustainableYears: math.Inf(1)}}
	if plan == nil || !plan.Enabled {
		p.Sustainability = Sustainability{}
	}

	var totalWithdrawn float64
	var firstWithdrawalMonth int
	var withdrawnMonths int
	depleted := false

	for m := 1; m <= horizonMonths; m++ {
		current := from.AddMonth(m)
		value *= 1 + r

		var withdrawal float64
		if !withdrawing {
			if amount := scheduled[m]; amount > 0 {
				invested += amount
				value += amount
			}
			if plan != nil && plan.Enabled {
				switch {
				case plan.Trigger == TriggerValue:
					withdrawing = value >= startValue
				default:
					withdrawing = !current.Before(startDate)
				}
				if withdrawing {
					firstWithdrawalMonth = m
					p.Sustainability.YearsToTarget = float64(m-1) / 12
					p.Sustainability.TargetValue = value
				}
			}
		}

		if withdrawing && !depleted {
			due := plan.Interval == MonthlyWithdrawal || current.Month() == time.January
			if due {
				withdrawal = math.Min(plan.Amount, value)
				value -= withdrawal
				totalWithdrawn += withdrawal
				withdrawnMonths = m - firstWithdrawalMonth + 1
				if value <= 0 {
					value = 0
					depleted = true
					p.Sustainability.SustainableYears = float64(withdrawnMonths) / 12
				}
			}
		}

		if m <= years*12 {
			p.Rows = append(p.Rows, ProjectionRow{
				Date:           current,
				Value:          value,
				Invested:       invested,
				Withdrawal:     withdrawal,
				TotalWithdrawn: totalWithdrawn,
			})
		}
	}

	if plan != nil && plan.Enabled && firstWithdrawalMonth == 0 {
		// Withdrawals never started within the simulated century.
		p.Sustainability.YearsToTarget = math.Inf(1)
	}
	return p
}

// scheduleInstallments detects the recurrence pattern of every periodic
// investment group and extrapolates it over the full simulation horizon.
// The cadence and the amount delta between the last two known installments
// continue unchanged. The result maps month offsets from 'from' to the sum
// of installment amounts falling in that month.
func scheduleInstallments(assets []*Asset, from date.Date) map[int]float64 {
	end := from.AddMonth(horizonMonths)
	scheduled := make(map[int]float64)

	for _, a := range assets {
		groups := make(map[string][]Investment)
		for _, inv := range a.Investments {
			if inv.Kind == Periodic && inv.PeriodicGroupID != "" {
				groups[inv.PeriodicGroupID] = append(groups[inv.PeriodicGroupID], inv)
			}
		}
		for _, invs := range groups {
			slices.SortFunc(invs, func(x, y Investment) int { return x.Date.Sub(y.Date) })
			if len(invs) < 2 {
				continue
			}
			last, prev := invs[len(invs)-1], invs[len(invs)-2]
			every := last.Date.Sub(prev.Date)
			if every <= 0 {
				continue
			}
			delta := last.Amount - prev.Amount

			amount := last.Amount
			for d := last.Date.Add(every); !d.After(end); d = d.Add(every) {
				amount += delta
				m := monthOffset(from, d)
				if m >= 1 && m <= horizonMonths {
					scheduled[m] += amount
				}
			}
		}
	}
	return scheduled
}

// monthOffset returns how many whole months after 'from' the date falls in.
func monthOffset(from, d date.Date) int {
	return (d.Year()-from.Year())*12 + int(d.Month()) - int(from.Month())
}
