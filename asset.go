package foliosim

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/foliosim/foliosim/date"
)

// InvestmentKind tells apart one-off contributions from installments of a
// recurring savings plan.
type InvestmentKind int

const (
	Single InvestmentKind = iota
	Periodic
)

func (k InvestmentKind) String() string {
	switch k {
	case Single:
		return "single"
	case Periodic:
		return "periodic"
	default:
		return "unknown"
	}
}

// ParseInvestmentKind parses a string into an InvestmentKind.
func ParseInvestmentKind(s string) (InvestmentKind, error) {
	switch s {
	case "single":
		return Single, nil
	case "periodic":
		return Periodic, nil
	default:
		return 0, fmt.Errorf("unknown investment kind: %q", s)
	}
}

// Investment is a single capital contribution to one asset.
//
// PeriodicGroupID links all installments generated from one recurring rule;
// it is non-empty exactly when Kind is Periodic.
type Investment struct {
	ID              string
	AssetID         string
	Kind            InvestmentKind
	Amount          float64
	Date            date.Date
	PeriodicGroupID string
}

// Asset identifies a tradable instrument together with its price history and
// the investments made into it.
type Asset struct {
	ID          string
	Name        string
	Symbol      string
	Prices      date.History[float64]
	Investments []Investment
}

// NewAsset creates an asset with a fresh unique id.
func NewAsset(name, symbol string) *Asset {
	return &Asset{ID: uuid.NewString(), Name: name, Symbol: symbol}
}

// NewInvestment creates a single investment into this asset.
func (a *Asset) NewInvestment(amount float64, on date.Date) Investment {
	return Investment{
		ID:      uuid.NewString(),
		AssetID: a.ID,
		Kind:    Single,
		Amount:  amount,
		Date:    on,
	}
}

// AddInvestments appends investments to the asset, keeping the collection
// sorted by date.
func (a *Asset) AddInvestments(invs ...Investment) {
	a.Investments = append(a.Investments, invs...)
	slices.SortStableFunc(a.Investments, func(x, y Investment) int {
		switch {
		case x.Date.Before(y.Date):
			return -1
		case x.Date.After(y.Date):
			return 1
		default:
			return 0
		}
	})
}

// RemoveInvestment deletes the investment with the given id.
// It returns true if an investment was removed.
func (a *Asset) RemoveInvestment(id string) bool {
	n := len(a.Investments)
	a.Investments = slices.DeleteFunc(a.Investments, func(inv Investment) bool {
		return inv.ID == id
	})
	return len(a.Investments) < n
}

// RemovePeriodicGroup deletes all installments sharing the given
// periodic-group id. Editing a savings plan deletes and regenerates its whole
// group. It returns the number of installments removed.
func (a *Asset) RemovePeriodicGroup(groupID string) int {
	if groupID == "" {
		return 0
	}
	n := len(a.Investments)
	a.Investments = slices.DeleteFunc(a.Investments, func(inv Investment) bool {
		return inv.PeriodicGroupID == groupID
	})
	return n - len(a.Investments)
}

// InvestedUntil sums the amounts of all investments dated on or before 'on'.
func (a *Asset) InvestedUntil(on date.Date) float64 {
	var total float64
	for _, inv := range a.Investments {
		if !inv.Date.After(on) {
			total += inv.Amount
		}
	}
	return total
}

// TotalInvested sums the amounts of all investments in the asset.
func (a *Asset) TotalInvested() float64 {
	var total float64
	for _, inv := range a.Investments {
		total += inv.Amount
	}
	return total
}

// DynamicKind selects how a recurring amount grows over time.
type DynamicKind int

const (
	// Percentage multiplies the running amount by (1 + value/100) at each step.
	Percentage DynamicKind = iota
	// Fixed adds value to the running amount at each step.
	Fixed
)

func (k DynamicKind) String() string {
	switch k {
	case Percentage:
		return "percentage"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseDynamicKind parses a string into a DynamicKind.
func ParseDynamicKind(s string) (DynamicKind, error) {
	switch s {
	case "percentage":
		return Percentage, nil
	case "fixed":
		return Fixed, nil
	default:
		return 0, fmt.Errorf("unknown dynamic growth kind: %q", s)
	}
}

// DynamicRule grows the amount of a savings plan every YearInterval years.
type DynamicRule struct {
	Kind         DynamicKind
	Value        float64
	YearInterval float64
}

// PeriodicSettings is a recurrence rule for a savings plan. It is not
// persisted as an entity: it is consumed once to produce Investments.
type PeriodicSettings struct {
	Start      date.Date
	DayOfMonth int // anchor day, 1-31
	Interval   int
	Unit       date.Period
	Amount     float64
	Dynamic    *DynamicRule
}
