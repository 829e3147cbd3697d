package foliosim

import (
	"github.com/foliosim/foliosim/date"
)

// Portfolio is the simulator's state: the assets under simulation and the
// date range of interest. The engine functions take assets as explicit
// snapshots; Portfolio is the container the surrounding layers load, mutate
// and persist.
type Portfolio struct {
	Name   string
	Range  date.Range
	Assets []*Asset
}

// NewPortfolio creates an empty portfolio covering the past year.
func NewPortfolio(name string) *Portfolio {
	today := date.Today()
	return &Portfolio{
		Name:  name,
		Range: date.NewRange(today.AddMonth(-12), today),
	}
}

// Asset returns the asset with the given id, or nil.
func (p *Portfolio) Asset(id string) *Asset {
	for _, a := range p.Assets {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// AssetBySymbol returns the first asset with the given ticker symbol, or nil.
func (p *Portfolio) AssetBySymbol(symbol string) *Asset {
	for _, a := range p.Assets {
		if a.Symbol == symbol {
			return a
		}
	}
	return nil
}

// AddAsset appends an asset to the portfolio.
func (p *Portfolio) AddAsset(a *Asset) { p.Assets = append(p.Assets, a) }

// RemoveAsset deletes the asset with the given id and reports whether one
// was removed.
func (p *Portfolio) RemoveAsset(id string) bool {
	for i, a := range p.Assets {
		if a.ID == id {
			p.Assets = append(p.Assets[:i], p.Assets[i+1:]...)
			return true
		}
	}
	return false
}

// TotalInvested sums the invested amounts across all assets.
func (p *Portfolio) TotalInvested() float64 {
	var total float64
	for _, a := range p.Assets {
		total += a.TotalInvested()
	}
	return total
}
