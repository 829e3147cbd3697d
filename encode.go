package foliosim

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/foliosim/foliosim/date"
)

// This file persists a portfolio as JSONL, one record per line, in a way
// that stays human-readable and git-friendly. Each line carries a "record"
// discriminator:
//
//	{"record":"portfolio","name":...,"from":...,"to":...}
//	{"record":"asset","id":...,"name":...,"symbol":...,"history":{...}}
//	{"record":"investment","id":...,"asset":...,"kind":...,"amount":...,"on":...,"group":...}
//
// Asset price histories are single json objects keyed by date, emitted in
// chronological order so diffs stay stable.

const (
	recPortfolio  = "portfolio"
	recAsset      = "asset"
	recInvestment = "investment"
)

// EncodePortfolio writes the portfolio to w in the JSONL persistence format.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	write := func(obj *jsonObjectWriter) error {
		data, err := obj.MarshalJSON()
		if err != nil {
			return err
		}
		if _, err := w.Write(data); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	head := new(jsonObjectWriter).
		Append("record", recPortfolio).
		Optional("name", p.Name).
		Append("from", p.Range.From).
		Append("to", p.Range.To)
	if err := write(head); err != nil {
		return fmt.Errorf("cannot encode portfolio header: %w", err)
	}

	for _, a := range p.Assets {
		history := new(jsonObjectWriter)
		for day, price := range a.Prices.Values() {
			history.Append(day.String(), price)
		}
		obj := new(jsonObjectWriter).
			Append("record", recAsset).
			Append("id", a.ID).
			Append("name", a.Name).
			Optional("symbol", a.Symbol).
			Append("history", history)
		if err := write(obj); err != nil {
			return fmt.Errorf("cannot encode asset %q: %w", a.Name, err)
		}

		for _, inv := range a.Investments {
			obj := new(jsonObjectWriter).
				Append("record", recInvestment).
				Append("id", inv.ID).
				Append("asset", inv.AssetID).
				Append("kind", inv.Kind.String()).
				Append("amount", inv.Amount).
				Append("on", inv.Date).
				Optional("group", inv.PeriodicGroupID)
			if err := write(obj); err != nil {
				return fmt.Errorf("cannot encode investment in %q: %w", a.Name, err)
			}
		}
	}
	return nil
}

// DecodePortfolio reads a portfolio from a stream of JSONL lines written by
// EncodePortfolio. Empty lines are skipped; investments may appear before or
// after their asset line.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := &Portfolio{}

	// investments are attached once all asset lines are known.
	var pending []Investment

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 16*1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		txt := scanner.Bytes()
		if len(strings.TrimSpace(string(txt))) == 0 {
			continue
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(txt, &identifier); err != nil {
			return nil, fmt.Errorf("parse error on line %d: not a correct json: %w", line, err)
		}

		switch identifier.Record {
		case recPortfolio:
			var jp struct {
				Name string    `json:"name"`
				From date.Date `json:"from"`
				To   date.Date `json:"to"`
			}
			if err := json.Unmarshal(txt, &jp); err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", line, err)
			}
			p.Name = jp.Name
			p.Range = date.NewRange(jp.From, jp.To)

		case recAsset:
			var ja struct {
				ID      string             `json:"id"`
				Name    string             `json:"name"`
				Symbol  string             `json:"symbol"`
				History map[string]float64 `json:"history"`
			}
			if err := json.Unmarshal(txt, &ja); err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", line, err)
			}
			a := &Asset{ID: ja.ID, Name: ja.Name, Symbol: ja.Symbol}
			for day, price := range ja.History {
				d, err := date.Parse(day)
				if err != nil {
					return nil, fmt.Errorf("parse error on line %d: invalid date %q: %w", line, day, err)
				}
				a.Prices.Append(d, price)
			}
			p.AddAsset(a)

		case recInvestment:
			var ji struct {
				ID     string    `json:"id"`
				Asset  string    `json:"asset"`
				Kind   string    `json:"kind"`
				Amount float64   `json:"amount"`
				On     date.Date `json:"on"`
				Group  string    `json:"group"`
			}
			if err := json.Unmarshal(txt, &ji); err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", line, err)
			}
			kind, err := ParseInvestmentKind(ji.Kind)
			if err != nil {
				return nil, fmt.Errorf("parse error on line %d: %w", line, err)
			}
			pending = append(pending, Investment{
				ID:              ji.ID,
				AssetID:         ji.Asset,
				Kind:            kind,
				Amount:          ji.Amount,
				Date:            ji.On,
				PeriodicGroupID: ji.Group,
			})

		default:
			return nil, fmt.Errorf("parse error on line %d: unknown record %q", line, identifier.Record)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read portfolio: %w", err)
	}

	for _, inv := range pending {
		a := p.Asset(inv.AssetID)
		if a == nil {
			return nil, fmt.Errorf("investment %q refers to unknown asset %q", inv.ID, inv.AssetID)
		}
		a.AddInvestments(inv)
	}
	return p, nil
}
