// Package foliosim implements the computation engine of an investment
// portfolio simulator.
//
// The engine turns asset definitions, investment records and historical price
// series into time-series portfolio valuations, performance figures, periodic
// investment schedules and multi-decade future projections with withdrawal
// sustainability analysis.
//
// All computations are pure functions over immutable snapshots: the engine
// never reads ambient state, holds nothing between calls, and never fails for
// missing data. Gaps in price series are resolved by documented fallback
// policies (carry-forward, nearest-known-price), and degenerate inputs (no
// investments, empty series) degrade to zero-valued or skipped results rather
// than errors. All money values are float64; NaN and Inf are documented
// outcomes of empty-input divisions and callers are expected to guard where
// noted.
package foliosim
