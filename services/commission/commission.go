// Package commission holds the single commission formula. Every call site (the
// durable commit path, the fallback commit path and the earnings view) must go
// through Amount with an explicit rate so the formula cannot drift between them.
package commission

// DefaultRatePercent is the platform default commission rate, applied only when a
// partner's configured rate is unavailable (the fallback commit path). Reconciliation
// re-rates such bookings at the partner's configured percentage.
const DefaultRatePercent = 10.0

// Amount returns the commission earned on a booking total at the given percentage
// rate.
func Amount(total, ratePercent float64) float64 {
	return total * ratePercent / 100
}
