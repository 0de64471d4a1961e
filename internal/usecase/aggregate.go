package usecase

import (
	"github.com/shopspring/decimal"
)

// Entry is one currency-normalized contribution to an aggregate.
type Entry struct {
	Key    string
	Amount decimal.Decimal
}

// Aggregate sums entries by key. Records are normalized before summation, so
// a key mixing currencies converts each record individually. Keys with no
// contributing entries are absent from the map, never present with zero.
func Aggregate(entries []Entry) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal, len(entries))
	for _, e := range entries {
		sums[e.Key] = sums[e.Key].Add(e.Amount)
	}
	return sums
}
