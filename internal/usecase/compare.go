package usecase

import (
	"sort"

	"github.com/shopspring/decimal"

	"ecomrecon/internal/domain"
)

// Direction controls which keys a comparison emits rows for.
type Direction int

const (
	// DirectionUnion emits one row per key present in either side.
	DirectionUnion Direction = iota
	// DirectionAOnly emits rows only for keys present on side A; keys seen
	// only on side B are not reported.
	DirectionAOnly
)

// Compare pairs two aggregated amount maps by key and classifies each key.
// Output is sorted ascending by key; date keys use the ISO format so the
// lexicographic order is also chronological.
func Compare(recType string, a, b map[string]decimal.Decimal, tolerance decimal.Decimal, dir Direction) []domain.Result {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	if dir == DirectionUnion {
		for k := range b {
			if _, ok := a[k]; !ok {
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	results := make([]domain.Result, 0, len(keys))
	for _, key := range keys {
		amountA, inA := a[key]
		amountB, inB := b[key]
		res := domain.Result{
			ReconciliationType: recType,
			ReferenceKey:       key,
		}
		switch {
		case inA && inB:
			res.AmountA = &amountA
			res.AmountB = &amountB
			if amountA.Sub(amountB).Abs().Cmp(tolerance) <= 0 {
				res.Status = domain.StatusMatch
				res.Report = domain.ReportMatch
			} else {
				res.Status = domain.StatusMismatch
				res.Report = domain.ReportAmountMismatch
			}
		case inA:
			res.AmountA = &amountA
			res.Status = domain.StatusMismatch
			res.NonExistentRecord = true
			res.Report = domain.ReportNonExistentRecord
		default:
			res.AmountB = &amountB
			res.Status = domain.StatusMismatch
			res.NonExistentRecord = true
			res.Report = domain.ReportNonExistentRecord
		}
		results = append(results, res)
	}
	return results
}
