package usecase

import (
	"sort"

	"ecomrecon/internal/domain"
)

// KeyPredicate reports whether a reference key is well-formed for its source.
type KeyPredicate func(key string) bool

// InvalidKeys returns one invalid-format result per distinct key failing the
// predicate. Each key is evaluated independently; a malformed key never
// affects the evaluation of another. The report string distinguishes a
// format failure from a missing record.
func InvalidKeys(recType string, keys []string, valid KeyPredicate) []domain.Result {
	seen := make(map[string]struct{}, len(keys))
	invalid := make([]string, 0)
	for _, key := range keys {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if !valid(key) {
			invalid = append(invalid, key)
		}
	}
	sort.Strings(invalid)

	results := make([]domain.Result, 0, len(invalid))
	for _, key := range invalid {
		results = append(results, domain.Result{
			ReconciliationType: recType,
			ReferenceKey:       key,
			Status:             domain.StatusMismatch,
			Report:             domain.ReportInvalidKeyFormat,
		})
	}
	return results
}

// partitionKeys splits keys into well-formed and malformed per the predicate,
// preserving input order and duplicates.
func partitionKeys(keys []string, valid KeyPredicate) (wellFormed, malformed []string) {
	for _, key := range keys {
		if valid(key) {
			wellFormed = append(wellFormed, key)
		} else {
			malformed = append(malformed, key)
		}
	}
	return wellFormed, malformed
}
