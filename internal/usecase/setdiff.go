package usecase

import (
	"sort"

	"ecomrecon/internal/domain"
)

// MissingFrom returns one result per distinct key present in keys but absent
// from other. The check is one-directional: keys present only in other are
// never reported. Comparison is exact and case-sensitive; upstream loading
// owns normalization.
func MissingFrom(recType string, keys []string, other map[string]struct{}) []domain.Result {
	seen := make(map[string]struct{}, len(keys))
	missing := make([]string, 0)
	for _, key := range keys {
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if _, ok := other[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Strings(missing)

	results := make([]domain.Result, 0, len(missing))
	for _, key := range missing {
		results = append(results, domain.Result{
			ReconciliationType: recType,
			ReferenceKey:       key,
			Status:             domain.StatusMismatch,
			NonExistentRecord:  true,
			Report:             domain.ReportNonExistentRecord,
		})
	}
	return results
}

// keySet builds the membership set MissingFrom compares against.
func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, key := range keys {
		set[key] = struct{}{}
	}
	return set
}
