package domain

import (
	"fmt"
	"time"
)

// MissingRateError reports an LBP amount whose date has no exchange rate.
// It always fails the whole unit; defaulting the rate would corrupt the
// financial comparison.
type MissingRateError struct {
	Date time.Time
}

func (e *MissingRateError) Error() string {
	return fmt.Sprintf("no exchange rate for %s", e.Date.Format(time.DateOnly))
}

// MalformedKeyError reports a reference key that fails its source's
// well-formedness rule.
type MalformedKeyError struct {
	Key    string
	Source string
}

func (e *MalformedKeyError) Error() string {
	return fmt.Sprintf("malformed key %q in %s", e.Key, e.Source)
}

// StoreReadError wraps a failed source table read.
type StoreReadError struct {
	Table string
	Err   error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Table, e.Err)
}

func (e *StoreReadError) Unwrap() error { return e.Err }

// StoreWriteError wraps a failed results replace-write. The prior rows for
// the reconciliation type remain intact when this is returned.
type StoreWriteError struct {
	ReconciliationType string
	Err                error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("write results for %s: %v", e.ReconciliationType, e.Err)
}

func (e *StoreWriteError) Unwrap() error { return e.Err }
