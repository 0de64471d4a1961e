package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status classifies one reconciled key.
type Status string

const (
	StatusMatch    Status = "Match"
	StatusMismatch Status = "Mismatch"
)

// Report strings persisted verbatim for downstream report generation.
const (
	ReportMatch             = "Match"
	ReportAmountMismatch    = "Mismatch due to different amounts"
	ReportNonExistentRecord = "Mismatch due to non-existent record"
	ReportInvalidKeyFormat  = "Mismatch due to invalid order number format"
)

// Reconciliation type names. Downstream readers filter the results table by
// these values, so they are part of the external contract.
const (
	TypeToken             = "Token Reconciliation"
	TypeCosmaline         = "Shipped With Cosmaline Reconciliation"
	TypeCybersource       = "Cybersource Reconciliation"
	TypeEcom              = "ECOM Reconciliation"
	TypeEcomNotInOracle   = "ECOM Orders not in Oracle Reconciliation"
	TypeEcomNotInShipping = "ECOM Orders not in Shipping Reconciliation"
	TypeInvalidShipping   = "Invalid Shipping Order Numbers Reconciliation"
	TypeInvalidOracle     = "Invalid Oracle Order Numbers Reconciliation"
)

// Result is one classified comparison for one reference key. A nil amount
// means the key was absent from that side, which is distinct from zero.
type Result struct {
	ReconciliationType string
	ReferenceKey       string
	AmountA            *decimal.Decimal
	AmountB            *decimal.Decimal
	Status             Status
	NonExistentRecord  bool
	Report             string
}

// RunRecord journals one unit invocation for audit purposes.
type RunRecord struct {
	ID                 uuid.UUID
	ReconciliationType string
	StartedAt          time.Time
	FinishedAt         time.Time
	RowsWritten        int
	Succeeded          bool
	Error              string
}
