package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency codes appearing in the source tables.
const (
	CurrencyUSD = "USD"
	CurrencyLBP = "LBP"
)

// Sentinel values routing ERP receipts and shipping rows to their
// reconciliation. Collection-token rows carry the bare token instead.
const (
	CosmalineToken     = "Shipped With Cosmaline"
	CybersourceComment = "Cybersource"
)

// ERPReceipt is one receipt row from the ERP export. LBP receipts convert
// with the row's own exchange rate, not the daily rate table.
type ERPReceipt struct {
	ReceiptDate   time.Time
	CurrencyCode  string
	ReceiptAmount decimal.Decimal
	ExchangeRate  decimal.Decimal
	Comments      string
}

// ShippingRecord is one shipment/collection row from the combined
// Aramex/Cosmaline table. USD collections carry OriginalCODAmount; LBP
// collections carry CODAmount and convert via the daily rate for the
// delivery date.
type ShippingRecord struct {
	OrderNumber       string
	TokenNumber       string
	DeliveryDate      time.Time
	CODCurrency       string
	CODAmount         decimal.Decimal
	OriginalCODAmount decimal.Decimal
}

// CreditCardSettlement is one settlement row from the card processor, USD.
type CreditCardSettlement struct {
	ValueDate time.Time
	Amount    decimal.Decimal
}

// EcomOrder is one website order, USD.
type EcomOrder struct {
	OrderNumber string
	Amount      decimal.Decimal
}

// OracleOrder references an e-commerce order number known to Oracle.
type OracleOrder struct {
	OrderNumber string
}

// DailyRate is the LBP-per-USD rate for one calendar date.
type DailyRate struct {
	Date time.Time
	Rate decimal.Decimal
}
