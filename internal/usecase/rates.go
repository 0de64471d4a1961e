package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"ecomrecon/internal/domain"
)

// usdScale is the decimal precision kept after LBP-to-USD division.
const usdScale = 6

// RateTable resolves the LBP-per-USD rate for an exact calendar date. There
// is no forward or backward fill; a missing date fails the lookup.
type RateTable struct {
	rates map[string]decimal.Decimal
}

// NewRateTable indexes daily rates by calendar date. A date listed more than
// once keeps the last rate seen, matching the upstream loader's upsert.
func NewRateTable(rates []domain.DailyRate) *RateTable {
	indexed := make(map[string]decimal.Decimal, len(rates))
	for _, r := range rates {
		indexed[r.Date.Format(time.DateOnly)] = r.Rate
	}
	return &RateTable{rates: indexed}
}

// Lookup returns the rate for the exact date.
func (t *RateTable) Lookup(date time.Time) (decimal.Decimal, error) {
	rate, ok := t.rates[date.Format(time.DateOnly)]
	if !ok || rate.IsZero() {
		return decimal.Decimal{}, &domain.MissingRateError{Date: date}
	}
	return rate, nil
}

// ToUSD converts an amount in the given currency on the given date using the
// table. USD amounts pass through unchanged.
func (t *RateTable) ToUSD(amount decimal.Decimal, currency string, date time.Time) (decimal.Decimal, error) {
	if currency != domain.CurrencyLBP {
		return amount, nil
	}
	rate, err := t.Lookup(date)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.DivRound(rate, usdScale), nil
}

// ConvertWithRate converts using a rate carried on the record itself, as ERP
// receipts do. A zero rate on an LBP amount is a data-quality failure.
func ConvertWithRate(amount decimal.Decimal, currency string, rate decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	if currency != domain.CurrencyLBP {
		return amount, nil
	}
	if rate.IsZero() {
		return decimal.Decimal{}, &domain.MissingRateError{Date: date}
	}
	return amount.DivRound(rate, usdScale), nil
}
