package gateway

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"ecomrecon/internal/domain"
)

// insertBatchSize keeps each result insert under sqlite's bind-variable
// limit on large reconciliations.
const insertBatchSize = 500

// Store implements the engine's Repository over a relational database. Reads
// see whatever snapshot the underlying isolation level provides; the only
// write is the replace of one reconciliation type inside one transaction.
type Store struct {
	db *gorm.DB
}

// NewStore wraps an open gorm handle.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetERPReceipts(ctx context.Context) ([]domain.ERPReceipt, error) {
	var rows []erpReceiptRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: erpReceiptRow{}.TableName(), Err: err}
	}
	receipts := make([]domain.ERPReceipt, 0, len(rows))
	for _, r := range rows {
		receipts = append(receipts, domain.ERPReceipt{
			ReceiptDate:   r.ReceiptDate,
			CurrencyCode:  strings.ToUpper(strings.TrimSpace(r.CurrencyCode)),
			ReceiptAmount: decimal.NewFromFloat(r.ReceiptAmount),
			ExchangeRate:  decimalFromPtr(r.ExchangeRate),
			Comments:      strings.TrimSpace(r.Comments),
		})
	}
	return receipts, nil
}

func (s *Store) GetShippingRecords(ctx context.Context) ([]domain.ShippingRecord, error) {
	var rows []shippingRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: shippingRow{}.TableName(), Err: err}
	}
	records := make([]domain.ShippingRecord, 0, len(rows))
	for _, r := range rows {
		rec := domain.ShippingRecord{
			OrderNumber:       strings.TrimSpace(r.OrderNumber),
			TokenNumber:       strings.TrimSpace(r.TokenNumber),
			CODCurrency:       strings.ToUpper(strings.TrimSpace(r.CODCurrency)),
			CODAmount:         decimalFromPtr(r.CODAmount),
			OriginalCODAmount: decimalFromPtr(r.OCODAmount),
		}
		if r.DeliveryDate != nil {
			rec.DeliveryDate = *r.DeliveryDate
		}
		records = append(records, rec)
	}
	return records, nil
}

func (s *Store) GetCreditCardSettlements(ctx context.Context) ([]domain.CreditCardSettlement, error) {
	var rows []creditCardRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: creditCardRow{}.TableName(), Err: err}
	}
	settlements := make([]domain.CreditCardSettlement, 0, len(rows))
	for _, r := range rows {
		settlements = append(settlements, domain.CreditCardSettlement{
			ValueDate: r.ValueDate,
			Amount:    decimal.NewFromFloat(r.Amount),
		})
	}
	return settlements, nil
}

func (s *Store) GetEcomOrders(ctx context.Context) ([]domain.EcomOrder, error) {
	var rows []ecomOrderRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: ecomOrderRow{}.TableName(), Err: err}
	}
	orders := make([]domain.EcomOrder, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, domain.EcomOrder{
			OrderNumber: strings.TrimSpace(r.OrderNumber),
			Amount:      decimal.NewFromFloat(r.Amount),
		})
	}
	return orders, nil
}

func (s *Store) GetOracleOrders(ctx context.Context) ([]domain.OracleOrder, error) {
	var rows []oracleOrderRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: oracleOrderRow{}.TableName(), Err: err}
	}
	orders := make([]domain.OracleOrder, 0, len(rows))
	for _, r := range rows {
		orders = append(orders, domain.OracleOrder{OrderNumber: strings.TrimSpace(r.OrderNumber)})
	}
	return orders, nil
}

func (s *Store) GetDailyRates(ctx context.Context) ([]domain.DailyRate, error) {
	var rows []dailyRateRow
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, &domain.StoreReadError{Table: dailyRateRow{}.TableName(), Err: err}
	}
	rates := make([]domain.DailyRate, 0, len(rows))
	for _, r := range rows {
		rates = append(rates, domain.DailyRate{Date: r.Date, Rate: decimal.NewFromFloat(r.Rate)})
	}
	return rates, nil
}

// ReplaceResults deletes all rows of the reconciliation type and inserts the
// fresh set inside one transaction. On any failure the transaction rolls
// back and the prior rows stay visible to readers.
func (s *Store) ReplaceResults(ctx context.Context, reconciliationType string, results []domain.Result) error {
	rows := make([]resultRow, 0, len(results))
	for _, res := range results {
		rows = append(rows, resultRow{
			ReconciliationType: res.ReconciliationType,
			ReferenceKey:       res.ReferenceKey,
			AmountA:            floatFromDecimal(res.AmountA),
			AmountB:            floatFromDecimal(res.AmountB),
			Status:             string(res.Status),
			NonExistentRecord:  boolToInt(res.NonExistentRecord),
			Report:             res.Report,
		})
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reconciliation_type = ?", reconciliationType).
			Delete(&resultRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, insertBatchSize).Error
	})
	if err != nil {
		return &domain.StoreWriteError{ReconciliationType: reconciliationType, Err: err}
	}
	return nil
}

// RecordRun appends one entry to the run journal.
func (s *Store) RecordRun(ctx context.Context, run domain.RunRecord) error {
	row := runRow{
		ID:                 run.ID.String(),
		ReconciliationType: run.ReconciliationType,
		StartedAt:          run.StartedAt,
		FinishedAt:         run.FinishedAt,
		RowsWritten:        run.RowsWritten,
		Succeeded:          run.Succeeded,
		Error:              truncate(run.Error, 512),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return &domain.StoreWriteError{ReconciliationType: run.ReconciliationType, Err: err}
	}
	return nil
}

func decimalFromPtr(v *float64) decimal.Decimal {
	if v == nil {
		return decimal.Decimal{}
	}
	return decimal.NewFromFloat(*v)
}

func floatFromDecimal(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// truncate cuts s to at most n bytes without splitting a UTF-8 rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
