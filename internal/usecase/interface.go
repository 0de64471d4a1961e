package usecase

import (
	"context"

	"ecomrecon/internal/domain"
)

// Repository defines the store access the reconciliation engine depends on.
// The engine depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go Repository
type Repository interface {
	GetERPReceipts(ctx context.Context) ([]domain.ERPReceipt, error)
	GetShippingRecords(ctx context.Context) ([]domain.ShippingRecord, error)
	GetCreditCardSettlements(ctx context.Context) ([]domain.CreditCardSettlement, error)
	GetEcomOrders(ctx context.Context) ([]domain.EcomOrder, error)
	GetOracleOrders(ctx context.Context) ([]domain.OracleOrder, error)
	GetDailyRates(ctx context.Context) ([]domain.DailyRate, error)

	// ReplaceResults atomically swaps all rows of one reconciliation type.
	ReplaceResults(ctx context.Context, reconciliationType string, results []domain.Result) error
	RecordRun(ctx context.Context, run domain.RunRecord) error
}
