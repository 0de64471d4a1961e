package gateway

import (
	"time"

	"gorm.io/gorm"
)

// Source table rows. These schemas are owned by the upstream ETL loaders;
// the engine only reads them, so none of them are migrated here.

type erpReceiptRow struct {
	ReceiptDate   time.Time `gorm:"column:receipt_date"`
	CurrencyCode  string    `gorm:"column:currency_code;size:3"`
	ReceiptAmount float64   `gorm:"column:receipt_amount"`
	ExchangeRate  *float64  `gorm:"column:exchange_rate"`
	Comments      string    `gorm:"column:comments;size:255"`
}

func (erpReceiptRow) TableName() string { return "erp_data" }

type shippingRow struct {
	OrderNumber  string     `gorm:"column:order_number;size:255"`
	TokenNumber  string     `gorm:"column:tokenno;size:255"`
	DeliveryDate *time.Time `gorm:"column:delivery_date"`
	CODCurrency  string     `gorm:"column:cod_currency;size:3"`
	CODAmount    *float64   `gorm:"column:cod_amount"`
	OCODAmount   *float64   `gorm:"column:o_cod_amount"`
}

func (shippingRow) TableName() string { return "shippedandcollected_aramex_cosmaline" }

type creditCardRow struct {
	ValueDate time.Time `gorm:"column:value_date"`
	Amount    float64   `gorm:"column:amount"`
}

func (creditCardRow) TableName() string { return "credit_card" }

type ecomOrderRow struct {
	OrderNumber string  `gorm:"column:order_number;size:255"`
	Amount      float64 `gorm:"column:amount"`
}

func (ecomOrderRow) TableName() string { return "ecom_orders" }

type oracleOrderRow struct {
	OrderNumber string `gorm:"column:ecom_reference_order_number;size:255"`
}

func (oracleOrderRow) TableName() string { return "oracle_data" }

type dailyRateRow struct {
	Date time.Time `gorm:"column:date"`
	Rate float64   `gorm:"column:rate"`
}

func (dailyRateRow) TableName() string { return "daily_rate" }

// Output tables, owned exclusively by this store.

type resultRow struct {
	ID                 int64    `gorm:"column:id;primaryKey;autoIncrement"`
	ReconciliationType string   `gorm:"column:reconciliation_type;size:255;index"`
	ReferenceKey       string   `gorm:"column:reference_key;size:255"`
	AmountA            *float64 `gorm:"column:amount_a"`
	AmountB            *float64 `gorm:"column:amount_b"`
	Status             string   `gorm:"column:reconciliation_status;size:50"`
	NonExistentRecord  int      `gorm:"column:non_existent_record"`
	Report             string   `gorm:"column:recon_report;size:255"`
}

func (resultRow) TableName() string { return "reconciliation_results" }

type runRow struct {
	ID                 string    `gorm:"column:id;primaryKey;size:36"`
	ReconciliationType string    `gorm:"column:reconciliation_type;size:255;index"`
	StartedAt          time.Time `gorm:"column:started_at"`
	FinishedAt         time.Time `gorm:"column:finished_at"`
	RowsWritten        int       `gorm:"column:rows_written"`
	Succeeded          bool      `gorm:"column:succeeded"`
	Error              string    `gorm:"column:error;size:512"`
}

func (runRow) TableName() string { return "reconciliation_runs" }

// AutoMigrate creates the tables this store owns. Source tables belong to
// the upstream loaders and are left alone.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&resultRow{}, &runRow{})
}
