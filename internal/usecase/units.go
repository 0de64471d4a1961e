package usecase

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"ecomrecon/internal/domain"
	"ecomrecon/internal/metrics"
)

// defaultTolerance absorbs float rounding noise in financial comparisons.
var defaultTolerance = decimal.RequireFromString("0.01")

// defaultOrderNumberPattern is the well-formedness rule for order
// identifiers, overridable in configuration. Order numbers are numeric with
// an optional ORD prefix.
var defaultOrderNumberPattern = regexp.MustCompile(`^(ORD)?[0-9]+$`)

// Options configures an Engine. Zero values fall back to defaults.
type Options struct {
	// DefaultTolerance applies to every amount comparison without a
	// per-type override. Nil means unset; an explicit zero demands exact
	// equality everywhere.
	DefaultTolerance *decimal.Decimal
	// Tolerances overrides the tolerance per reconciliation type.
	Tolerances map[string]decimal.Decimal
	// OrderNumberPattern is the key format predicate used by the
	// invalid-order-number units.
	OrderNumberPattern *regexp.Regexp
	Logger             *slog.Logger
	Metrics            *metrics.Metrics
	Now                func() time.Time
}

// Engine owns the reconciliation unit catalogue. Each unit reads its source
// snapshots, computes entirely in memory, and replace-writes its results;
// units share no mutable state and are safe to run concurrently.
type Engine struct {
	repo         Repository
	tolerance    decimal.Decimal
	tolerances   map[string]decimal.Decimal
	orderPattern *regexp.Regexp
	logger       *slog.Logger
	metrics      *metrics.Metrics
	now          func() time.Time
}

// Unit is one self-contained reconciliation, invoked by the orchestrator
// after the upstream loads complete. Re-running a unit is safe: its write is
// a full replace of its reconciliation type.
type Unit struct {
	Name    string
	compute func(ctx context.Context) ([]domain.Result, error)
}

// NewEngine builds the engine and its unit catalogue.
func NewEngine(repo Repository, opts Options) (*Engine, error) {
	if repo == nil {
		return nil, errors.New("usecase: repository is required")
	}
	tolerance := defaultTolerance
	if opts.DefaultTolerance != nil {
		tolerance = *opts.DefaultTolerance
	}
	pattern := opts.OrderNumberPattern
	if pattern == nil {
		pattern = defaultOrderNumberPattern
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	nowFn := opts.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Engine{
		repo:         repo,
		tolerance:    tolerance,
		tolerances:   opts.Tolerances,
		orderPattern: pattern,
		logger:       logger,
		metrics:      opts.Metrics,
		now:          nowFn,
	}, nil
}

// Units returns the full catalogue in its canonical order.
func (e *Engine) Units() []*Unit {
	return []*Unit{
		{Name: domain.TypeToken, compute: e.computeToken},
		{Name: domain.TypeCosmaline, compute: e.computeCosmaline},
		{Name: domain.TypeCybersource, compute: e.computeCybersource},
		{Name: domain.TypeEcom, compute: e.computeEcom},
		{Name: domain.TypeEcomNotInOracle, compute: e.computeEcomNotInOracle},
		{Name: domain.TypeEcomNotInShipping, compute: e.computeEcomNotInShipping},
		{Name: domain.TypeInvalidShipping, compute: e.computeInvalidShipping},
		{Name: domain.TypeInvalidOracle, compute: e.computeInvalidOracle},
	}
}

// Unit looks a unit up by its reconciliation type name.
func (e *Engine) Unit(name string) (*Unit, bool) {
	for _, u := range e.Units() {
		if u.Name == name {
			return u, true
		}
	}
	return nil, false
}

// Run executes one unit end to end: compute, replace-write, journal. Any
// error leaves the prior results for the unit's type untouched.
func (e *Engine) Run(ctx context.Context, unit *Unit) error {
	started := e.now()
	results, err := unit.compute(ctx)
	if err == nil {
		err = e.repo.ReplaceResults(ctx, unit.Name, results)
	}
	finished := e.now()

	run := domain.RunRecord{
		ID:                 uuid.New(),
		ReconciliationType: unit.Name,
		StartedAt:          started,
		FinishedAt:         finished,
		Succeeded:          err == nil,
	}
	if err != nil {
		run.Error = err.Error()
	} else {
		run.RowsWritten = len(results)
	}
	if recordErr := e.repo.RecordRun(ctx, run); recordErr != nil {
		e.logger.Warn("run journal write failed",
			"reconciliation_type", unit.Name, "error", recordErr)
	}

	if e.metrics != nil {
		e.metrics.ObserveRun(unit.Name, err == nil, finished.Sub(started))
		if err == nil {
			e.metrics.AddRowsWritten(unit.Name, len(results))
		}
	}
	if err != nil {
		e.logger.Error("reconciliation failed",
			"reconciliation_type", unit.Name, "error", err)
		return err
	}
	e.logger.Info("reconciliation complete",
		"reconciliation_type", unit.Name, "rows_written", len(results),
		"duration", finished.Sub(started))
	return nil
}

// RunMany executes units, concurrently when parallel is set, and returns the
// failures keyed by unit name. Units never write the same reconciliation
// type, so concurrent execution cannot contend on the results table.
func (e *Engine) RunMany(ctx context.Context, units []*Unit, parallel bool) map[string]error {
	failures := make(map[string]error)
	if !parallel {
		for _, unit := range units {
			if err := e.Run(ctx, unit); err != nil {
				failures[unit.Name] = err
			}
		}
		return failures
	}

	type outcome struct {
		name string
		err  error
	}
	outcomes := make(chan outcome, len(units))
	for _, unit := range units {
		go func(u *Unit) {
			outcomes <- outcome{name: u.Name, err: e.Run(ctx, u)}
		}(unit)
	}
	for range units {
		o := <-outcomes
		if o.err != nil {
			failures[o.name] = o.err
		}
	}
	return failures
}

func (e *Engine) toleranceFor(recType string) decimal.Decimal {
	if t, ok := e.tolerances[recType]; ok {
		return t
	}
	return e.tolerance
}

// isCollectionToken reports whether an ERP comment carries a collection
// token rather than one of the routing sentinels.
func isCollectionToken(comment string) bool {
	return comment != "" &&
		comment != domain.CosmalineToken &&
		comment != domain.CybersourceComment
}

// shippingUSD normalizes one shipping collection to USD. LBP collections
// convert via the daily rate for the delivery date; USD collections carry
// the original COD amount.
func shippingUSD(rec domain.ShippingRecord, rates *RateTable) (decimal.Decimal, error) {
	if rec.CODCurrency == domain.CurrencyLBP {
		return rates.ToUSD(rec.CODAmount, domain.CurrencyLBP, rec.DeliveryDate)
	}
	return rec.OriginalCODAmount, nil
}

func (e *Engine) rateTable(ctx context.Context) (*RateTable, error) {
	rates, err := e.repo.GetDailyRates(ctx)
	if err != nil {
		return nil, err
	}
	return NewRateTable(rates), nil
}

// erpEntries converts and keys the ERP receipts selected by keep.
func erpEntries(receipts []domain.ERPReceipt, keep func(domain.ERPReceipt) bool, key func(domain.ERPReceipt) string) ([]Entry, error) {
	entries := make([]Entry, 0, len(receipts))
	for _, r := range receipts {
		if !keep(r) {
			continue
		}
		usd, err := ConvertWithRate(r.ReceiptAmount, r.CurrencyCode, r.ExchangeRate, r.ReceiptDate)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key(r), Amount: usd})
	}
	return entries, nil
}

// shippingEntries converts and keys the shipping records selected by keep.
func shippingEntries(records []domain.ShippingRecord, rates *RateTable, keep func(domain.ShippingRecord) bool, key func(domain.ShippingRecord) string) ([]Entry, error) {
	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		if !keep(rec) {
			continue
		}
		usd, err := shippingUSD(rec, rates)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Key: key(rec), Amount: usd})
	}
	return entries, nil
}

func dateKey(t time.Time) string { return t.Format(time.DateOnly) }

func (e *Engine) computeToken(ctx context.Context) ([]domain.Result, error) {
	receipts, err := e.repo.GetERPReceipts(ctx)
	if err != nil {
		return nil, err
	}
	shipping, err := e.repo.GetShippingRecords(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := e.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	erp, err := erpEntries(receipts,
		func(r domain.ERPReceipt) bool { return isCollectionToken(r.Comments) },
		func(r domain.ERPReceipt) string { return r.Comments })
	if err != nil {
		return nil, err
	}
	collected, err := shippingEntries(shipping, rates,
		func(r domain.ShippingRecord) bool {
			return r.TokenNumber != "" && r.TokenNumber != domain.CosmalineToken
		},
		func(r domain.ShippingRecord) string { return r.TokenNumber })
	if err != nil {
		return nil, err
	}
	return Compare(domain.TypeToken, Aggregate(erp), Aggregate(collected),
		e.toleranceFor(domain.TypeToken), DirectionUnion), nil
}

func (e *Engine) computeCosmaline(ctx context.Context) ([]domain.Result, error) {
	receipts, err := e.repo.GetERPReceipts(ctx)
	if err != nil {
		return nil, err
	}
	shipping, err := e.repo.GetShippingRecords(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := e.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	erp, err := erpEntries(receipts,
		func(r domain.ERPReceipt) bool { return r.Comments == domain.CosmalineToken },
		func(r domain.ERPReceipt) string { return dateKey(r.ReceiptDate) })
	if err != nil {
		return nil, err
	}
	collected, err := shippingEntries(shipping, rates,
		func(r domain.ShippingRecord) bool { return r.TokenNumber == domain.CosmalineToken },
		func(r domain.ShippingRecord) string { return dateKey(r.DeliveryDate) })
	if err != nil {
		return nil, err
	}
	return Compare(domain.TypeCosmaline, Aggregate(erp), Aggregate(collected),
		e.toleranceFor(domain.TypeCosmaline), DirectionUnion), nil
}

func (e *Engine) computeCybersource(ctx context.Context) ([]domain.Result, error) {
	receipts, err := e.repo.GetERPReceipts(ctx)
	if err != nil {
		return nil, err
	}
	settlements, err := e.repo.GetCreditCardSettlements(ctx)
	if err != nil {
		return nil, err
	}

	erp, err := erpEntries(receipts,
		func(r domain.ERPReceipt) bool { return r.Comments == domain.CybersourceComment },
		func(r domain.ERPReceipt) string { return dateKey(r.ReceiptDate) })
	if err != nil {
		return nil, err
	}
	settled := make([]Entry, 0, len(settlements))
	for _, s := range settlements {
		settled = append(settled, Entry{Key: dateKey(s.ValueDate), Amount: s.Amount})
	}
	return Compare(domain.TypeCybersource, Aggregate(erp), Aggregate(settled),
		e.toleranceFor(domain.TypeCybersource), DirectionUnion), nil
}

func (e *Engine) computeEcom(ctx context.Context) ([]domain.Result, error) {
	orders, err := e.repo.GetEcomOrders(ctx)
	if err != nil {
		return nil, err
	}
	shipping, err := e.repo.GetShippingRecords(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := e.rateTable(ctx)
	if err != nil {
		return nil, err
	}

	ordered := make([]Entry, 0, len(orders))
	for _, o := range orders {
		if o.OrderNumber == "" {
			continue
		}
		ordered = append(ordered, Entry{Key: o.OrderNumber, Amount: o.Amount})
	}
	collected, err := shippingEntries(shipping, rates,
		func(r domain.ShippingRecord) bool { return r.OrderNumber != "" },
		func(r domain.ShippingRecord) string { return r.OrderNumber })
	if err != nil {
		return nil, err
	}
	// Shipping-only orders are covered by the invalid-shipping unit; this
	// comparison reports the e-commerce side only.
	return Compare(domain.TypeEcom, Aggregate(ordered), Aggregate(collected),
		e.toleranceFor(domain.TypeEcom), DirectionAOnly), nil
}

func (e *Engine) computeEcomNotInOracle(ctx context.Context) ([]domain.Result, error) {
	orders, err := e.repo.GetEcomOrders(ctx)
	if err != nil {
		return nil, err
	}
	oracle, err := e.repo.GetOracleOrders(ctx)
	if err != nil {
		return nil, err
	}
	return MissingFrom(domain.TypeEcomNotInOracle, ecomOrderNumbers(orders),
		keySet(oracleOrderNumbers(oracle))), nil
}

func (e *Engine) computeEcomNotInShipping(ctx context.Context) ([]domain.Result, error) {
	orders, err := e.repo.GetEcomOrders(ctx)
	if err != nil {
		return nil, err
	}
	shipping, err := e.repo.GetShippingRecords(ctx)
	if err != nil {
		return nil, err
	}
	return MissingFrom(domain.TypeEcomNotInShipping, ecomOrderNumbers(orders),
		keySet(shippingOrderNumbers(shipping))), nil
}

func (e *Engine) computeInvalidShipping(ctx context.Context) ([]domain.Result, error) {
	shipping, err := e.repo.GetShippingRecords(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := e.repo.GetEcomOrders(ctx)
	if err != nil {
		return nil, err
	}
	return e.invalidOrderResults(domain.TypeInvalidShipping,
		shippingOrderNumbers(shipping), ecomOrderNumbers(orders)), nil
}

func (e *Engine) computeInvalidOracle(ctx context.Context) ([]domain.Result, error) {
	oracle, err := e.repo.GetOracleOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := e.repo.GetEcomOrders(ctx)
	if err != nil {
		return nil, err
	}
	return e.invalidOrderResults(domain.TypeInvalidOracle,
		oracleOrderNumbers(oracle), ecomOrderNumbers(orders)), nil
}

// invalidOrderResults flags malformed order numbers as format findings and
// well-formed ones absent from the e-commerce orders as missing records. A
// malformed key is routed to the format bucket only, never both.
func (e *Engine) invalidOrderResults(recType string, keys, ecomKeys []string) []domain.Result {
	valid := KeyPredicate(func(key string) bool { return e.orderPattern.MatchString(key) })
	wellFormed, _ := partitionKeys(keys, valid)

	results := InvalidKeys(recType, keys, valid)
	results = append(results, MissingFrom(recType, wellFormed, keySet(ecomKeys))...)
	sort.Slice(results, func(i, j int) bool {
		return results[i].ReferenceKey < results[j].ReferenceKey
	})
	return results
}

func ecomOrderNumbers(orders []domain.EcomOrder) []string {
	keys := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.OrderNumber != "" {
			keys = append(keys, o.OrderNumber)
		}
	}
	return keys
}

func oracleOrderNumbers(orders []domain.OracleOrder) []string {
	keys := make([]string, 0, len(orders))
	for _, o := range orders {
		if o.OrderNumber != "" {
			keys = append(keys, o.OrderNumber)
		}
	}
	return keys
}

func shippingOrderNumbers(records []domain.ShippingRecord) []string {
	keys := make([]string, 0, len(records))
	for _, r := range records {
		if r.OrderNumber != "" {
			keys = append(keys, r.OrderNumber)
		}
	}
	return keys
}
