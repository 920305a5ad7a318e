package finance

import (
	"context"

	"kpicollector/internal/collect"
)

// Collector is the finance facade. It forwards each find operation to the
// like-named get operation on whichever builder is installed, supplying
// default parameters where the caller omits them.
type Collector struct {
	collect.Collector
}

// NewCollector creates a finance collector with no builder installed.
func NewCollector() *Collector {
	return &Collector{}
}

// chartHistoryGetter is the extra capability the history forwarding needs
// beyond the generic builder contract.
type chartHistoryGetter interface {
	GetChartHistory(ctx context.Context, opts collect.HistoryOptions) error
}

// FindChartHistory forwards the bulk history download. A nil opts runs with
// the default option set; a partially filled opts has its empty selector
// fields defaulted.
func (c *Collector) FindChartHistory(ctx context.Context, opts *collect.HistoryOptions) error {
	b := c.Builder()
	if b == nil {
		return collect.NewNoBuilderError(OpChartHistory)
	}
	getter, ok := b.(chartHistoryGetter)
	if !ok {
		return collect.NewAttributeUnavailableError(OpChartHistory, "")
	}

	o := collect.DefaultHistoryOptions()
	if opts != nil {
		o = opts.WithDefaults()
	}
	return getter.GetChartHistory(ctx, o)
}

// FindISINCode searches the International Securities Identification Number
// of every ticker.
func (c *Collector) FindISINCode(ctx context.Context) error {
	return c.Find(ctx, OpISINCode)
}

// FindMajorHolders searches the major holders of every ticker.
func (c *Collector) FindMajorHolders(ctx context.Context) error {
	return c.Find(ctx, OpMajorHolders)
}

// FindInstitutionalHolders searches the institutional holders of every ticker.
func (c *Collector) FindInstitutionalHolders(ctx context.Context) error {
	return c.Find(ctx, OpInstitutionalHolders)
}

// FindMutualfundHolders searches the mutual-fund holders of every ticker.
func (c *Collector) FindMutualfundHolders(ctx context.Context) error {
	return c.Find(ctx, OpMutualfundHolders)
}

// FindDividends searches the dividends of every ticker.
func (c *Collector) FindDividends(ctx context.Context) error {
	return c.Find(ctx, OpDividends)
}

// FindSplits searches the stock splits of every ticker.
func (c *Collector) FindSplits(ctx context.Context) error {
	return c.Find(ctx, OpSplits)
}

// FindActions searches the dividends and splits of every ticker together.
func (c *Collector) FindActions(ctx context.Context) error {
	return c.Find(ctx, OpActions)
}

// FindInfo searches the descriptive information of every ticker.
func (c *Collector) FindInfo(ctx context.Context) error {
	return c.Find(ctx, OpInfo)
}

// FindCalendar searches the upcoming events of every ticker.
func (c *Collector) FindCalendar(ctx context.Context) error {
	return c.Find(ctx, OpCalendar)
}

// FindRecommendations searches the analyst recommendations of every ticker.
func (c *Collector) FindRecommendations(ctx context.Context) error {
	return c.Find(ctx, OpRecommendations)
}

// FindEarnings searches the yearly earnings of every ticker.
func (c *Collector) FindEarnings(ctx context.Context) error {
	return c.Find(ctx, OpEarnings)
}

// FindQuarterlyEarnings searches the quarterly earnings of every ticker.
func (c *Collector) FindQuarterlyEarnings(ctx context.Context) error {
	return c.Find(ctx, OpQuarterlyEarnings)
}

// FindFinancials searches the yearly financials of every ticker.
func (c *Collector) FindFinancials(ctx context.Context) error {
	return c.Find(ctx, OpFinancials)
}

// FindQuarterlyFinancials searches the quarterly financials of every ticker.
func (c *Collector) FindQuarterlyFinancials(ctx context.Context) error {
	return c.Find(ctx, OpQuarterlyFinancials)
}

// FindBalancesheet searches the yearly balance sheet of every ticker.
func (c *Collector) FindBalancesheet(ctx context.Context) error {
	return c.Find(ctx, OpBalancesheet)
}

// FindQuarterlyBalancesheet searches the quarterly balance sheet of every ticker.
func (c *Collector) FindQuarterlyBalancesheet(ctx context.Context) error {
	return c.Find(ctx, OpQuarterlyBalancesheet)
}

// FindCashflow searches the yearly cashflow of every ticker.
func (c *Collector) FindCashflow(ctx context.Context) error {
	return c.Find(ctx, OpCashflow)
}

// FindQuarterlyCashflow searches the quarterly cashflow of every ticker.
func (c *Collector) FindQuarterlyCashflow(ctx context.Context) error {
	return c.Find(ctx, OpQuarterlyCashflow)
}

// FindSustainability searches the sustainability rating of every ticker.
func (c *Collector) FindSustainability(ctx context.Context) error {
	return c.Find(ctx, OpSustainability)
}

// FindOptions searches the option chain of every ticker.
func (c *Collector) FindOptions(ctx context.Context) error {
	return c.Find(ctx, OpOptions)
}
