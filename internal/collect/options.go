package collect

import (
	"github.com/go-playground/validator/v10"
)

// HistoryOptions configures the bulk chart-history download. The option set
// mirrors what the quote backend recognizes; either Period or the Start/End
// pair selects the window.
type HistoryOptions struct {
	// Period of the chart history. Ignored when Start/End are set.
	Period string `json:"period" validate:"omitempty,oneof=1d 5d 1mo 3mo 6mo 1y 2y 5y 10y ytd max"`
	// Interval is the time step within the period. Intraday intervals cannot
	// extend past the last 60 days.
	Interval string `json:"interval" validate:"omitempty,oneof=1m 2m 5m 15m 30m 60m 90m 1h 1d 5d 1wk 1mo 3mo"`
	// Start date (YYYY-MM-DD).
	Start string `json:"start" validate:"omitempty,datetime=2006-01-02"`
	// End date (YYYY-MM-DD).
	End string `json:"end" validate:"omitempty,datetime=2006-01-02"`
	// PrePost includes pre- and post-market data.
	PrePost bool `json:"prepost"`
	// Actions includes dividends and stock splits in the result.
	Actions bool `json:"actions"`
	// AutoAdjust adjusts all OHLC columns automatically.
	AutoAdjust bool `json:"auto_adjust"`
	// Proxy to route the download through.
	Proxy string `json:"proxy"`
	// Threads is the backend download thread count.
	Threads int `json:"threads" validate:"gte=0"`
	// GroupBy groups the combined table by ticker or by column.
	GroupBy string `json:"group_by" validate:"omitempty,oneof=column ticker"`
	// Progress enables backend progress reporting.
	Progress bool `json:"progress"`
}

// DefaultHistoryOptions returns the option set applied when the caller omits
// parameters: one month of daily candles, auto-adjusted, actions included.
func DefaultHistoryOptions() HistoryOptions {
	return HistoryOptions{
		Period:     "1mo",
		Interval:   "1d",
		Actions:    true,
		AutoAdjust: true,
		Threads:    4,
		GroupBy:    "column",
		Progress:   true,
	}
}

// WithDefaults fills the zero-valued selector fields from the default option
// set, leaving explicitly set fields alone.
func (o HistoryOptions) WithDefaults() HistoryOptions {
	defaults := DefaultHistoryOptions()
	if o.Period == "" && o.Start == "" && o.End == "" {
		o.Period = defaults.Period
	}
	if o.Interval == "" {
		o.Interval = defaults.Interval
	}
	if o.GroupBy == "" {
		o.GroupBy = defaults.GroupBy
	}
	return o
}

var validate = validator.New()

// Validate checks the option fields against the values the backend accepts.
func (o HistoryOptions) Validate() error {
	return validate.Struct(o)
}
