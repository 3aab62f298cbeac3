// Package billing computes the bill for a call log.
//
// Data flows one way: text is parsed into records, records that end before
// they start are dropped, the free number is resolved from what remains, and
// every other call is priced and summed.
package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"telephone-bill/core/calllog"
	"telephone-bill/core/freenumber"
	"telephone-bill/core/pricing"
	"telephone-bill/core/types"
)

// Calculator prices call logs. The zero value is not usable; use NewCalculator.
type Calculator struct {
	logger   *zap.Logger
	currency types.Currency
}

// Option configures a Calculator
type Option func(*Calculator)

// WithLogger sets the logger used for calculation summaries
func WithLogger(logger *zap.Logger) Option {
	return func(c *Calculator) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCurrency sets the label stamped on produced bills
func WithCurrency(currency types.Currency) Option {
	return func(c *Calculator) {
		c.currency = currency
	}
}

// NewCalculator creates a calculator
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		logger:   zap.NewNop(),
		currency: types.CurrencyCZK,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Calculate returns the amount due for phoneLog. An empty log costs nothing.
func (c *Calculator) Calculate(phoneLog string) (decimal.Decimal, error) {
	if phoneLog == "" {
		return decimal.Zero, nil
	}
	bill, err := c.Bill(phoneLog)
	if err != nil {
		return decimal.Zero, err
	}
	return bill.Total, nil
}

// Bill computes the itemised bill for phoneLog
func (c *Calculator) Bill(phoneLog string) (*types.Bill, error) {
	bill := types.NewBill(uuid.NewString(), c.currency)
	logger := c.logger.With(zap.String("bill_id", bill.ID))

	if phoneLog == "" {
		logger.Debug("empty call log")
		return bill, nil
	}

	records, err := calllog.Parse(phoneLog)
	if err != nil {
		logger.Debug("call log rejected", zap.Error(err))
		return nil, err
	}
	records, bill.DroppedRecords = calllog.DropInvalid(records)

	bill.FreeNumber, bill.HasFreeNumber = freenumber.Resolve(records)

	for _, record := range records {
		if bill.HasFreeNumber && record.Number == bill.FreeNumber {
			bill.AddCall(types.CallCharge{Record: record, Amount: decimal.Zero, Free: true})
			continue
		}
		bill.AddCall(pricing.Quote(record))
	}

	logger.Debug("bill calculated",
		zap.Int("calls", len(records)),
		zap.Int("dropped", bill.DroppedRecords),
		zap.String("free_number", bill.FreeNumber),
		zap.Int("excluded", bill.ExcludedCalls),
		zap.String("total", bill.Total.String()),
	)

	return bill, nil
}
