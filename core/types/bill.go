// Package types - Bill types
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a display label for amounts; no conversion is ever performed
type Currency string

const (
	CurrencyCZK Currency = "CZK"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// Phase identifies which pricing rule produced a segment
type Phase string

const (
	// PhaseInitial is the flat-rate window at the start of every call
	PhaseInitial Phase = "initial"

	// PhaseDiscounted is everything billed after the initial window
	PhaseDiscounted Phase = "discounted"
)

// ChargeSegment is a run of minutes billed at one rate
type ChargeSegment struct {
	// Phase is the pricing rule applied
	Phase Phase `json:"phase"`

	// Zone is the tariff zone the minutes were billed in
	Zone Zone `json:"zone"`

	// Start is the simulated time the segment began
	Start time.Time `json:"start"`

	// Minutes is the number of billed minutes
	Minutes int64 `json:"minutes"`

	// Rate is the per-minute price
	Rate decimal.Decimal `json:"rate"`

	// Amount is Minutes * Rate
	Amount decimal.Decimal `json:"amount"`
}

// CallCharge is the priced form of a single call
type CallCharge struct {
	// Record is the call that was priced
	Record CallRecord `json:"record"`

	// Segments lists the billed runs in chronological order
	Segments []ChargeSegment `json:"segments,omitempty"`

	// Amount is the sum of all segment amounts
	Amount decimal.Decimal `json:"amount"`

	// Free is set when the call was made to the free number and not billed
	Free bool `json:"free,omitempty"`
}

// Add appends a segment and keeps Amount in step
func (c *CallCharge) Add(seg ChargeSegment) {
	c.Segments = append(c.Segments, seg)
	c.Amount = c.Amount.Add(seg.Amount)
}

// Minutes returns the total billed minutes of the call
func (c *CallCharge) Minutes() int64 {
	var n int64
	for _, seg := range c.Segments {
		n += seg.Minutes
	}
	return n
}

// Bill is the result of pricing one call log
type Bill struct {
	// ID identifies the calculation in logs and output
	ID string `json:"id"`

	// Currency labels the amounts
	Currency Currency `json:"currency"`

	// Total is the amount due
	Total decimal.Decimal `json:"total"`

	// FreeNumber is the number excluded from billing, if any
	FreeNumber string `json:"free_number,omitempty"`

	// HasFreeNumber is false when the log had no valid records
	HasFreeNumber bool `json:"has_free_number"`

	// Calls holds one entry per valid record, in log order
	Calls []CallCharge `json:"calls,omitempty"`

	// DroppedRecords counts records discarded because they ended before they started
	DroppedRecords int `json:"dropped_records"`

	// ExcludedCalls counts calls made to the free number
	ExcludedCalls int `json:"excluded_calls"`
}

// NewBill creates an empty bill
func NewBill(id string, currency Currency) *Bill {
	return &Bill{
		ID:       id,
		Currency: currency,
		Total:    decimal.Zero,
	}
}

// AddCall records a priced call and updates the total unless the call is free
func (b *Bill) AddCall(charge CallCharge) {
	b.Calls = append(b.Calls, charge)
	if charge.Free {
		b.ExcludedCalls++
		return
	}
	b.Total = b.Total.Add(charge.Amount)
}
