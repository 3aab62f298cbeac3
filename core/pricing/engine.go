// Package pricing prices a single call against the tariff.
//
// A call is billed minute by minute. The first tariff.InitialWindowMinutes
// minutes are charged at the flat rate of the zone each minute starts in;
// every started minute counts in full. The rest of the call is charged at
// the discounted rate in batches, one batch per zone the call passes
// through. After each batch the simulated clock moves one minute past the
// batch, so the minute at a zone change is never billed.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"telephone-bill/core/tariff"
	"telephone-bill/core/types"
)

// PriceCall returns the charge for one call
func PriceCall(record types.CallRecord) decimal.Decimal {
	return Quote(record).Amount
}

// Quote prices one call and returns the segments the amount is made of
func Quote(record types.CallRecord) types.CallCharge {
	charge := types.CallCharge{Record: record, Amount: decimal.Zero}
	now, end := record.Start, record.End

	for billed := 0; billed < tariff.InitialWindowMinutes && now.Before(end); billed++ {
		addMinutes(&charge, types.PhaseInitial, tariff.ZoneOf(now), now, 1)
		now = now.Add(time.Minute)
	}

	for now.Before(end) {
		limit := tariff.NextChange(now)
		if limit.After(end) {
			limit = end
		}
		batch := wholeMinutes(now, limit)
		addMinutes(&charge, types.PhaseDiscounted, tariff.ZoneOf(now), now, batch)
		now = now.Add(time.Duration(batch+1) * time.Minute)
	}

	return charge
}

// addMinutes bills minutes at the phase rate of zone, extending the last
// segment when it has the same phase and zone.
func addMinutes(charge *types.CallCharge, phase types.Phase, zone types.Zone, start time.Time, minutes int64) {
	if minutes <= 0 {
		return
	}
	rate := tariff.PerMinute(zone, phase)
	amount := rate.Mul(decimal.NewFromInt(minutes))

	if n := len(charge.Segments); n > 0 {
		last := &charge.Segments[n-1]
		if last.Phase == phase && last.Zone == zone {
			last.Minutes += minutes
			last.Amount = last.Amount.Add(amount)
			charge.Amount = charge.Amount.Add(amount)
			return
		}
	}

	charge.Add(types.ChargeSegment{
		Phase:   phase,
		Zone:    zone,
		Start:   start,
		Minutes: minutes,
		Rate:    rate,
		Amount:  amount,
	})
}

// wholeMinutes counts the complete minutes between from and to
func wholeMinutes(from, to time.Time) int64 {
	return int64(to.Sub(from) / time.Minute)
}
