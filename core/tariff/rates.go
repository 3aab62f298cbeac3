package tariff

import (
	"github.com/shopspring/decimal"

	"telephone-bill/core/types"
)

// InitialWindowMinutes is how many minutes of every call are billed at the flat rate
const InitialWindowMinutes = 5

// Rate is the per-minute price pair of one zone
type Rate struct {
	// Flat applies inside the initial window
	Flat decimal.Decimal

	// Discounted applies after the initial window
	Discounted decimal.Decimal
}

var (
	normalRate = Rate{
		Flat:       decimal.NewFromInt(1),
		Discounted: decimal.RequireFromString("0.8"),
	}
	cheaperRate = Rate{
		Flat:       decimal.RequireFromString("0.5"),
		Discounted: decimal.RequireFromString("0.3"),
	}
)

// RateFor returns the rates of zone z
func RateFor(z types.Zone) Rate {
	if z == types.ZoneNormal {
		return normalRate
	}
	return cheaperRate
}

// PerMinute returns the rate for the given phase in zone z
func PerMinute(z types.Zone, phase types.Phase) decimal.Decimal {
	r := RateFor(z)
	if phase == types.PhaseInitial {
		return r.Flat
	}
	return r.Discounted
}
