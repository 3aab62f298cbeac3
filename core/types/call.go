// Package types holds the value types shared by the billing packages.
package types

import "time"

// Zone is a tariff zone, determined by time of day only
type Zone int

const (
	// ZoneNormal covers [08:00:00, 16:00:00)
	ZoneNormal Zone = iota

	// ZoneCheaper covers the rest of the day
	ZoneCheaper
)

// String returns the string representation
func (z Zone) String() string {
	switch z {
	case ZoneNormal:
		return "normal"
	case ZoneCheaper:
		return "cheaper"
	default:
		return "unknown"
	}
}

// MarshalText renders the zone name in JSON output
func (z Zone) MarshalText() ([]byte, error) {
	return []byte(z.String()), nil
}

// CallRecord is one line of the call log
type CallRecord struct {
	// Number is the dialed phone number
	Number string `json:"number"`

	// Start is when the call began
	Start time.Time `json:"start"`

	// End is when the call ended
	End time.Time `json:"end"`
}

// Valid reports whether the call does not end before it starts
func (r CallRecord) Valid() bool {
	return !r.Start.After(r.End)
}

// Duration returns the wall-clock length of the call
func (r CallRecord) Duration() time.Duration {
	return r.End.Sub(r.Start)
}
