// Package tariff classifies instants into tariff zones and holds the fixed rate table.
package tariff

import (
	"time"

	"telephone-bill/core/types"
)

// Zone boundaries as time of day.
const (
	CheaperStartHour = 16
	CheaperEndHour   = 8
)

// ZoneOf returns the zone in force at t. Only the time of day matters.
func ZoneOf(t time.Time) types.Zone {
	h := t.Hour()
	if h >= CheaperEndHour && h < CheaperStartHour {
		return types.ZoneNormal
	}
	return types.ZoneCheaper
}

// NextZoneBoundary returns the first instant at or after t at which target begins.
// If t is already past today's boundary the result is tomorrow's.
func NextZoneBoundary(t time.Time, target types.Zone) time.Time {
	hour := CheaperStartHour
	if target == types.ZoneNormal {
		hour = CheaperEndHour
	}

	boundary := time.Date(t.Year(), t.Month(), t.Day(), hour, 0, 0, 0, t.Location())
	if t.After(boundary) {
		return boundary.AddDate(0, 0, 1)
	}
	return boundary
}

// NextChange returns the instant the zone in force at t next changes.
func NextChange(t time.Time) time.Time {
	if ZoneOf(t) == types.ZoneCheaper {
		return NextZoneBoundary(t, types.ZoneNormal)
	}
	return NextZoneBoundary(t, types.ZoneCheaper)
}
