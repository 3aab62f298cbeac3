package tariff

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"telephone-bill/core/types"
)

func at(day, hour, min, sec int) time.Time {
	return time.Date(2023, time.January, day, hour, min, sec, 0, time.UTC)
}

func TestZoneOf(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want types.Zone
	}{
		{"midnight", at(1, 0, 0, 0), types.ZoneCheaper},
		{"just before normal", at(1, 7, 59, 59), types.ZoneCheaper},
		{"normal starts", at(1, 8, 0, 0), types.ZoneNormal},
		{"midday", at(1, 12, 30, 0), types.ZoneNormal},
		{"just before cheaper", at(1, 15, 59, 59), types.ZoneNormal},
		{"cheaper starts", at(1, 16, 0, 0), types.ZoneCheaper},
		{"late evening", at(1, 23, 59, 59), types.ZoneCheaper},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ZoneOf(tt.t))
		})
	}
}

func TestZoneOfIgnoresDate(t *testing.T) {
	a := time.Date(1999, time.July, 4, 9, 0, 0, 0, time.UTC)
	b := time.Date(2031, time.February, 28, 9, 0, 0, 0, time.UTC)
	assert.Equal(t, ZoneOf(a), ZoneOf(b))
}

func TestNextZoneBoundary(t *testing.T) {
	tests := []struct {
		name   string
		t      time.Time
		target types.Zone
		want   time.Time
	}{
		{"cheaper later today", at(1, 8, 5, 0), types.ZoneCheaper, at(1, 16, 0, 0)},
		{"cheaper exactly now", at(1, 16, 0, 0), types.ZoneCheaper, at(1, 16, 0, 0)},
		{"cheaper rolls over", at(1, 16, 1, 0), types.ZoneCheaper, at(2, 16, 0, 0)},
		{"normal later today", at(1, 7, 0, 0), types.ZoneNormal, at(1, 8, 0, 0)},
		{"normal exactly now", at(1, 8, 0, 0), types.ZoneNormal, at(1, 8, 0, 0)},
		{"normal rolls over", at(1, 16, 1, 0), types.ZoneNormal, at(2, 8, 0, 0)},
		{"normal rolls over by a second", at(1, 8, 0, 1), types.ZoneNormal, at(2, 8, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextZoneBoundary(tt.t, tt.target))
		})
	}
}

func TestNextChange(t *testing.T) {
	assert.Equal(t, at(1, 16, 0, 0), NextChange(at(1, 8, 0, 0)))
	assert.Equal(t, at(2, 8, 0, 0), NextChange(at(1, 16, 0, 0)))
	assert.Equal(t, at(1, 8, 0, 0), NextChange(at(1, 3, 0, 0)))
}

func TestRates(t *testing.T) {
	assert.True(t, decimal.NewFromInt(1).Equal(PerMinute(types.ZoneNormal, types.PhaseInitial)))
	assert.True(t, decimal.RequireFromString("0.8").Equal(PerMinute(types.ZoneNormal, types.PhaseDiscounted)))
	assert.True(t, decimal.RequireFromString("0.5").Equal(PerMinute(types.ZoneCheaper, types.PhaseInitial)))
	assert.True(t, decimal.RequireFromString("0.3").Equal(PerMinute(types.ZoneCheaper, types.PhaseDiscounted)))
}
