package freenumber

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"telephone-bill/core/types"
)

func calls(numbers ...string) []types.CallRecord {
	start := time.Date(2023, time.January, 1, 10, 0, 0, 0, time.UTC)
	records := make([]types.CallRecord, 0, len(numbers))
	for _, n := range numbers {
		records = append(records, types.CallRecord{Number: n, Start: start, End: start.Add(time.Minute)})
	}
	return records
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		records []types.CallRecord
		want    string
		wantOK  bool
	}{
		{"empty", nil, "", false},
		{"single record", calls("420774577453"), "420774577453", true},
		{"most frequent wins", calls("111", "999", "111"), "111", true},
		{"frequency beats digit sum", calls("100", "999", "100", "999", "100"), "100", true},
		{"digit sum breaks tie", calls("000000000000", "999999999999"), "999999999999", true},
		{"digit sum 9 vs 45", calls("123456789", "900000000"), "123456789", true},
		{"only max count candidates compete", calls("999", "111", "111", "222", "222"), "222", true},
		{"full tie goes to smallest number", calls("81", "18", "90", "09"), "09", true},
		{"all zero digit sums still resolve", calls("000", "0000"), "000", true},
		{"non digits are skipped", calls("+420-1", "4201", "+420-1", "4201"), "+420-1", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Resolve(tt.records)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	records := calls("5", "14", "23", "32", "41", "50")
	for i := 0; i < 50; i++ {
		got, ok := Resolve(records)
		assert.True(t, ok)
		assert.Equal(t, "14", got)
	}
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 0, DigitSum(""))
	assert.Equal(t, 0, DigitSum("000000000000"))
	assert.Equal(t, 108, DigitSum("999999999999"))
	assert.Equal(t, 45, DigitSum("123456789"))
	assert.Equal(t, 7, DigitSum("+420 (1)"))
}
