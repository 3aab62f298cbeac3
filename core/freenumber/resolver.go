// Package freenumber picks the phone number that is excluded from billing.
//
// The free number is the number dialed most often. Ties on frequency go to
// the number with the largest digit sum; ties on both go to the
// lexicographically smallest number.
package freenumber

import (
	"telephone-bill/core/determinism"
	"telephone-bill/core/types"
)

// Resolve returns the free number of records. ok is false when records is empty.
func Resolve(records []types.CallRecord) (number string, ok bool) {
	counts := make(map[string]int, len(records))
	maxCount := 0
	for _, r := range records {
		counts[r.Number]++
		if counts[r.Number] > maxCount {
			maxCount = counts[r.Number]
		}
	}

	bestSum := -1
	determinism.RangeMapSorted(counts, func(candidate string, count int) bool {
		if count != maxCount {
			return true
		}
		// strict comparison keeps the first (smallest) number on a tie
		if sum := DigitSum(candidate); sum > bestSum {
			bestSum = sum
			number = candidate
		}
		return true
	})

	return number, bestSum >= 0
}

// DigitSum adds up the decimal digits of number, skipping any other character.
func DigitSum(number string) int {
	sum := 0
	for _, c := range number {
		if c >= '0' && c <= '9' {
			sum += int(c - '0')
		}
	}
	return sum
}
