// Package calllog turns the textual call log into call records.
//
// Each non-blank line holds three comma separated fields:
//
//	<number>,<dd-MM-yyyy HH:mm:ss>,<dd-MM-yyyy HH:mm:ss>
//
// Any malformed line fails the whole log.
package calllog

import (
	"regexp"
	"strings"
	"time"

	"telephone-bill/core/types"
	"telephone-bill/internal/errors"
)

// TimestampLayout is the Go layout of dd-MM-yyyy HH:mm:ss
const TimestampLayout = "02-01-2006 15:04:05"

const fieldCount = 3

var lineBreak = regexp.MustCompile(`\r?\n`)

// Parse reads every record of text. Timestamps are read as UTC.
func Parse(text string) ([]types.CallRecord, error) {
	lines := lineBreak.Split(text, -1)
	records := make([]types.CallRecord, 0, len(lines))

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		record, err := parseLine(line)
		if err != nil {
			return nil, err.WithContext("line", i+1)
		}
		records = append(records, record)
	}

	return records, nil
}

func parseLine(line string) (types.CallRecord, *errors.Error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return types.CallRecord{}, errors.Newf(errors.TypeParsing,
			"expected %d fields, got %d in %q", fieldCount, len(fields), line)
	}

	number := strings.TrimSpace(fields[0])
	if number == "" {
		return types.CallRecord{}, errors.Newf(errors.TypeParsing, "empty phone number in %q", line)
	}

	start, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(fields[1]), time.UTC)
	if err != nil {
		return types.CallRecord{}, errors.Parsing("invalid start timestamp", err)
	}
	end, err := time.ParseInLocation(TimestampLayout, strings.TrimSpace(fields[2]), time.UTC)
	if err != nil {
		return types.CallRecord{}, errors.Parsing("invalid end timestamp", err)
	}

	return types.CallRecord{Number: number, Start: start, End: end}, nil
}
