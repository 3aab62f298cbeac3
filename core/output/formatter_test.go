package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telephone-bill/core/types"
)

func sampleBill() *types.Bill {
	start := time.Date(2023, time.January, 1, 8, 0, 0, 0, time.UTC)
	bill := types.NewBill("bill-1", types.CurrencyCZK)
	bill.FreeNumber = "999999999999"
	bill.HasFreeNumber = true

	charge := types.CallCharge{
		Record: types.CallRecord{Number: "000000000000", Start: start, End: start.Add(10 * time.Minute)},
		Amount: decimal.Zero,
	}
	charge.Add(types.ChargeSegment{
		Phase: types.PhaseInitial, Zone: types.ZoneNormal, Start: start, Minutes: 5,
		Rate: decimal.NewFromInt(1), Amount: decimal.NewFromInt(5),
	})
	charge.Add(types.ChargeSegment{
		Phase: types.PhaseDiscounted, Zone: types.ZoneNormal, Start: start.Add(5 * time.Minute), Minutes: 5,
		Rate: decimal.RequireFromString("0.8"), Amount: decimal.RequireFromString("4.0"),
	})
	bill.AddCall(charge)
	bill.AddCall(types.CallCharge{
		Record: types.CallRecord{Number: "999999999999", Start: start, End: start.Add(time.Minute)},
		Amount: decimal.Zero,
		Free:   true,
	})
	return bill
}

func TestNewFormatter(t *testing.T) {
	for _, format := range Formats {
		f, err := NewFormatter(format, Options{})
		require.NoError(t, err)
		assert.Equal(t, format, f.Format())
	}

	_, err := NewFormatter("html", Options{})
	assert.Error(t, err)
}

func TestCLIRender(t *testing.T) {
	f, err := NewFormatter(FormatCLI, Options{ShowDetails: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleBill()))

	out := buf.String()
	assert.Contains(t, out, "TELEPHONE BILL")
	assert.Contains(t, out, "000000000000  01-01-2023 08:00:00")
	assert.Contains(t, out, "discounted normal 5 min × 0.8")
	assert.Contains(t, out, "free")
	assert.Contains(t, out, "9.00 CZK")
}

func TestCLIRenderSummaryOnly(t *testing.T) {
	f, err := NewFormatter(FormatCLI, Options{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleBill()))

	assert.NotContains(t, buf.String(), "000000000000")
	assert.Contains(t, buf.String(), "999999999999")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestCLIRenderReportsWriteError(t *testing.T) {
	f, err := NewFormatter(FormatCLI, Options{})
	require.NoError(t, err)
	assert.EqualError(t, f.Render(failingWriter{}, sampleBill()), "disk full")
}

func TestJSONRender(t *testing.T) {
	f, err := NewFormatter(FormatJSON, Options{ShowDetails: true})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, sampleBill()))

	var decoded struct {
		ID         string `json:"id"`
		Total      string `json:"total"`
		FreeNumber string `json:"free_number"`
		Calls      []struct {
			Free     bool `json:"free"`
			Segments []struct {
				Zone  string `json:"zone"`
				Phase string `json:"phase"`
			} `json:"segments"`
		} `json:"calls"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "bill-1", decoded.ID)
	assert.Equal(t, "9", decoded.Total)
	assert.Equal(t, "999999999999", decoded.FreeNumber)
	require.Len(t, decoded.Calls, 2)
	assert.Equal(t, "normal", decoded.Calls[0].Segments[0].Zone)
	assert.Equal(t, "initial", decoded.Calls[0].Segments[0].Phase)
	assert.True(t, decoded.Calls[1].Free)
}

func TestJSONRenderWithoutDetailsOmitsCalls(t *testing.T) {
	f, err := NewFormatter(FormatJSON, Options{})
	require.NoError(t, err)

	bill := sampleBill()
	var buf bytes.Buffer
	require.NoError(t, f.Render(&buf, bill))

	assert.NotContains(t, buf.String(), `"calls"`)
	assert.Len(t, bill.Calls, 2)
}
