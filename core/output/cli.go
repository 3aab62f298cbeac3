package output

import (
	"fmt"
	"io"
	"strings"

	"telephone-bill/core/calllog"
	"telephone-bill/core/types"
)

const boxWidth = 73

type cliFormatter struct {
	opts Options
}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, bill *types.Bill) error {
	p := &boxPrinter{w: w}

	p.rule("┌", "┐")
	p.centered("TELEPHONE BILL")
	p.rule("├", "┤")

	if f.opts.ShowDetails {
		for _, call := range bill.Calls {
			label := fmt.Sprintf("%s  %s", call.Record.Number, call.Record.Start.Format(calllog.TimestampLayout))
			amount := call.Amount.StringFixed(2)
			if call.Free {
				amount = "free"
			}
			p.row(label, amount)
			for _, seg := range call.Segments {
				p.row(fmt.Sprintf("  └─ %s %s %d min × %s", seg.Phase, seg.Zone, seg.Minutes, seg.Rate.String()),
					seg.Amount.StringFixed(2))
			}
		}
		p.rule("├", "┤")
	}

	freeNumber := "none"
	if bill.HasFreeNumber {
		freeNumber = bill.FreeNumber
	}
	p.row("Free number", freeNumber)
	p.row("Excluded calls", fmt.Sprintf("%d", bill.ExcludedCalls))
	p.row("Dropped records", fmt.Sprintf("%d", bill.DroppedRecords))
	p.rule("├", "┤")
	p.row("TOTAL", fmt.Sprintf("%s %s", bill.Total.StringFixed(2), bill.Currency))
	p.rule("└", "┘")

	return p.err
}

// boxPrinter draws the table and keeps the first write error
type boxPrinter struct {
	w   io.Writer
	err error
}

func (p *boxPrinter) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *boxPrinter) rule(left, right string) {
	p.printf("%s%s%s\n", left, strings.Repeat("─", boxWidth), right)
}

func (p *boxPrinter) centered(title string) {
	pad := (boxWidth - len(title)) / 2
	p.printf("│%s%s%s│\n", strings.Repeat(" ", pad), title, strings.Repeat(" ", boxWidth-pad-len(title)))
}

func (p *boxPrinter) row(label, value string) {
	p.printf("│ %-50s %20s │\n", truncate(label, 50), value)
}

func truncate(s string, maxLen int) string {
	if len([]rune(s)) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}
