package output

import (
	"encoding/json"
	"io"

	"telephone-bill/core/types"
)

type jsonFormatter struct {
	opts Options
}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

// Render writes the bill as indented JSON. Amounts are decimal strings.
func (f *jsonFormatter) Render(w io.Writer, bill *types.Bill) error {
	out := *bill
	if !f.opts.ShowDetails {
		out.Calls = nil
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(&out)
}
