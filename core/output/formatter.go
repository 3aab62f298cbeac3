// Package output renders bills for humans and machines.
package output

import (
	"fmt"
	"io"

	"telephone-bill/core/types"
	"telephone-bill/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable boxed table
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formats lists every supported format
var Formats = []Format{FormatCLI, FormatJSON}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render writes bill to w
	Render(w io.Writer, bill *types.Bill) error
}

// Options tune rendering
type Options struct {
	// ShowDetails lists every call with its segments
	ShowDetails bool
}

// NewFormatter returns the formatter for format
func NewFormatter(format Format, opts Options) (Formatter, error) {
	switch format {
	case FormatCLI:
		return &cliFormatter{opts: opts}, nil
	case FormatJSON:
		return &jsonFormatter{opts: opts}, nil
	default:
		return nil, errors.Input(fmt.Sprintf("unknown output format %q", format), nil)
	}
}
