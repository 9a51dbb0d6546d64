package publisher

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects the front-end a publisher renders for
type Format int

const (
	FormatAuto     Format = iota // terminal when stdout is a color tty, else text
	FormatTerminal               // Console
	FormatText                   // Text
	FormatJSON                   // Stream
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTerminal:
		return "term"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat accepts the --output values; "terminal" and "plain" are
// aliases.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "term", "terminal":
		return FormatTerminal, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, fmt.Errorf("unknown format: %s", s)
	}
}

// DetectFormat resolves FormatAuto for output
func DetectFormat(output *os.File) Format {
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}

	// Pipes and redirects get plain text
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}

	// Probe output itself, not os.Stdout
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}

	return FormatTerminal
}
