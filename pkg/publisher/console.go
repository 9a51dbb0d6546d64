package publisher

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/mime"
)

// consolePreference is the order in which Console picks the one
// representation it renders. text/plain is used only when nothing else is
// present.
var consolePreference = []string{
	mime.TextMarkdown,
	mime.ApplicationJSON,
	mime.TextLatex,
	mime.TextHTML,
	mime.ImageSVG,
	mime.ApplicationJS,
	mime.ImagePNG,
	mime.ImageJPEG,
}

// ConsoleOptions configures a Console
type ConsoleOptions struct {
	// MarkdownStyle is a glamour style name ("dark", "light", "notty") or a
	// path to a style file. Empty or "auto" detects from the terminal.
	MarkdownStyle string

	// Width wraps rendered markdown; 0 uses the glamour default
	Width int

	// NoColor strips all styling
	NoColor bool
}

// Console renders bundles for an interactive terminal
type Console struct {
	raw

	stdout io.Writer
	stderr io.Writer
	opts   ConsoleOptions

	labelStyle lipgloss.Style
	imageStyle lipgloss.Style
}

// NewConsole creates a Console writing display output to stdout. Clearing
// stderr text writes to stderr.
func NewConsole(stdout, stderr io.Writer, opts ConsoleOptions) *Console {
	renderer := lipgloss.NewRenderer(stdout)
	if opts.NoColor {
		renderer.SetColorProfile(termenv.Ascii)
	}

	c := &Console{
		stdout:     stdout,
		stderr:     stderr,
		opts:       opts,
		labelStyle: renderer.NewStyle().Foreground(lipgloss.Color("240")).Italic(true),
		imageStyle: renderer.NewStyle().Foreground(lipgloss.Color("6")),
	}
	c.raw = raw{publish: c.Publish}
	return c
}

// Publish renders the preferred representation of data
func (c *Console) Publish(source string, data mime.Bundle) error {
	logger := logging.GetLogger("publisher.Console")

	out, ok := c.render(data)
	if !ok {
		logger.Debug().Str("source", source).Msg("Nothing to render")
		return nil
	}
	logger.Trace().Str("source", source).Strs("types", data.Types()).Msg("Rendering bundle")

	if _, err := fmt.Fprintln(c.stdout, out); err != nil {
		return errors.Wrap(err, errors.ErrPublishFailed, "writing console output")
	}
	return nil
}

// ClearOutput erases the current line of stdout and stderr, and the screen
// for other output.
func (c *Console) ClearOutput(stdout, stderr, other bool) error {
	if stdout {
		clearLine(termenv.NewOutput(c.stdout))
	}
	if stderr {
		clearLine(termenv.NewOutput(c.stderr))
	}
	if other {
		termenv.NewOutput(c.stdout).ClearScreen()
	}
	return nil
}

func clearLine(out *termenv.Output) {
	out.ClearLine()
	_, _ = io.WriteString(out, "\r")
}

func (c *Console) render(data mime.Bundle) (string, bool) {
	for _, mimeType := range consolePreference {
		if _, present := data[mimeType]; !present {
			continue
		}
		if mime.IsBinary(mimeType) {
			raw, _ := data.Bytes(mimeType)
			return c.imageStyle.Render(imagePlaceholder(mimeType, len(raw))), true
		}
		text, ok := data.Text(mimeType)
		if !ok {
			continue
		}
		return c.label(mimeType) + "\n" + c.renderText(mimeType, text), true
	}

	return data.Text(mime.TextPlain)
}

func (c *Console) label(mimeType string) string {
	return c.labelStyle.Render("[" + mimeType + "]")
}

func (c *Console) renderText(mimeType, text string) string {
	switch mimeType {
	case mime.TextMarkdown:
		return c.renderMarkdown(text)
	case mime.ApplicationJSON:
		var buf bytes.Buffer
		if err := json.Indent(&buf, []byte(text), "", "  "); err != nil {
			return text
		}
		return buf.String()
	default:
		return text
	}
}

// renderMarkdown renders through glamour, falling back to the source text
func (c *Console) renderMarkdown(text string) string {
	var options []glamour.TermRendererOption

	style := c.opts.MarkdownStyle
	if c.opts.NoColor {
		style = "notty"
	}
	if style != "" && style != "auto" {
		options = append(options, glamour.WithStylePath(style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if c.opts.Width > 0 {
		options = append(options, glamour.WithWordWrap(c.opts.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(rendered, "\n")
}
