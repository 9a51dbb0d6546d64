package publisher

import (
	"fmt"
	"io"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/mime"
)

// Text publishes plain text without styling, for pipes and dumb terminals
type Text struct {
	raw
	output io.Writer
}

// NewText creates a Text publisher
func NewText(output io.Writer) *Text {
	t := &Text{output: output}
	t.raw = raw{publish: t.Publish}
	return t
}

// Publish writes the text/plain representation, or else the first textual
// one. Images are written as a one-line placeholder.
func (t *Text) Publish(source string, data mime.Bundle) error {
	line, ok := plainText(data)
	if !ok {
		return nil
	}
	if _, err := fmt.Fprintln(t.output, line); err != nil {
		return errors.Wrap(err, errors.ErrPublishFailed, "writing text output")
	}
	return nil
}

// ClearOutput is a no-op: written text cannot be taken back
func (t *Text) ClearOutput(stdout, stderr, other bool) error {
	logger := logging.GetLogger("publisher.Text")
	logger.Debug().
		Bool("stdout", stdout).
		Bool("stderr", stderr).
		Bool("other", other).
		Msg("Ignoring clear_output on plain text output")
	return nil
}

func plainText(data mime.Bundle) (string, bool) {
	if text, ok := data.Text(mime.TextPlain); ok {
		return text, true
	}
	for _, mimeType := range data.Types() {
		if mime.IsBinary(mimeType) {
			raw, _ := data.Bytes(mimeType)
			return imagePlaceholder(mimeType, len(raw)), true
		}
		if text, ok := data.Text(mimeType); ok {
			return text, true
		}
	}
	return "", false
}

func imagePlaceholder(mimeType string, size int) string {
	return fmt.Sprintf("[%s: %d bytes]", mimeType, size)
}
