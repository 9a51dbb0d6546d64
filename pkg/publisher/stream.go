package publisher

import (
	"encoding/json"
	"io"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/mime"
)

// Message types written by Stream
const (
	MessageDisplayData = "display_data"
	MessageClearOutput = "clear_output"
)

// DisplayDataMessage is written for every publish. Byte representations
// are base64-encoded by encoding/json.
type DisplayDataMessage struct {
	Type   string      `json:"type"`
	Source string      `json:"source"`
	Data   mime.Bundle `json:"data"`
}

// ClearOutputMessage is written for every ClearOutput call
type ClearOutputMessage struct {
	Type   string `json:"type"`
	Stdout bool   `json:"stdout"`
	Stderr bool   `json:"stderr"`
	Other  bool   `json:"other"`
}

// Stream publishes JSON lines for machine consumption
type Stream struct {
	raw
	encoder *json.Encoder
}

// NewStream creates a Stream writing to output
func NewStream(output io.Writer) *Stream {
	s := &Stream{encoder: json.NewEncoder(output)}
	s.raw = raw{publish: s.Publish}
	return s
}

// Publish writes a display_data message
func (s *Stream) Publish(source string, data mime.Bundle) error {
	if data == nil {
		data = mime.Bundle{}
	}
	msg := DisplayDataMessage{
		Type:   MessageDisplayData,
		Source: source,
		Data:   data,
	}
	if err := s.encoder.Encode(msg); err != nil {
		return errors.Wrap(err, errors.ErrPublishFailed, "writing display_data message")
	}
	return nil
}

// ClearOutput writes a clear_output message
func (s *Stream) ClearOutput(stdout, stderr, other bool) error {
	msg := ClearOutputMessage{
		Type:   MessageClearOutput,
		Stdout: stdout,
		Stderr: stderr,
		Other:  other,
	}
	if err := s.encoder.Encode(msg); err != nil {
		return errors.Wrap(err, errors.ErrPublishFailed, "writing clear_output message")
	}
	return nil
}
