// Package publisher delivers display bundles to a front-end.
//
// Three front-ends are provided: Console renders the richest representation
// with terminal styling, Text writes plain text only, and Stream writes one
// JSON message per publish for a consuming program. All of them implement
// types.Publisher, including the raw per-format entry points.
package publisher

import (
	"fmt"
	"io"
	"os"

	"github.com/sdiehl/ipython/pkg/mime"
	"github.com/sdiehl/ipython/pkg/types"
)

// Options configures the publishers created by New
type Options struct {
	// MarkdownStyle is a glamour style name or path; "auto" detects
	MarkdownStyle string

	// Width wraps rendered markdown; 0 uses the glamour default
	Width int
}

// New creates a publisher for the given format writing to stdout and
// stderr. FormatAuto inspects stdout when it is a file and falls back to
// the terminal front-end otherwise.
func New(format Format, stdout, stderr io.Writer, opts Options) (types.Publisher, error) {
	switch format {
	case FormatAuto:
		if file, ok := stdout.(*os.File); ok {
			return New(DetectFormat(file), stdout, stderr, opts)
		}
		return New(FormatTerminal, stdout, stderr, opts)
	case FormatTerminal:
		return NewConsole(stdout, stderr, ConsoleOptions{
			MarkdownStyle: opts.MarkdownStyle,
			Width:         opts.Width,
		}), nil
	case FormatText:
		return NewText(stdout), nil
	case FormatJSON:
		return NewStream(stdout), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}

// Source tags for the raw entry points
const (
	SourcePretty     = "IPython.core.displaypub.publish_pretty"
	SourceHTML       = "IPython.core.displaypub.publish_html"
	SourceMarkdown   = "IPython.core.displaypub.publish_markdown"
	SourceSVG        = "IPython.core.displaypub.publish_svg"
	SourcePNG        = "IPython.core.displaypub.publish_png"
	SourceJPEG       = "IPython.core.displaypub.publish_jpeg"
	SourceLatex      = "IPython.core.displaypub.publish_latex"
	SourceJSON       = "IPython.core.displaypub.publish_json"
	SourceJavascript = "IPython.core.displaypub.publish_javascript"
)

// raw implements the per-format entry points of types.Publisher on top of
// a Publish function. Publishers embed it.
type raw struct {
	publish func(source string, data mime.Bundle) error
}

func (r raw) PublishPretty(text string) error {
	return r.publish(SourcePretty, mime.Bundle{mime.TextPlain: text})
}

func (r raw) PublishHTML(html string) error {
	return r.publish(SourceHTML, mime.Bundle{mime.TextHTML: html})
}

func (r raw) PublishMarkdown(markdown string) error {
	return r.publish(SourceMarkdown, mime.Bundle{mime.TextMarkdown: markdown})
}

func (r raw) PublishSVG(svg string) error {
	return r.publish(SourceSVG, mime.Bundle{mime.ImageSVG: svg})
}

func (r raw) PublishPNG(png []byte) error {
	return r.publish(SourcePNG, mime.Bundle{mime.ImagePNG: png})
}

func (r raw) PublishJPEG(jpeg []byte) error {
	return r.publish(SourceJPEG, mime.Bundle{mime.ImageJPEG: jpeg})
}

func (r raw) PublishLatex(latex string) error {
	return r.publish(SourceLatex, mime.Bundle{mime.TextLatex: latex})
}

func (r raw) PublishJSON(json string) error {
	return r.publish(SourceJSON, mime.Bundle{mime.ApplicationJSON: json})
}

func (r raw) PublishJavascript(js string) error {
	return r.publish(SourceJavascript, mime.Bundle{mime.ApplicationJS: js})
}
