package types

import (
	"io/fs"

	"github.com/sdiehl/ipython/pkg/mime"
)

// Formatter computes the representations of an arbitrary value.
//
// A nil include set means every known type is computed; a nil exclude set
// drops nothing. Types the value cannot represent are left out of the bundle.
type Formatter interface {
	Format(obj interface{}, include, exclude mime.Set) (mime.Bundle, error)
}

// Publisher delivers representations to the active front-end.
type Publisher interface {
	// Publish sends a bundle tagged with the source that produced it
	Publish(source string, data mime.Bundle) error

	// Raw entry points publish already-rendered content of one type
	PublishPretty(text string) error
	PublishHTML(html string) error
	PublishMarkdown(markdown string) error
	PublishSVG(svg string) error
	PublishPNG(png []byte) error
	PublishJPEG(jpeg []byte) error
	PublishLatex(latex string) error
	PublishJSON(json string) error
	PublishJavascript(js string) error

	// ClearOutput clears the output area. Each flag selects one kind of
	// output: stream text on stdout, on stderr, and everything else.
	ClearOutput(stdout, stderr, other bool) error
}

// FS is the read-only filesystem used to load display data from local files
type FS interface {
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
}

// Fetcher retrieves the payload behind a URL. Implementations return the
// body decoded to UTF-8 when the response declares a charset.
type Fetcher interface {
	Fetch(url string) ([]byte, error)
}
