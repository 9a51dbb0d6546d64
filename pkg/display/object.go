package display

import (
	"bytes"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/fetch"
	"github.com/sdiehl/ipython/pkg/filesystem"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/types"
)

// urlPrefix marks Data that is really a URL to download from
var urlPrefix = []byte("http")

// Options describes where a display object gets its data from.
// Filename takes precedence over URL when both are set.
type Options struct {
	// Data is the raw payload, or a URL when it starts with "http"
	Data []byte

	// URL to download the data from
	URL string

	// Filename of a local file to load the data from
	Filename string

	// FS reads Filename; defaults to the OS filesystem
	FS types.FS

	// Fetcher downloads URL; defaults to a plain HTTP fetcher
	Fetcher types.Fetcher
}

// Object wraps data to be displayed. Data is nil when no payload is available.
type Object struct {
	Data     []byte
	URL      string
	Filename string

	kind    string
	fs      types.FS
	fetcher types.Fetcher

	// assign stores new data; subtypes install it to normalize their payload
	assign func(data []byte) error

	// initial is the constructor-supplied payload, applied by load
	initial []byte
}

func newObject(kind string, opts Options) Object {
	o := Object{
		kind:    kind,
		fs:      opts.FS,
		fetcher: opts.Fetcher,
	}
	if o.fs == nil {
		o.fs = filesystem.NewOS()
	}
	if o.fetcher == nil {
		o.fetcher = fetch.New(fetch.Options{})
	}

	if bytes.HasPrefix(opts.Data, urlPrefix) {
		o.URL = string(opts.Data)
	} else {
		o.initial = opts.Data
		o.URL = opts.URL
		o.Filename = opts.Filename
	}
	return o
}

// load applies the constructor payload and then runs reload
func (o *Object) load(reload func() error) error {
	if o.initial != nil {
		if err := o.SetData(o.initial); err != nil {
			return err
		}
		o.initial = nil
	}
	return reload()
}

// SetData replaces the payload, applying any normalization of the subtype
func (o *Object) SetData(data []byte) error {
	if o.assign != nil {
		return o.assign(data)
	}
	o.Data = data
	return nil
}

// Reload re-reads the data from Filename, or else downloads it from URL.
// With neither set it leaves Data untouched.
//
// A failed download clears Data and returns an ErrFetchFailed error.
func (o *Object) Reload() error {
	logger := logging.GetLogger("display.Object")

	switch {
	case o.Filename != "":
		data, err := o.fs.ReadFile(o.Filename)
		if err != nil {
			return filesystem.ReadError(err, o.Filename)
		}
		logger.Debug().
			Str("kind", o.kind).
			Str("filename", o.Filename).
			Int("bytes", len(data)).
			Msg("Loaded display data from file")
		return o.SetData(data)

	case o.URL != "":
		data, err := o.fetcher.Fetch(o.URL)
		if err != nil {
			o.Data = nil
			logger.Warn().Err(err).Str("kind", o.kind).Str("url", o.URL).Msg("Fetch failed")
			if errors.IsErrorCode(err, errors.ErrFetchFailed) {
				return err
			}
			return errors.Wrapf(err, errors.ErrFetchFailed, "fetching %s", o.URL).WithDetail("url", o.URL)
		}
		logger.Debug().
			Str("kind", o.kind).
			Str("url", o.URL).
			Int("bytes", len(data)).
			Msg("Loaded display data from URL")
		return o.SetData(data)
	}

	return nil
}

// text returns the payload as a string representation
func (o *Object) text() (string, bool) {
	if o.Data == nil {
		return "", false
	}
	return string(o.Data), true
}
