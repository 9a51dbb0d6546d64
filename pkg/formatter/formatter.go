// Package formatter computes MIME bundles for arbitrary values.
//
// A value gains a MIME type by implementing the matching capability
// interface from pkg/types (HTMLRepr for text/html, PNGRepr for image/png
// and so on). text/plain is always available: it comes from ReprPretty when
// implemented, else from fmt.Stringer, else from a go-spew dump of
// composite values.
package formatter

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/mime"
	"github.com/sdiehl/ipython/pkg/types"
)

// Formatter implements types.Formatter over the capability interfaces
type Formatter struct {
	dump *spew.ConfigState
}

// New creates a Formatter
func New() *Formatter {
	return &Formatter{
		dump: &spew.ConfigState{
			Indent:                  "  ",
			DisablePointerAddresses: true,
			DisableCapacities:       true,
			SortKeys:                true,
		},
	}
}

// Format computes the representations of obj. With a non-nil include only
// the listed types are computed; exclude then removes types. A
// representation method that panics fails the whole call with
// ErrFormatFailed.
func (f *Formatter) Format(obj interface{}, include, exclude mime.Set) (mime.Bundle, error) {
	logger := logging.GetLogger("formatter.Formatter")

	bundle := mime.Bundle{}
	for _, mimeType := range mime.All {
		if include != nil && !include.Contains(mimeType) {
			continue
		}
		if exclude.Contains(mimeType) {
			continue
		}

		value, ok, err := f.compute(mimeType, obj)
		if err != nil {
			return nil, err
		}
		if ok {
			bundle[mimeType] = value
		}
	}

	logger.Trace().
		Str("type", fmt.Sprintf("%T", obj)).
		Strs("types", bundle.Types()).
		Msg("Formatted object")
	return bundle, nil
}

func (f *Formatter) compute(mimeType string, obj interface{}) (value interface{}, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			value, ok = nil, false
			err = errors.Newf(errors.ErrFormatFailed, "%s representation of %T panicked: %v", mimeType, obj, r).
				WithDetail("mime", mimeType)
		}
	}()

	switch mimeType {
	case mime.TextPlain:
		return f.plain(obj), true, nil
	case mime.TextHTML:
		if r, is := obj.(types.HTMLRepr); is {
			value, ok = r.ReprHTML()
		}
	case mime.TextMarkdown:
		if r, is := obj.(types.MarkdownRepr); is {
			value, ok = r.ReprMarkdown()
		}
	case mime.TextLatex:
		if r, is := obj.(types.LatexRepr); is {
			value, ok = r.ReprLatex()
		}
	case mime.ImageSVG:
		if r, is := obj.(types.SVGRepr); is {
			value, ok = r.ReprSVG()
		}
	case mime.ImagePNG:
		if r, is := obj.(types.PNGRepr); is {
			value, ok = r.ReprPNG()
		}
	case mime.ImageJPEG:
		if r, is := obj.(types.JPEGRepr); is {
			value, ok = r.ReprJPEG()
		}
	case mime.ApplicationJSON:
		if r, is := obj.(types.JSONRepr); is {
			value, ok = r.ReprJSON()
		}
	case mime.ApplicationJS:
		if r, is := obj.(types.JavascriptRepr); is {
			value, ok = r.ReprJavascript()
		}
	}
	return value, ok, nil
}

// plain renders the text/plain representation
func (f *Formatter) plain(obj interface{}) string {
	if r, is := obj.(types.PrettyRepr); is {
		if text, ok := r.ReprPretty(); ok {
			return text
		}
	}
	if s, is := obj.(fmt.Stringer); is {
		return s.String()
	}
	if isRichObject(obj) {
		return fmt.Sprintf("<%T object>", obj)
	}

	switch v := obj.(type) {
	case nil:
		return "<nil>"
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("%q", v)
	}

	switch reflect.ValueOf(obj).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Ptr, reflect.Interface:
		return strings.TrimRight(f.dump.Sdump(obj), "\n")
	default:
		return fmt.Sprintf("%v", obj)
	}
}

// isRichObject reports whether obj implements any representation interface
func isRichObject(obj interface{}) bool {
	switch obj.(type) {
	case types.PrettyRepr, types.HTMLRepr, types.MarkdownRepr, types.LatexRepr, types.SVGRepr,
		types.PNGRepr, types.JPEGRepr, types.JSONRepr, types.JavascriptRepr:
		return true
	}
	return false
}
