package display

import (
	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/logging"
	"github.com/sdiehl/ipython/pkg/mime"
	"github.com/sdiehl/ipython/pkg/types"
)

// SourceDisplay tags bundles published by Display. Front-ends match on it.
const SourceDisplay = "IPython.core.display.display"

// Filter restricts the MIME types computed for an object. A nil Include
// computes every type; Exclude drops types from the result. How both
// interact is up to the Formatter.
type Filter struct {
	Include mime.Set
	Exclude mime.Set
}

// ClearOptions selects which outputs ClearOutput removes
type ClearOptions struct {
	Stdout bool
	Stderr bool
	Other  bool
}

// DefaultClearOptions clears everything
func DefaultClearOptions() ClearOptions {
	return ClearOptions{Stdout: true, Stderr: true, Other: true}
}

// Displayer sends objects to a front-end through the given Formatter and
// Publisher.
type Displayer struct {
	formatter types.Formatter
	publisher types.Publisher
}

// New creates a Displayer
func New(formatter types.Formatter, publisher types.Publisher) *Displayer {
	return &Displayer{
		formatter: formatter,
		publisher: publisher,
	}
}

// Display publishes every representation of each object, one publish per
// object in argument order.
func (d *Displayer) Display(objs ...interface{}) error {
	return d.DisplayFiltered(Filter{}, objs...)
}

// DisplayFiltered is Display restricted by filter. Errors from the Formatter
// or Publisher are returned unchanged and stop the remaining objects.
func (d *Displayer) DisplayFiltered(filter Filter, objs ...interface{}) error {
	logger := logging.GetLogger("display.Displayer")

	for i, obj := range objs {
		bundle, err := d.formatter.Format(obj, filter.Include, filter.Exclude)
		if err != nil {
			logger.Debug().Err(err).Int("index", i).Msg("Formatter failed")
			return err
		}
		if err := d.publisher.Publish(SourceDisplay, bundle); err != nil {
			logger.Debug().Err(err).Int("index", i).Msg("Publisher failed")
			return err
		}
		logger.Trace().
			Int("index", i).
			Strs("types", bundle.Types()).
			Msg("Displayed object")
	}
	return nil
}

// ClearOutput clears the output area of the front-end
func (d *Displayer) ClearOutput(opts ClearOptions) error {
	return d.publisher.ClearOutput(opts.Stdout, opts.Stderr, opts.Other)
}

// displayAs is shared by the Display<Format> wrappers: raw objects go
// straight to publishRaw, others through the Formatter limited to
// text/plain and mimeType.
func (d *Displayer) displayAs(mimeType string, raw bool, objs []interface{}, publishRaw func(obj interface{}) error) error {
	if !raw {
		return d.DisplayFiltered(Filter{Include: mime.NewSet(mime.TextPlain, mimeType)}, objs...)
	}
	for _, obj := range objs {
		if err := publishRaw(obj); err != nil {
			return err
		}
	}
	return nil
}

func rawText(mimeType string, obj interface{}) (string, error) {
	switch v := obj.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "raw %s data must be a string or []byte, got %T", mimeType, obj)
	}
}

func rawBytes(mimeType string, obj interface{}) ([]byte, error) {
	switch v := obj.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "raw %s data must be []byte or a string, got %T", mimeType, obj)
	}
}
