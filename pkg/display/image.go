package display

import (
	"bytes"
	"fmt"
	"html"
	"strings"
)

// Image formats
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// ImageOptions extends Options with image-specific settings
type ImageOptions struct {
	Options

	// Format is png or jpeg (jpg is accepted). A png, jpg or jpeg extension
	// on Filename or URL overrides it. Defaults to png.
	Format string

	// Embed inlines the image bytes instead of referencing URL from an
	// <img> tag. Forced on when Filename or literal Data is given.
	Embed bool
}

// Image displays PNG or JPEG data, either embedded or by URL reference
type Image struct {
	Object

	Format string
	Embed  bool
}

// NewImage creates an Image. Data is only loaded when the image is embedded.
func NewImage(opts ImageOptions) (*Image, error) {
	format := opts.Format
	if format == "" {
		format = FormatPNG
	}

	var ext string
	switch {
	case opts.Filename != "":
		ext = findExt(opts.Filename)
	case opts.URL != "":
		ext = findExt(opts.URL)
	case bytes.HasPrefix(opts.Data, urlPrefix):
		ext = findExt(string(opts.Data))
	}
	switch ext {
	case "jpg", "jpeg":
		format = FormatJPEG
	case "png":
		format = FormatPNG
	}

	img := &Image{
		Object: newObject("image", opts.Options),
		Format: strings.ToLower(format),
		Embed:  opts.Embed,
	}
	// Local files and literal bytes have no URL to reference lazily. The
	// requested Filename counts even when Data redirected loading to a URL.
	if opts.Filename != "" || img.initial != nil {
		img.Embed = true
	}

	if err := img.load(img.Reload); err != nil {
		return nil, err
	}
	return img, nil
}

// Reload loads the image data, but only for embedded images
func (i *Image) Reload() error {
	if !i.Embed {
		return nil
	}
	return i.Object.Reload()
}

// ReprHTML implements types.HTMLRepr with an <img> tag for referenced images
func (i *Image) ReprHTML() (string, bool) {
	if i.Embed || i.URL == "" {
		return "", false
	}
	return fmt.Sprintf(`<img src="%s" />`, html.EscapeString(i.URL)), true
}

// ReprPNG implements types.PNGRepr
func (i *Image) ReprPNG() ([]byte, bool) {
	if !i.Embed || i.Format != FormatPNG || i.Data == nil {
		return nil, false
	}
	return i.Data, true
}

// ReprJPEG implements types.JPEGRepr
func (i *Image) ReprJPEG() ([]byte, bool) {
	if !i.Embed || (i.Format != FormatJPEG && i.Format != "jpg") || i.Data == nil {
		return nil, false
	}
	return i.Data, true
}

// findExt returns the lower-cased text after the last '.'
func findExt(s string) string {
	return strings.ToLower(s[strings.LastIndex(s, ".")+1:])
}
