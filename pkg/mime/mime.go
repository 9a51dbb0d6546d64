// Package mime defines the MIME type keys used for display representations
// and the Bundle that maps each key to its rendered value.
package mime

// Representation MIME types understood by formatters and publishers.
const (
	TextPlain       = "text/plain"
	TextHTML        = "text/html"
	TextMarkdown    = "text/markdown"
	TextLatex       = "text/latex"
	ImageSVG        = "image/svg+xml"
	ImagePNG        = "image/png"
	ImageJPEG       = "image/jpeg"
	ApplicationJSON = "application/json"
	ApplicationJS   = "application/javascript"
)

// All lists every known MIME type in the order formatters compute them.
var All = []string{
	TextPlain,
	TextHTML,
	TextMarkdown,
	ImageSVG,
	ImagePNG,
	ImageJPEG,
	TextLatex,
	ApplicationJSON,
	ApplicationJS,
}

// Bundle maps a MIME type to its representation. Textual representations are
// strings, image representations are byte slices.
type Bundle map[string]interface{}

// Types returns the MIME types present in the bundle, in the order of All
// followed by any unknown keys.
func (b Bundle) Types() []string {
	var types []string
	seen := make(map[string]bool, len(b))
	for _, t := range All {
		if _, ok := b[t]; ok {
			types = append(types, t)
			seen[t] = true
		}
	}
	for t := range b {
		if !seen[t] {
			types = append(types, t)
		}
	}
	return types
}

// Text returns the representation for the given type as a string.
func (b Bundle) Text(mimeType string) (string, bool) {
	v, ok := b[mimeType]
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case []byte:
		return string(t), true
	default:
		return "", false
	}
}

// Bytes returns the representation for the given type as raw bytes.
func (b Bundle) Bytes(mimeType string) ([]byte, bool) {
	v, ok := b[mimeType]
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []byte:
		return t, true
	case string:
		return []byte(t), true
	default:
		return nil, false
	}
}

// IsBinary reports whether representations of the given type are raw bytes.
func IsBinary(mimeType string) bool {
	return mimeType == ImagePNG || mimeType == ImageJPEG
}
