package fetch

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// Charset extracts the charset parameter from a Content-Type header value.
// It is lenient: any parameter starting with "charset" is taken, and the
// text after its last '=' is the name. Returns "" when none is present.
func Charset(contentType string) string {
	for _, part := range strings.Split(contentType, ";") {
		part = strings.TrimSpace(part)
		if !strings.HasPrefix(strings.ToLower(part), "charset") {
			continue
		}
		name := part[strings.LastIndex(part, "=")+1:]
		return strings.Trim(strings.TrimSpace(name), `"'`)
	}
	return ""
}

// Decode converts body from the named charset to UTF-8. Invalid sequences
// become U+FFFD; an unknown charset name is an error.
//
// IANA names are resolved first, so iso-8859-1 is true Latin-1 rather than
// the windows-1252 superset the WHATWG index maps it to. Names only the
// WHATWG index knows fall back to it.
func Decode(body []byte, charset string) ([]byte, error) {
	enc, err := lookup(charset)
	if err != nil {
		return nil, fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", charset, err)
	}
	return decoded, nil
}

func lookup(charset string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(charset); err == nil && enc != nil {
		return enc, nil
	}
	return htmlindex.Get(charset)
}
