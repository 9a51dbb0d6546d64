package types

// Each interface below unlocks one MIME type for a value. The boolean result
// reports whether a representation exists; false means the value has nothing
// to offer in that format right now.

// PrettyRepr provides text/plain
type PrettyRepr interface {
	ReprPretty() (string, bool)
}

// HTMLRepr provides text/html
type HTMLRepr interface {
	ReprHTML() (string, bool)
}

// MarkdownRepr provides text/markdown
type MarkdownRepr interface {
	ReprMarkdown() (string, bool)
}

// LatexRepr provides text/latex
type LatexRepr interface {
	ReprLatex() (string, bool)
}

// SVGRepr provides image/svg+xml
type SVGRepr interface {
	ReprSVG() (string, bool)
}

// JSONRepr provides application/json
type JSONRepr interface {
	ReprJSON() (string, bool)
}

// JavascriptRepr provides application/javascript
type JavascriptRepr interface {
	ReprJavascript() (string, bool)
}

// PNGRepr provides image/png
type PNGRepr interface {
	ReprPNG() ([]byte, bool)
}

// JPEGRepr provides image/jpeg
type JPEGRepr interface {
	ReprJPEG() ([]byte, bool)
}
