package display

// Pretty displays its data as plain text
type Pretty struct{ Object }

// NewPretty creates a Pretty object and loads its data
func NewPretty(opts Options) (*Pretty, error) {
	p := &Pretty{Object: newObject("pretty", opts)}
	if err := p.load(p.Reload); err != nil {
		return nil, err
	}
	return p, nil
}

// ReprPretty implements types.PrettyRepr
func (p *Pretty) ReprPretty() (string, bool) { return p.text() }

// HTML displays its data as text/html
type HTML struct{ Object }

// NewHTML creates an HTML object and loads its data
func NewHTML(opts Options) (*HTML, error) {
	h := &HTML{Object: newObject("html", opts)}
	if err := h.load(h.Reload); err != nil {
		return nil, err
	}
	return h, nil
}

// ReprHTML implements types.HTMLRepr
func (h *HTML) ReprHTML() (string, bool) { return h.text() }

// Markdown displays its data as text/markdown
type Markdown struct{ Object }

// NewMarkdown creates a Markdown object and loads its data
func NewMarkdown(opts Options) (*Markdown, error) {
	m := &Markdown{Object: newObject("markdown", opts)}
	if err := m.load(m.Reload); err != nil {
		return nil, err
	}
	return m, nil
}

// ReprMarkdown implements types.MarkdownRepr
func (m *Markdown) ReprMarkdown() (string, bool) { return m.text() }

// Math displays its data as text/latex
type Math struct{ Object }

// NewMath creates a Math object and loads its data
func NewMath(opts Options) (*Math, error) {
	m := &Math{Object: newObject("math", opts)}
	if err := m.load(m.Reload); err != nil {
		return nil, err
	}
	return m, nil
}

// ReprLatex implements types.LatexRepr
func (m *Math) ReprLatex() (string, bool) { return m.text() }

// JSON displays its data as application/json. The payload is passed through
// as-is; it is not validated.
type JSON struct{ Object }

// NewJSON creates a JSON object and loads its data
func NewJSON(opts Options) (*JSON, error) {
	j := &JSON{Object: newObject("json", opts)}
	if err := j.load(j.Reload); err != nil {
		return nil, err
	}
	return j, nil
}

// ReprJSON implements types.JSONRepr
func (j *JSON) ReprJSON() (string, bool) { return j.text() }

// Javascript displays its data as application/javascript
type Javascript struct{ Object }

// NewJavascript creates a Javascript object and loads its data
func NewJavascript(opts Options) (*Javascript, error) {
	j := &Javascript{Object: newObject("javascript", opts)}
	if err := j.load(j.Reload); err != nil {
		return nil, err
	}
	return j, nil
}

// ReprJavascript implements types.JavascriptRepr
func (j *Javascript) ReprJavascript() (string, bool) { return j.text() }
