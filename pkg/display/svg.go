package display

import (
	"bytes"

	"github.com/beevik/etree"
	"github.com/sdiehl/ipython/pkg/errors"
)

// SVG displays its data as image/svg+xml.
//
// Whatever is stored is first reduced to the first <svg> element of the
// document, dropping XML declarations and wrapper markup. Input without an
// <svg> element is kept unchanged.
type SVG struct{ Object }

// NewSVG creates an SVG object and loads its data. Input that is not
// well-formed XML is an ErrSVGParse error.
func NewSVG(opts Options) (*SVG, error) {
	s := &SVG{Object: newObject("svg", opts)}
	s.assign = s.store
	if err := s.load(s.Reload); err != nil {
		return nil, err
	}
	return s, nil
}

// ReprSVG implements types.SVGRepr
func (s *SVG) ReprSVG() (string, bool) { return s.text() }

func (s *SVG) store(data []byte) error {
	if data == nil {
		s.Data = nil
		return nil
	}
	normalized, err := extractSVG(data)
	if err != nil {
		return err
	}
	s.Data = normalized
	return nil
}

// extractSVG returns the serialized first <svg> element of data, or data
// itself when there is none.
func extractSVG(data []byte) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrSVGParse, "parsing SVG")
	}
	switch roots := len(doc.ChildElements()); {
	case roots == 0:
		return nil, errors.New(errors.ErrSVGParse, "parsing SVG: no root element")
	case roots > 1:
		return nil, errors.New(errors.ErrSVGParse, "parsing SVG: junk after document element")
	}

	found := findSVG(&doc.Element)
	if found == nil {
		return data, nil
	}

	out := etree.NewDocument()
	out.SetRoot(found.Copy())
	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "serializing SVG")
	}
	return buf.Bytes(), nil
}

// findSVG searches depth-first in document order for an unprefixed <svg>
func findSVG(parent *etree.Element) *etree.Element {
	for _, child := range parent.ChildElements() {
		if child.Space == "" && child.Tag == "svg" {
			return child
		}
		if found := findSVG(child); found != nil {
			return found
		}
	}
	return nil
}
