package display

import (
	"testing"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/filesystem"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10"><circle cx="5" cy="5" r="4"/></svg>`

func TestSVG_ExtractsSVGElement(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "bare element",
			input: circleSVG,
			want:  circleSVG,
		},
		{
			name:  "xml declaration",
			input: `<?xml version="1.0" encoding="UTF-8"?>` + "\n" + circleSVG,
			want:  circleSVG,
		},
		{
			name:  "comment and wrapper",
			input: `<?xml version="1.0"?><!-- exported --><html><body>` + circleSVG + `</body></html>`,
			want:  circleSVG,
		},
		{
			name:  "first of several",
			input: `<doc><svg id="a"><g/></svg><svg id="b"/></doc>`,
			want:  `<svg id="a"><g/></svg>`,
		},
		{
			name:  "depth first document order",
			input: `<doc><p><svg id="deep"/></p><svg id="shallow"/></doc>`,
			want:  `<svg id="deep"/>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSVG(Options{Data: []byte(tt.input)})
			require.NoError(t, err)

			got, ok := s.ReprSVG()
			require.True(t, ok)
			assert.Equal(t, tt.want, got)

			// Normalized output is a fixed point
			again, err := NewSVG(Options{Data: []byte(got)})
			require.NoError(t, err)
			assert.Equal(t, got, string(again.Data))
		})
	}
}

func TestSVG_NoSVGElementKeepsInput(t *testing.T) {
	input := `<?xml version="1.0"?><drawing><line/></drawing>`

	s, err := NewSVG(Options{Data: []byte(input)})
	require.NoError(t, err)
	assert.Equal(t, input, string(s.Data))
}

func TestSVG_PrefixedElementIsNotMatched(t *testing.T) {
	input := `<svg:svg xmlns:svg="http://www.w3.org/2000/svg"><svg:rect/></svg:svg>`

	s, err := NewSVG(Options{Data: []byte(input)})
	require.NoError(t, err)
	assert.Equal(t, input, string(s.Data))
}

func TestSVG_MalformedInput(t *testing.T) {
	inputs := []string{
		"<svg",
		"not xml at all",
		"",
		`<p>hi</p><svg id="x"/>`,
		`<svg/><svg/>`,
	}
	for _, input := range inputs {
		_, err := NewSVG(Options{Data: []byte(input)})
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSVGParse), "input %q", input)
	}
}

func TestSVG_SetDataNormalizes(t *testing.T) {
	s, err := NewSVG(Options{})
	require.NoError(t, err)
	assert.Nil(t, s.Data)

	require.NoError(t, s.SetData([]byte(`<?xml version="1.0"?>`+circleSVG)))
	assert.Equal(t, circleSVG, string(s.Data))

	err = s.SetData([]byte("<svg><g></svg"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrSVGParse))

	require.NoError(t, s.SetData(nil))
	assert.Nil(t, s.Data)
}

func TestSVG_FromFile(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/plots/fig.svg",
		[]byte(`<?xml version="1.0" standalone="no"?>`+"\n"+circleSVG+"\n"), 0644))

	s, err := NewSVG(Options{Filename: "/plots/fig.svg", FS: filesystem.NewAferoFS(mem)})
	require.NoError(t, err)
	assert.Equal(t, circleSVG, string(s.Data))
}

func TestFindSVGReturnsNilWithoutMatch(t *testing.T) {
	got, err := extractSVG([]byte(`<a><b/></a>`))
	require.NoError(t, err)
	assert.Equal(t, `<a><b/></a>`, string(got))
}
