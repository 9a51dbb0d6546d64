package display_test

import (
	"testing"

	"github.com/sdiehl/ipython/pkg/display"
	"github.com/sdiehl/ipython/pkg/filesystem"
	"github.com/sdiehl/ipython/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func TestImage_FormatInference(t *testing.T) {
	mem := afero.NewMemMapFs()
	for _, name := range []string{"/img/photo.JPG", "/img/chart.png", "/img/pic.jpeg", "/img/scan.gif"} {
		require.NoError(t, afero.WriteFile(mem, name, pngBytes, 0644))
	}
	fs := filesystem.NewAferoFS(mem)

	tests := []struct {
		name       string
		opts       display.ImageOptions
		wantFormat string
	}{
		{
			name:       "jpg extension overrides caller format",
			opts:       display.ImageOptions{Options: display.Options{Filename: "/img/photo.JPG", FS: fs}, Format: "png"},
			wantFormat: display.FormatJPEG,
		},
		{
			name:       "png extension overrides caller format",
			opts:       display.ImageOptions{Options: display.Options{Filename: "/img/chart.png", FS: fs}, Format: "jpeg"},
			wantFormat: display.FormatPNG,
		},
		{
			name:       "jpeg extension",
			opts:       display.ImageOptions{Options: display.Options{Filename: "/img/pic.jpeg", FS: fs}},
			wantFormat: display.FormatJPEG,
		},
		{
			name:       "unknown extension keeps caller format",
			opts:       display.ImageOptions{Options: display.Options{Filename: "/img/scan.gif", FS: fs}, Format: "JPEG"},
			wantFormat: "jpeg",
		},
		{
			name:       "url extension",
			opts:       display.ImageOptions{Options: display.Options{URL: "http://example.com/a/b.Jpg"}},
			wantFormat: display.FormatJPEG,
		},
		{
			name:       "url given as data",
			opts:       display.ImageOptions{Options: display.Options{Data: []byte("https://example.com/x.jpeg")}, Format: "png"},
			wantFormat: display.FormatJPEG,
		},
		{
			name:       "default format",
			opts:       display.ImageOptions{Options: display.Options{Data: pngBytes}},
			wantFormat: display.FormatPNG,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := display.NewImage(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormat, img.Format)
		})
	}
}

func TestImage_FilenameForcesEmbed(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "photo.JPG", pngBytes, 0644))

	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{Filename: "photo.JPG", FS: filesystem.NewAferoFS(mem)},
		Format:  "png",
		Embed:   false,
	})
	require.NoError(t, err)

	assert.Equal(t, display.FormatJPEG, img.Format)
	assert.True(t, img.Embed)
	assert.Equal(t, pngBytes, img.Data)

	jpeg, ok := img.ReprJPEG()
	assert.True(t, ok)
	assert.Equal(t, pngBytes, jpeg)

	_, ok = img.ReprPNG()
	assert.False(t, ok)
	_, ok = img.ReprHTML()
	assert.False(t, ok)
}

func TestImage_FilenameForcesEmbedWhenDataIsURL(t *testing.T) {
	fetcher := &testutil.MockFetcher{}
	fetcher.On("Fetch", "http://example.com/x.png").Return(pngBytes, nil)

	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{
			Data:     []byte("http://example.com/x.png"),
			Filename: "photo.JPG",
			Fetcher:  fetcher,
		},
	})
	require.NoError(t, err)

	assert.True(t, img.Embed)
	assert.Equal(t, display.FormatJPEG, img.Format)
	assert.Empty(t, img.Filename)
	assert.Equal(t, "http://example.com/x.png", img.URL)
	assert.Equal(t, pngBytes, img.Data)
	fetcher.AssertExpectations(t)

	_, ok := img.ReprHTML()
	assert.False(t, ok)
}

func TestImage_URLReferenceIsNotFetched(t *testing.T) {
	fetcher := &testutil.MockFetcher{}

	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{URL: "http://example.com/plots/chart.png", Fetcher: fetcher},
	})
	require.NoError(t, err)

	assert.False(t, img.Embed)
	assert.Nil(t, img.Data)
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything)

	html, ok := img.ReprHTML()
	assert.True(t, ok)
	assert.Equal(t, `<img src="http://example.com/plots/chart.png" />`, html)

	_, ok = img.ReprPNG()
	assert.False(t, ok)

	require.NoError(t, img.Reload())
	fetcher.AssertNotCalled(t, "Fetch", mock.Anything)
}

func TestImage_EmbeddedURLIsFetched(t *testing.T) {
	fetcher := &testutil.MockFetcher{}
	fetcher.On("Fetch", "http://example.com/chart.png").Return(pngBytes, nil)

	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{URL: "http://example.com/chart.png", Fetcher: fetcher},
		Embed:   true,
	})
	require.NoError(t, err)

	png, ok := img.ReprPNG()
	assert.True(t, ok)
	assert.Equal(t, pngBytes, png)

	_, ok = img.ReprHTML()
	assert.False(t, ok)
	fetcher.AssertExpectations(t)
}

func TestImage_HTMLEscapesURL(t *testing.T) {
	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{URL: `http://example.com/a.png?x=1&y="2"`},
	})
	require.NoError(t, err)

	html, ok := img.ReprHTML()
	assert.True(t, ok)
	assert.Equal(t, `<img src="http://example.com/a.png?x=1&amp;y=&#34;2&#34;" />`, html)
}

func TestImage_LiteralDataIsEmbedded(t *testing.T) {
	img, err := display.NewImage(display.ImageOptions{
		Options: display.Options{Data: pngBytes},
		Format:  "jpg",
	})
	require.NoError(t, err)

	assert.True(t, img.Embed)
	assert.Equal(t, "jpg", img.Format)

	jpeg, ok := img.ReprJPEG()
	assert.True(t, ok)
	assert.Equal(t, pngBytes, jpeg)
}
