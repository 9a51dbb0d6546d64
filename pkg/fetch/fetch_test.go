package fetch

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharset(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		want        string
	}{
		{"no header", "", ""},
		{"no charset", "image/png", ""},
		{"simple", "text/html; charset=utf-8", "utf-8"},
		{"no space", "text/html;charset=ISO-8859-1", "ISO-8859-1"},
		{"quoted", `text/plain; charset="latin1"`, "latin1"},
		{"uppercase param", "text/plain; Charset=utf-8", "utf-8"},
		{"first wins", "text/plain; charset=utf-8; charset=latin1", "utf-8"},
		{"other params", "text/plain; format=flowed; charset=koi8-r", "koi8-r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Charset(tt.contentType))
		})
	}
}

func TestDecode(t *testing.T) {
	t.Run("latin1 to utf8", func(t *testing.T) {
		got, err := Decode([]byte{'c', 'a', 'f', 0xE9}, "iso-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "café", string(got))
	})

	t.Run("latin1 keeps C1 controls", func(t *testing.T) {
		got, err := Decode([]byte{0x80, 0xE9}, "iso-8859-1")
		require.NoError(t, err)
		assert.Equal(t, "\u0080é", string(got))
	})

	t.Run("windows-1252 maps C1 range", func(t *testing.T) {
		got, err := Decode([]byte{0x80, 0xE9}, "windows-1252")
		require.NoError(t, err)
		assert.Equal(t, "€é", string(got))
	})

	t.Run("invalid utf8 is replaced", func(t *testing.T) {
		got, err := Decode([]byte{'a', 0xFF, 'b'}, "utf-8")
		require.NoError(t, err)
		assert.Equal(t, "a�b", string(got))
	})

	t.Run("unknown charset", func(t *testing.T) {
		_, err := Decode([]byte("x"), "no-such-charset")
		assert.Error(t, err)
	})
}

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/latin1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		_, _ = w.Write([]byte{'<', 'p', '>', 0xE9, '<', '/', 'p', '>'})
	})
	mux.HandleFunc("/raw", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G', 0xFF})
	})
	mux.HandleFunc("/bogus-charset", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=bogus")
		_, _ = w.Write([]byte{0xFF})
	})
	mux.HandleFunc("/agent", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(r.UserAgent()))
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	t.Run("decodes declared charset", func(t *testing.T) {
		got, err := New(Options{}).Fetch(server.URL + "/latin1")
		require.NoError(t, err)
		assert.Equal(t, "<p>é</p>", string(got))
	})

	t.Run("keeps raw bytes without charset", func(t *testing.T) {
		got, err := New(Options{}).Fetch(server.URL + "/raw")
		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', 0xFF}, got)
	})

	t.Run("keeps raw bytes for unknown charset", func(t *testing.T) {
		got, err := New(Options{}).Fetch(server.URL + "/bogus-charset")
		require.NoError(t, err)
		assert.Equal(t, []byte{0xFF}, got)
	})

	t.Run("sends user agent", func(t *testing.T) {
		got, err := New(Options{UserAgent: "tester/1.0"}).Fetch(server.URL + "/agent")
		require.NoError(t, err)
		assert.Equal(t, "tester/1.0", string(got))

		got, err = New(Options{}).Fetch(server.URL + "/agent")
		require.NoError(t, err)
		assert.Equal(t, DefaultUserAgent, string(got))
	})

	t.Run("http error status", func(t *testing.T) {
		_, err := New(Options{}).Fetch(server.URL + "/missing")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFetchFailed))
		assert.Equal(t, http.StatusNotFound, errors.GetErrorDetails(err)["status"])
	})

	t.Run("timeout", func(t *testing.T) {
		_, err := New(Options{Timeout: 20 * time.Millisecond}).Fetch(server.URL + "/slow")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFetchFailed))
	})

	t.Run("invalid url", func(t *testing.T) {
		_, err := New(Options{}).Fetch("http://[::1")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFetchFailed))
	})

	t.Run("connection refused", func(t *testing.T) {
		closed := httptest.NewServer(http.NotFoundHandler())
		url := closed.URL
		closed.Close()

		_, err := New(Options{}).Fetch(url)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrFetchFailed))
	})
}
