// Package fetch retrieves display payloads over HTTP.
//
// Bodies are returned as raw bytes unless the response's Content-Type carries
// a charset parameter, in which case they are decoded to UTF-8 with U+FFFD
// substituted for invalid sequences.
package fetch

import (
	"io"
	"net/http"
	"time"

	"github.com/sdiehl/ipython/pkg/errors"
	"github.com/sdiehl/ipython/pkg/logging"
)

// DefaultUserAgent is sent when Options.UserAgent is empty
const DefaultUserAgent = "ipydisplay"

// Options configures an HTTPFetcher
type Options struct {
	// Timeout bounds the whole request. Zero means no timeout.
	Timeout time.Duration

	// UserAgent overrides DefaultUserAgent
	UserAgent string

	// Client replaces the default client; Timeout is ignored when set
	Client *http.Client
}

// HTTPFetcher implements types.Fetcher with a plain GET request
type HTTPFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates an HTTPFetcher
func New(opts Options) *HTTPFetcher {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &HTTPFetcher{
		client:    client,
		userAgent: userAgent,
	}
}

// Fetch downloads url. Every failure, including a non-2xx status, is
// reported as an ErrFetchFailed error.
func (f *HTTPFetcher) Fetch(url string) ([]byte, error) {
	logger := logging.GetLogger("fetch.HTTPFetcher")
	start := time.Now()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "invalid URL %q", url).
			WithDetail("url", url)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "GET %s", url).
			WithDetail("url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Newf(errors.ErrFetchFailed, "GET %s returned %s", url, resp.Status).
			WithDetail("url", url).
			WithDetail("status", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFetchFailed, "reading body of %s", url).
			WithDetail("url", url)
	}

	contentType := resp.Header.Get("Content-Type")
	charset := Charset(contentType)

	logger.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Str("contentType", contentType).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("Fetched")

	if charset == "" {
		return body, nil
	}

	decoded, err := Decode(body, charset)
	if err != nil {
		// An unknown charset leaves the payload as raw bytes
		logger.Warn().Err(err).Str("url", url).Str("charset", charset).Msg("Keeping undecoded body")
		return body, nil
	}
	return decoded, nil
}
