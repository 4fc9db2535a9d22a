package comic

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"xkcdterm/internal/log"
)

const (
	maxPageBytes  = 2 << 20
	maxImageBytes = 10 << 20
	userAgent     = "xkcdterm/1.0"
)

// HTTPSource reads comics from an xkcd-style site: one page per comic at
// <base>/<id>/ and the latest comic at <base>/.
type HTTPSource struct {
	client    *http.Client
	baseURL   string
	randomURL string
	maxWidth  int
}

// NewHTTPSource returns a source for the site at baseURL. randomURL must
// redirect to a random comic page. Images wider than maxWidth pixels are
// scaled down (0 disables scaling).
func NewHTTPSource(baseURL, randomURL string, timeout time.Duration, maxWidth int) *HTTPSource {
	return &HTTPSource{
		client:    newClient(timeout),
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		randomURL: randomURL,
		maxWidth:  maxWidth,
	}
}

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   4,
		},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, id int) (*Comic, error) {
	u := s.baseURL + "/"
	if id > 0 {
		u = fmt.Sprintf("%s/%d/", s.baseURL, id)
	}
	return s.load(ctx, u)
}

// Random follows the random-comic redirect and loads wherever it lands.
func (s *HTTPSource) Random(ctx context.Context) (*Comic, error) {
	return s.load(ctx, s.randomURL)
}

func (s *HTTPSource) load(ctx context.Context, pageURL string) (*Comic, error) {
	start := time.Now()
	body, final, err := s.get(ctx, pageURL, maxPageBytes)
	if err != nil {
		return nil, err
	}
	p, err := parsePage(bytes.NewReader(body), final)
	if err != nil {
		return nil, &FetchError{URL: final.String(), Err: err}
	}
	log.Debug("page %s: id=%d prev=%d next=%d image=%s", final, p.id, p.prevID, p.nextID, p.imageURL)

	data, _, err := s.get(ctx, p.imageURL, maxImageBytes)
	if err != nil {
		return nil, err
	}
	pix, err := Decode(data, s.maxWidth)
	if err != nil {
		return nil, err
	}
	log.Info("loaded comic %d (%dx%d) in %s", p.id, pix.Width, pix.Height, time.Since(start).Round(time.Millisecond))
	return &Comic{
		ID:       p.id,
		Title:    p.title,
		Caption:  p.caption,
		PrevID:   p.prevID,
		NextID:   p.nextID,
		ImageURL: p.imageURL,
		Origin:   final.String(),
		Pixels:   pix,
	}, nil
}

// get returns the body and the final URL after redirects.
func (s *HTTPSource) get(ctx context.Context, rawURL string, limit int64) ([]byte, *url.URL, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("HTTP 404: %w", ErrNoComic)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("HTTP %d", resp.StatusCode)}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("reading response: %w", err)}
	}
	if int64(len(body)) > limit {
		return nil, nil, &FetchError{URL: rawURL, Err: fmt.Errorf("%w: over %d bytes", ErrTooLarge, limit)}
	}
	return body, resp.Request.URL, nil
}
