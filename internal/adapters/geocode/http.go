package geocode

import (
	"city-distance-service/internal/domain"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

// httpClient is the transport shared by the HTTP-backed providers.
// It is safe for concurrent use.
type httpClient struct {
	session *http.Client
	header  http.Header
}

func newHTTPClient(timeout time.Duration, header http.Header) *httpClient {
	if header == nil {
		header = http.Header{}
	}
	return &httpClient{
		session: &http.Client{Timeout: timeout},
		header:  header,
	}
}

func (c *httpClient) newRequest(
	ctx context.Context,
	endpoint string,
	query url.Values,
) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.URL.RawQuery = query.Encode()
	req.Header.Set("Accept", "application/json")
	for k, vs := range c.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	return req, nil
}

// getJSON issues a single GET and decodes the JSON body into out.
// Every failure is reported as domain.ErrUpstream; there is no retry.
func (c *httpClient) getJSON(
	ctx context.Context,
	endpoint string,
	query url.Values,
	out any,
) error {
	req, err := c.newRequest(ctx, endpoint, query)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstream, err)
	}

	resp, err := c.session.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("%w: %w", domain.ErrUpstream, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", domain.ErrUpstream, err)
	}

	return nil
}

// checkPlace rejects blank input; callers validate first, so this only
// guards direct use of an adapter.
func checkPlace(placeName string) (string, error) {
	norm := domain.NormalizePlace(placeName)
	if norm == "" {
		return "", fmt.Errorf("%w: place name must be non-empty", domain.ErrValidation)
	}
	return norm, nil
}

// checkCoordinates turns out-of-range provider output into an upstream failure.
func checkCoordinates(placeName string, c domain.Coordinates) (domain.Coordinates, error) {
	if err := c.Validate(); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: invalid coordinates for %q: %w", domain.ErrUpstream, placeName, err)
	}
	return c, nil
}
