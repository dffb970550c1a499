package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/uts-harness/runconfig/framework"
)

type httpSource struct {
	url      string
	location string
	client   *http.Client
	logger   framework.Logger
}

func newHTTPSource(u *url.URL, opts openOptions) *httpSource {
	client := opts.httpClient
	if client == nil {
		client = http.DefaultClient
	}
	return &httpSource{url: u.String(), location: redactLocation(u), client: client, logger: opts.logger}
}

func (s *httpSource) Location() string { return s.location }

func (s *httpSource) Read(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")
	s.logger.Printf("GET %s", s.location)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", s.location, redactURLError(err))
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", s.location, err)
	}
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s returned status 404", ErrNotFound, s.location)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, fmt.Errorf("%s returned unexpected status %d", s.location, resp.StatusCode)
	}
	return body, nil
}

// redactURLError drops the URL from a client error, since it may hold credentials and the caller
// already names the location.
func redactURLError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
