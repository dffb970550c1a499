package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/uts-harness/runconfig/framework"
	"github.com/uts-harness/runconfig/runconfig"
)

// ErrNotFound is matched by errors.Is when the location was reachable but held no document.
var ErrNotFound = errors.New("configuration document not found")

// Source is somewhere a configuration document can be read from.
type Source interface {
	// Location returns the location string that the source was opened with, with any password
	// redacted.
	Location() string

	// Read fetches the document.
	Read(ctx context.Context) ([]byte, error)
}

// Open returns a Source for the location. It does not contact any server; that happens on Read.
func Open(location string, options ...Option) (Source, error) {
	var opts openOptions
	if err := applyOptions(&opts, options...); err != nil {
		return nil, err
	}
	opts.logger = framework.OrNull(opts.logger)

	if !strings.Contains(location, "://") {
		return fileSource{path: location}, nil
	}
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration location: %w", redactURLError(err))
	}
	switch u.Scheme {
	case "file":
		return fileSource{path: u.Path}, nil
	case "http", "https":
		return newHTTPSource(u, opts), nil
	case "consul":
		return newConsulSource(u, opts)
	case "redis":
		return newRedisSource(u, opts)
	case "dynamodb":
		return newDynamoDBSource(u, opts)
	default:
		return nil, fmt.Errorf("unsupported configuration location scheme %q", u.Scheme)
	}
}

// Load opens the location, reads it, and loads the document with the given Loader.
func Load(
	ctx context.Context,
	loader runconfig.Loader,
	location string,
	options ...Option,
) (*runconfig.TestRunConfiguration, error) {
	src, err := Open(location, options...)
	if err != nil {
		return nil, err
	}
	data, err := src.Read(ctx)
	if err != nil {
		return nil, err
	}
	c, err := loader.Load(data)
	if err != nil {
		return nil, fmt.Errorf("error loading %q: %w", src.Location(), err)
	}
	framework.OrNull(loader.Logger).Printf("loaded configuration from %q", src.Location())
	return c, nil
}

// redactLocation returns the location with any password or token replaced, for use in logs and
// error messages.
func redactLocation(u *url.URL) string {
	query := u.Query()
	if !query.Has("token") {
		return u.Redacted()
	}
	query.Set("token", "xxxxx")
	redacted := *u
	redacted.RawQuery = query.Encode()
	return redacted.Redacted()
}

// keyFromPath strips the leading slash from a URL path, which is where the key or item name is.
func keyFromPath(u *url.URL) (string, error) {
	key := strings.TrimPrefix(u.Path, "/")
	if key == "" {
		return "", fmt.Errorf("configuration location %q does not name a key", redactLocation(u))
	}
	return key, nil
}
