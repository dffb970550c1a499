package source

import (
	"context"
	"fmt"
	"net/url"

	consul "github.com/hashicorp/consul/api"

	"github.com/uts-harness/runconfig/framework"
)

// ConsulKV is the part of the Consul KV API that a consul source uses. *consul.KV implements it.
type ConsulKV interface {
	Get(key string, q *consul.QueryOptions) (*consul.KVPair, *consul.QueryMeta, error)
}

type consulSource struct {
	location string
	key      string
	kv       ConsulKV
	logger   framework.Logger
}

func newConsulSource(u *url.URL, opts openOptions) (*consulSource, error) {
	key, err := keyFromPath(u)
	if err != nil {
		return nil, err
	}
	kv := opts.consulKV
	if kv == nil {
		config := consul.DefaultConfig()
		if u.Host != "" {
			config.Address = u.Host
		}
		if token := u.Query().Get("token"); token != "" {
			config.Token = token
		}
		client, err := consul.NewClient(config)
		if err != nil {
			return nil, fmt.Errorf("failed to create Consul client: %w", err)
		}
		kv = client.KV()
	}
	return &consulSource{location: redactLocation(u), key: key, kv: kv, logger: opts.logger}, nil
}

func (s *consulSource) Location() string { return s.location }

func (s *consulSource) Read(ctx context.Context) ([]byte, error) {
	s.logger.Printf("reading Consul key %q", s.key)
	pair, _, err := s.kv.Get(s.key, (&consul.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("Consul get of %q failed: %w", s.key, err)
	}
	if pair == nil {
		return nil, fmt.Errorf("%w: no Consul key %q", ErrNotFound, s.key)
	}
	return pair.Value, nil
}
