package source

import (
	"errors"
	"net/http"

	"github.com/uts-harness/runconfig/framework"
)

type openOptions struct {
	logger     framework.Logger
	httpClient *http.Client
	consulKV   ConsulKV
	redis      RedisGetter
	dynamoDB   DynamoDBItemGetter
}

// Option customizes Open. Options are applied in order; the first that fails stops Open.
type Option interface {
	// Configure makes whatever configuration change the option represents.
	Configure(*openOptions) error
}

type optionFunc func(*openOptions) error

func (f optionFunc) Configure(o *openOptions) error { return f(o) }

func applyOptions(target *openOptions, options ...Option) error {
	for _, o := range options {
		if err := o.Configure(target); err != nil {
			return err
		}
	}
	return nil
}

// WithLogger sets a logger for debug output from the source.
func WithLogger(logger framework.Logger) Option {
	return optionFunc(func(o *openOptions) error {
		o.logger = logger
		return nil
	})
}

// WithHTTPClient sets the client used for http and https locations. The default is
// http.DefaultClient.
func WithHTTPClient(client *http.Client) Option {
	return optionFunc(func(o *openOptions) error {
		if client == nil {
			return errors.New("HTTP client must not be nil")
		}
		o.httpClient = client
		return nil
	})
}

// WithConsulClient sets the Consul KV client used for consul locations, instead of one built from the
// host in the location.
func WithConsulClient(kv ConsulKV) Option {
	return optionFunc(func(o *openOptions) error {
		o.consulKV = kv
		return nil
	})
}

// WithRedisClient sets the Redis client used for redis locations, instead of one built from the
// host in the location.
func WithRedisClient(client RedisGetter) Option {
	return optionFunc(func(o *openOptions) error {
		o.redis = client
		return nil
	})
}

// WithDynamoDBClient sets the DynamoDB client used for dynamodb locations, instead of one built
// from the default AWS session.
func WithDynamoDBClient(client DynamoDBItemGetter) Option {
	return optionFunc(func(o *openOptions) error {
		o.dynamoDB = client
		return nil
	})
}
