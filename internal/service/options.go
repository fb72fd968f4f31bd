package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSignedURLExpiry is the longest lifetime S3 SigV4 allows for a presigned URL.
const DefaultSignedURLExpiry = 7 * 24 * time.Hour

// ProofPrefix is the object key prefix for uploaded proof images.
const ProofPrefix = "proofs"

type options struct {
	now             func() time.Time
	logger          zerolog.Logger
	signedURLExpiry time.Duration
	filterMode      FilterMode
}

// Option customizes a service.
type Option func(*options)

// WithClock replaces time.Now as the source of timestamps and object key prefixes.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithLogger sets the service logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSignedURLExpiry sets how long proof image URLs remain valid.
func WithSignedURLExpiry(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.signedURLExpiry = d
		}
	}
}

// WithFilterMode sets how year, month and date filters combine.
func WithFilterMode(m FilterMode) Option {
	return func(o *options) { o.filterMode = m }
}

// loggerFor prefers the request-scoped logger carried by ctx so entries keep
// the request_id; it falls back to the configured service logger.
func (o options) loggerFor(ctx context.Context) *zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &o.logger
}

func buildOptions(opts []Option) options {
	o := options{
		now:             time.Now,
		logger:          zerolog.Nop(),
		signedURLExpiry: DefaultSignedURLExpiry,
		filterMode:      FilterAny,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
