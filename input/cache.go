// SPDX-License-Identifier: MIT

package input

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"
)

// Valid puzzle coordinates.
const (
	FirstYear = 2015
	FirstDay  = 1
	LastDay   = 25
)

// Cache serves puzzle inputs from disk and fetches missing ones once.
// A Cache is safe for concurrent use.
type Cache struct {
	cfg     Config
	fs      afero.Fs
	client  Doer
	creds   CredentialSource
	limiter *rate.Limiter
	logger  *zap.Logger
	metrics *metrics

	flights singleflight.Group // keyed "<year>/<day>"
}

// New validates cfg and returns a Cache wired with the given options.
func New(cfg Config, opts ...Option) (*Cache, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := gatherOptions(cfg, opts)

	return &Cache{
		cfg:     cfg,
		fs:      o.fs,
		client:  o.client,
		creds:   o.creds,
		limiter: o.limiter,
		logger:  o.logger,
		metrics: newMetrics(o.registerer),
	}, nil
}

// Config returns the configuration the cache was built with.
func (c *Cache) Config() Config { return c.cfg }

// Path returns where the input for (year, day) is stored.
func (c *Cache) Path(year, day int) string { return c.cfg.Path(year, day) }

// Input returns the puzzle input for (year, day).
//
// A readable cached file is returned without network traffic. Otherwise the
// input is fetched, stored atomically and returned; concurrent callers for
// the same key share a single request. Once Input has succeeded for a key,
// later calls return the same text.
//
// Cancelling ctx makes this call return ctx.Err() but does not abort a
// fetch other callers may be waiting on; that fetch's request is bounded by
// Config.Timeout and either stores the complete body or nothing.
func (c *Cache) Input(ctx context.Context, year, day int) (string, error) {
	text, err := c.input(ctx, year, day)
	if err != nil {
		c.metrics.fetchErrors.WithLabelValues(errorKind(err)).Inc()
		c.logger.Warn("puzzle input unavailable",
			zap.Int("year", year), zap.Int("day", day), zap.Error(err))
		return "", err
	}

	return text, nil
}

func (c *Cache) input(ctx context.Context, year, day int) (string, error) {
	if year < FirstYear || day < FirstDay || day > LastDay {
		return "", fmt.Errorf("%w: year=%d day=%d (want year >= %d, day in %d..%d)",
			ErrInvalidArgument, year, day, FirstYear, FirstDay, LastDay)
	}
	path := c.Path(year, day)
	if text, ok := c.load(path); ok {
		c.metrics.hits.Inc()
		c.logger.Debug("puzzle input cache hit", zap.String("path", path))
		return text, nil
	}
	c.metrics.misses.Inc()

	key := strconv.Itoa(year) + "/" + strconv.Itoa(day)
	ch := c.flights.DoChan(key, func() (any, error) {
		return c.fetchAndStore(context.WithoutCancel(ctx), year, day, path)
	})
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// fetchAndStore runs once per in-flight key: Missing -> Fetching -> Present,
// or back to Missing on error.
func (c *Cache) fetchAndStore(ctx context.Context, year, day int, path string) (string, error) {
	// A flight that finished between our miss and this one already stored it.
	if text, ok := c.load(path); ok {
		return text, nil
	}
	log := c.logger.With(zap.Int("year", year), zap.Int("day", day))
	log.Debug("fetching puzzle input", zap.String("url", c.cfg.URL(year, day)))
	body, err := c.fetch(ctx, year, day)
	if err != nil {
		return "", err
	}
	if err := c.store(path, body); err != nil {
		return "", err
	}
	log.Debug("stored puzzle input", zap.String("path", path), zap.Int("bytes", len(body)))

	return string(body), nil
}
