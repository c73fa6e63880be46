package input

import (
	"context"
	"os"
	"sync"
)

// EnvConfigFile names the environment variable pointing at an optional
// YAML config file for the package-level Input.
const EnvConfigFile = "AOC_CONFIG"

var defaultCache struct {
	mu    sync.Mutex
	cache *Cache
}

// sharedCache builds the process-wide Cache on first success. A failed
// build is not remembered, so fixing the environment takes effect on the
// next call.
func sharedCache() (*Cache, error) {
	defaultCache.mu.Lock()
	defer defaultCache.mu.Unlock()
	if defaultCache.cache != nil {
		return defaultCache.cache, nil
	}

	cfg, err := LoadConfig(os.Getenv(EnvConfigFile))
	if err != nil {
		return nil, err
	}
	c, err := New(cfg)
	if err != nil {
		return nil, err
	}
	defaultCache.cache = c

	return c, nil
}

// Input returns the puzzle input for (year, day) through a process-wide
// Cache configured by LoadConfig(os.Getenv("AOC_CONFIG")) once that
// succeeds.
func Input(ctx context.Context, year, day int) (string, error) {
	c, err := sharedCache()
	if err != nil {
		return "", err
	}

	return c.Input(ctx, year, day)
}
