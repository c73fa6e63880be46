// SPDX-License-Identifier: MIT

package input

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// Defaults (single source of truth for DefaultConfig).
const (
	DefaultDataRoot       = "data"
	DefaultCredentialFile = ".env"
	DefaultUserAgent      = "github.com/katalvlaran/advent"
	DefaultEndpoint       = "https://adventofcode.com/{year}/day/{day}/input"
	DefaultRateLimit      = 0.0 // requests per second; 0 leaves fetches unthrottled
	DefaultBurst          = 1
	DefaultTimeout        = 30 * time.Second

	// EnvPrefix prefixes every environment override, e.g. AOC_DATA_ROOT.
	EnvPrefix = "AOC_"
	// CookieKey names the credential entry, both in the environment and in
	// the credential file.
	CookieKey = "AOC_COOKIE"
)

// Config describes where inputs live and how to reach the remote service.
type Config struct {
	// DataRoot is the directory holding <year>/day<day>.txt files.
	DataRoot string `koanf:"data_root"`
	// CredentialFile is a KEY=VALUE file with an AOC_COOKIE entry.
	CredentialFile string `koanf:"credential_file"`
	// Cookie, when set, is used verbatim and CredentialFile is not read.
	Cookie string `koanf:"cookie"`
	// UserAgent identifies this client to the remote service.
	UserAgent string `koanf:"user_agent"`
	// Endpoint is a URL template with {year} and {day} placeholders.
	Endpoint string `koanf:"endpoint"`
	// RateLimit caps remote requests per second; <= 0 disables throttling.
	RateLimit float64 `koanf:"rate_limit"`
	// Burst is the number of requests allowed back to back.
	Burst int `koanf:"burst"`
	// Timeout bounds one request and its body, starting after any throttle
	// wait; 0 means none.
	Timeout time.Duration `koanf:"timeout"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		DataRoot:       DefaultDataRoot,
		CredentialFile: DefaultCredentialFile,
		UserAgent:      DefaultUserAgent,
		Endpoint:       DefaultEndpoint,
		RateLimit:      DefaultRateLimit,
		Burst:          DefaultBurst,
		Timeout:        DefaultTimeout,
	}
}

// LoadConfig builds a Config with the following precedence (highest first):
//  1. AOC_* environment variables (AOC_DATA_ROOT -> data_root, ...)
//  2. the YAML file at path, when path is non-empty
//  3. DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	k := koanf.New(".")

	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	// AOC_DATA_ROOT -> data_root, AOC_COOKIE -> cookie
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("load environment: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first setting that cannot work, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.DataRoot == "":
		return fmt.Errorf("%w: data_root is empty", ErrInvalidConfig)
	case !strings.Contains(c.Endpoint, "{year}") || !strings.Contains(c.Endpoint, "{day}"):
		return fmt.Errorf("%w: endpoint %q needs {year} and {day}", ErrInvalidConfig, c.Endpoint)
	case c.Burst < 1:
		return fmt.Errorf("%w: burst must be >= 1, got %d", ErrInvalidConfig, c.Burst)
	case c.Timeout < 0:
		return fmt.Errorf("%w: timeout must be >= 0, got %s", ErrInvalidConfig, c.Timeout)
	}

	return nil
}

// URL resolves the endpoint template for (year, day).
func (c Config) URL(year, day int) string {
	return strings.NewReplacer(
		"{year}", strconv.Itoa(year),
		"{day}", strconv.Itoa(day),
	).Replace(c.Endpoint)
}

// Path returns <DataRoot>/<year>/day<day>.txt; day is not zero-padded.
func (c Config) Path(year, day int) string {
	return filepath.Join(c.DataRoot, strconv.Itoa(year), "day"+strconv.Itoa(day)+".txt")
}
