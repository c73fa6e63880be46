package input

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Option customizes a Cache. Nil arguments are ignored.
type Option func(*options)

type options struct {
	fs         afero.Fs
	client     Doer
	creds      CredentialSource
	logger     *zap.Logger
	registerer prometheus.Registerer
	limiter    *rate.Limiter
}

// WithFs sets the filesystem holding the data root and the credential file.
// Default: afero.NewOsFs().
func WithFs(fs afero.Fs) Option {
	return func(o *options) {
		if fs != nil {
			o.fs = fs
		}
	}
}

// WithHTTPClient sets the HTTP collaborator. Default: a new *http.Client.
func WithHTTPClient(client Doer) Option {
	return func(o *options) {
		if client != nil {
			o.client = client
		}
	}
}

// WithCredentialSource overrides where the session cookie comes from.
// Default: Config.Cookie when set, else EnvFileCredential on Config.CredentialFile.
func WithCredentialSource(src CredentialSource) Option {
	return func(o *options) {
		if src != nil {
			o.creds = src
		}
	}
}

// WithLogger sets the logger. Default: zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRegisterer registers the cache metrics on reg. Default: unregistered.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		if reg != nil {
			o.registerer = reg
		}
	}
}

// WithLimiter replaces the limiter built from Config.RateLimit and Config.Burst.
func WithLimiter(l *rate.Limiter) Option {
	return func(o *options) {
		if l != nil {
			o.limiter = l
		}
	}
}

// gatherOptions applies opts over defaults derived from cfg.
func gatherOptions(cfg Config, opts []Option) options {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fs == nil {
		o.fs = afero.NewOsFs()
	}
	if o.client == nil {
		o.client = &http.Client{}
	}
	if o.creds == nil {
		if cfg.Cookie != "" {
			o.creds = StaticCredential(cfg.Cookie)
		} else {
			o.creds = EnvFileCredential{Fs: o.fs, Path: cfg.CredentialFile}
		}
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	if o.limiter == nil {
		limit := rate.Inf
		if cfg.RateLimit > 0 {
			limit = rate.Limit(cfg.RateLimit)
		}
		o.limiter = rate.NewLimiter(limit, cfg.Burst)
	}

	return o
}
