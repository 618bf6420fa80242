package indictrans

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/arhrid/indic-translator-sub001/cache"
)

// Backend is the interface for translation backends. Implementations issue
// one network call per request and map backend-specific failures onto the
// TranslationError taxonomy. Backends never touch the cache.
type Backend interface {
	Translate(ctx context.Context, req BackendRequest) (string, error)
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// Translator orchestrates validation, caching, and backend dispatch. It is a
// long-lived, shared object: one instance (and one cache) backs all callers.
type Translator struct {
	backend  Backend
	cache    TranslationCache
	retry    RetryConfig
	coalesce bool
	group    singleflight.Group
	logger   *slog.Logger
}

// Option is a functional option for configuring the Translator.
type Option func(*Translator)

// WithCache sets the translation cache.
func WithCache(c TranslationCache) Option {
	return func(t *Translator) {
		t.cache = c
	}
}

// WithRetryConfig sets the retry policy for backend dispatch.
func WithRetryConfig(cfg RetryConfig) Option {
	return func(t *Translator) {
		t.retry = cfg
	}
}

// WithCoalescing controls whether concurrent cache misses for the same key
// share a single backend dispatch. Off by default: duplicate dispatches for
// the same key are harmless (last writer wins).
func WithCoalescing(enabled bool) Option {
	return func(t *Translator) {
		t.coalesce = enabled
	}
}

// WithLogger sets the logger for terminal backend failures.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		t.logger = logger
	}
}

// New creates a Translator backed by the given backend.
func New(backend Backend, opts ...Option) *Translator {
	t := &Translator{
		backend: backend,
		retry:   DefaultRetryConfig(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate validates the request, serves it from the cache when possible,
// and otherwise dispatches it to the backend with bounded retry. Errors are
// always *TranslationError values; failures are never cached.
func (t *Translator) Translate(ctx context.Context, req Request) (resp *Response, err error) {
	defer func() {
		if r := recover(); r != nil {
			t.logger.Error("panic during translation",
				"source", req.SourceLang, "target", req.TargetLang, "panic", r)
			resp = nil
			err = NewInternalError("translation failed", nil)
		}
	}()

	normalized, err := Validate(req)
	if err != nil {
		return nil, err
	}

	// The key uses the text exactly as submitted: whitespace variants are
	// deliberately distinct entries.
	key := cache.Key(req.SourceLang, req.TargetLang, req.Text)

	start := time.Now()
	if t.cache != nil {
		if cached, ok := t.cache.Get(key); ok {
			return &Response{
				TranslatedText:  cached,
				SourceLang:      normalized.SourceLang,
				TargetLang:      normalized.TargetLang,
				DurationMs:      elapsedMs(start),
				ServedFromCache: true,
			}, nil
		}
	}

	translated, err := t.dispatch(ctx, key, BackendRequest{
		Text:       normalized.Text,
		SourceLang: normalized.SourceLang,
		TargetLang: normalized.TargetLang,
	})
	if err != nil {
		terr := normalizeError(err)
		t.logger.Error("translation failed",
			"source", normalized.SourceLang,
			"target", normalized.TargetLang,
			"attempts", t.retry.MaxAttempts,
			"kind", string(terr.Kind),
			"error", terr.Message)
		return nil, terr
	}

	if t.cache != nil {
		_ = t.cache.Set(key, translated) // Ignore cache set errors
	}

	return &Response{
		TranslatedText:  translated,
		SourceLang:      normalized.SourceLang,
		TargetLang:      normalized.TargetLang,
		DurationMs:      elapsedMs(start),
		ServedFromCache: false,
	}, nil
}

// dispatch runs the backend call through the retry controller, optionally
// coalescing concurrent misses on the same key into one flight.
func (t *Translator) dispatch(ctx context.Context, key string, req BackendRequest) (string, error) {
	do := func() (string, error) {
		return WithRetry(ctx, t.retry, func() (string, error) {
			return t.backend.Translate(ctx, req)
		})
	}

	if !t.coalesce {
		return do()
	}

	result, err, _ := t.group.Do(key, func() (interface{}, error) {
		return do()
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Stats reports cache statistics when the configured cache supports them.
func (t *Translator) Stats() cache.Stats {
	if reader, ok := t.cache.(cache.StatsReader); ok {
		return reader.Stats()
	}
	return cache.Stats{}
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
