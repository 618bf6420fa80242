// Command indictrans translates text between English and the scheduled
// languages of India, serves the translation HTTP API, and benchmarks the
// cache path.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	indictrans "github.com/arhrid/indic-translator-sub001"
	"github.com/arhrid/indic-translator-sub001/backend"
	"github.com/arhrid/indic-translator-sub001/cache"
	"github.com/arhrid/indic-translator-sub001/httpapi"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("indictrans", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	text := fs.String("text", "", "Text to translate")
	sourceLang := fs.String("source", "en", "Source language code")
	targetLang := fs.String("target", "", "Target language code (e.g., hi, ta)")
	backendKind := fs.String("backend", "", "Backend: openai, local, or mock (default: INDICTRANS_BACKEND env)")
	backendURL := fs.String("backend-url", "", "Backend base URL / endpoint")
	apiKey := fs.String("api-key", "", "API key for hosted backends (default: OPENAI_API_KEY env)")
	model := fs.String("model", "", "Model name for hosted backends")
	timeout := fs.Duration("timeout", 0, "Per-call backend timeout")
	maxAttempts := fs.Int("max-attempts", 0, "Retry attempt count")
	cacheTTL := fs.Int("cache-ttl", 0, "Cache TTL in seconds (0 = no expiration)")
	cacheCap := fs.Int("cache-cap", 0, "Cache entry cap (0 = unbounded)")
	redisURL := fs.String("redis", "", "Redis URL for a shared cache (default: in-memory)")
	serve := fs.Bool("serve", false, "Serve the translation HTTP API")
	addr := fs.String("addr", ":8080", "Listen address for -serve")
	rpm := fs.Int("rpm", 0, "Requests per minute limit for -serve (0 = unlimited)")
	bench := fs.Int("bench", 0, "Benchmark: translate the same request N times and report latencies")
	listLangs := fs.Bool("languages", false, "List supported languages")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", indictrans.Name, indictrans.FullVersion())
		if indictrans.BuildDate != "unknown" && indictrans.BuildDate != "" {
			fmt.Fprintf(stdout, "  built: %s\n", indictrans.BuildDate)
		}
		return nil
	}

	if *listLangs {
		for _, lang := range indictrans.Languages() {
			fmt.Fprintf(stdout, "%-4s %-12s %s\n", lang.Code, lang.DisplayName, lang.NativeName)
		}
		return nil
	}

	// Backend configuration: env first, flags override.
	cfg := backend.FromEnv()
	if *backendKind != "" {
		cfg.Kind = *backendKind
	}
	if *backendURL != "" {
		cfg.Endpoint = *backendURL
	}
	if *apiKey != "" {
		cfg.APIKey = *apiKey
	}
	if *model != "" {
		cfg.Model = *model
	}
	if *timeout > 0 {
		cfg.Timeout = *timeout
	}
	if *maxAttempts > 0 {
		cfg.MaxAttempts = *maxAttempts
	}

	if cfg.Kind == "openai" && cfg.APIKey == "" {
		return fmt.Errorf("API key required for the openai backend (--api-key or %s env)", backend.EnvAPIKey)
	}

	b, err := cfg.Build()
	if err != nil {
		return err
	}

	var store indictrans.TranslationCache
	if *redisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: *redisURL, TTL: *cacheTTL})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()
		store = rc
	} else {
		store = cache.NewInMemoryCache(*cacheTTL, *cacheCap)
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil))
	if *quiet {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	translator := indictrans.New(b,
		indictrans.WithCache(store),
		indictrans.WithRetryConfig(cfg.RetryConfig()),
		indictrans.WithCoalescing(true),
		indictrans.WithLogger(logger),
	)

	if *serve {
		return runServe(translator, *addr, *rpm, logger, stderr, *quiet)
	}

	if *targetLang == "" {
		fs.Usage()
		return fmt.Errorf("--target is required")
	}
	if *text == "" {
		fs.Usage()
		return fmt.Errorf("--text is required")
	}

	req := indictrans.Request{Text: *text, SourceLang: *sourceLang, TargetLang: *targetLang}

	if *bench > 0 {
		return runBench(translator, req, *bench, stdout)
	}

	resp, err := translator.Translate(context.Background(), req)
	if err != nil {
		return err
	}

	if *jsonOutput {
		return json.NewEncoder(stdout).Encode(resp)
	}

	fmt.Fprintln(stdout, resp.TranslatedText)
	if !*quiet {
		fmt.Fprintf(stderr, "%s -> %s in %.1fms (cached: %v)\n",
			resp.SourceLang, resp.TargetLang, resp.DurationMs, resp.ServedFromCache)
	}
	return nil
}

// runServe starts the HTTP API.
func runServe(translator *indictrans.Translator, addr string, rpm int, logger *slog.Logger, stderr io.Writer, quiet bool) error {
	opts := []httpapi.HandlerOption{
		httpapi.WithLogger(logger),
		httpapi.WithMetrics(httpapi.NewMetrics(nil)),
	}
	if rpm > 0 {
		opts = append(opts, httpapi.WithRateLimiter(
			indictrans.NewRateLimiter(indictrans.RateLimitConfig{RequestsPerMinute: rpm})))
	}

	handler := httpapi.NewHandler(translator, opts...)

	if !quiet {
		fmt.Fprintf(stderr, "Serving translation API on %s\n", addr)
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler.Mux(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return server.ListenAndServe()
}

// runBench translates the same request n times and reports cold vs. cached latency.
func runBench(translator *indictrans.Translator, req indictrans.Request, n int, stdout io.Writer) error {
	cold, err := translator.Translate(context.Background(), req)
	if err != nil {
		return fmt.Errorf("cold call failed: %w", err)
	}

	var warmTotal float64
	hits := 0
	for i := 1; i < n; i++ {
		resp, err := translator.Translate(context.Background(), req)
		if err != nil {
			return fmt.Errorf("warm call %d failed: %w", i, err)
		}
		warmTotal += resp.DurationMs
		if resp.ServedFromCache {
			hits++
		}
	}

	fmt.Fprintf(stdout, "cold:       %.2fms (cached: %v)\n", cold.DurationMs, cold.ServedFromCache)
	if n > 1 {
		fmt.Fprintf(stdout, "warm avg:   %.4fms over %d calls\n", warmTotal/float64(n-1), n-1)
		fmt.Fprintf(stdout, "cache hits: %d/%d\n", hits, n-1)
	}
	stats := translator.Stats()
	fmt.Fprintf(stdout, "cache:      %d entries, %d language pairs\n", stats.Entries, stats.LanguagePairs)
	return nil
}
