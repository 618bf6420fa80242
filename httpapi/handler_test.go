package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	indictrans "github.com/arhrid/indic-translator-sub001"
	"github.com/arhrid/indic-translator-sub001/backend"
	"github.com/arhrid/indic-translator-sub001/cache"
	"github.com/prometheus/client_golang/prometheus"
)

func newTestHandler(t *testing.T, opts ...HandlerOption) (*Handler, *backend.MockBackend) {
	t.Helper()
	mock := backend.NewMockBackend()
	translator := indictrans.New(mock,
		indictrans.WithCache(cache.NewInMemoryCache(0, 0)),
		indictrans.WithRetryConfig(indictrans.RetryConfig{MaxAttempts: 1}),
	)
	return NewHandler(translator, opts...), mock
}

func postTranslate(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/translate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding error envelope: %v (body: %s)", err, rec.Body.String())
	}
	if env.Success {
		t.Error("error envelope should have success=false")
	}
	return env
}

func TestHandler_TranslateSuccess(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postTranslate(t, h, `{"text":"Hello","sourceLang":"en","targetLang":"hi"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}

	var env struct {
		Success bool          `json:"success"`
		Data    translateData `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !env.Success {
		t.Error("success should be true")
	}
	if env.Data.TranslatedText != "नमस्ते" {
		t.Errorf("translatedText = %q", env.Data.TranslatedText)
	}
	if env.Data.SourceLang != "en" || env.Data.TargetLang != "hi" {
		t.Errorf("language echo = %s/%s", env.Data.SourceLang, env.Data.TargetLang)
	}
	if env.Data.Cached {
		t.Error("first request should not be cached")
	}
}

func TestHandler_TranslateCachedOnRepeat(t *testing.T) {
	h, mock := newTestHandler(t)
	body := `{"text":"Hello","sourceLang":"en","targetLang":"ta"}`

	postTranslate(t, h, body)
	rec := postTranslate(t, h, body)

	var env struct {
		Data translateData `json:"data"`
	}
	json.Unmarshal(rec.Body.Bytes(), &env)
	if !env.Data.Cached {
		t.Error("repeat request should be served from cache")
	}
	if mock.CallCount() != 1 {
		t.Errorf("backend calls = %d, want 1", mock.CallCount())
	}
}

func TestHandler_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postTranslate(t, h, `{"text": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeError(t, rec)
	if env.Error.Code != CodeInvalidJSON {
		t.Errorf("code = %q", env.Error.Code)
	}
}

func TestHandler_ValidationError(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postTranslate(t, h, `{"text":"","sourceLang":"en","targetLang":"hi"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeError(t, rec)
	if env.Error.Code != CodeValidationError {
		t.Errorf("code = %q", env.Error.Code)
	}
	if env.Error.Message != "text cannot be empty" {
		t.Errorf("message = %q", env.Error.Message)
	}
}

func TestHandler_UnsupportedLanguage(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := postTranslate(t, h, `{"text":"Hello","sourceLang":"en","targetLang":"xx"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}

	var env struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Field              string   `json:"field"`
				SupportedLanguages []string `json:"supportedLanguages"`
			} `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if env.Error.Code != CodeUnsupportedLanguage {
		t.Errorf("code = %q", env.Error.Code)
	}
	if env.Error.Details.Field != "targetLang" {
		t.Errorf("details.field = %q", env.Error.Details.Field)
	}
	if len(env.Error.Details.SupportedLanguages) < 23 {
		t.Errorf("expected the full language list, got %d codes", len(env.Error.Details.SupportedLanguages))
	}
}

func TestHandler_BackendFailure(t *testing.T) {
	h, mock := newTestHandler(t)
	mock.FailWith(indictrans.NewBackendError(indictrans.KindBackendUnavailable, "connection refused", nil), 0)

	rec := postTranslate(t, h, `{"text":"Hello","sourceLang":"en","targetLang":"hi"}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
	env := decodeError(t, rec)
	if env.Error.Code != CodeTranslationError {
		t.Errorf("code = %q", env.Error.Code)
	}
	if strings.Contains(env.Error.Message, "connection refused") {
		t.Error("backend details must not leak to callers")
	}
}

func TestHandler_RateLimit(t *testing.T) {
	limiter := indictrans.NewRateLimiter(indictrans.RateLimitConfig{RequestsPerMinute: 1, BurstSize: 1})
	h, _ := newTestHandler(t, WithRateLimiter(limiter))

	body := `{"text":"Hello","sourceLang":"en","targetLang":"hi"}`
	if rec := postTranslate(t, h, body); rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec := postTranslate(t, h, body)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	env := decodeError(t, rec)
	if env.Error.Code != CodeRateLimitExceeded {
		t.Errorf("code = %q", env.Error.Code)
	}
}

func TestHandler_Docs(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/translate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var docs struct {
		Endpoint           string `json:"endpoint"`
		Method             string `json:"method"`
		SupportedLanguages []struct {
			Code        string `json:"code"`
			DisplayName string `json:"displayName"`
		} `json:"supportedLanguages"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("decoding docs: %v", err)
	}
	if docs.Endpoint != "/api/translate" || docs.Method != "POST" {
		t.Errorf("docs header = %s %s", docs.Method, docs.Endpoint)
	}
	if len(docs.SupportedLanguages) != 23 {
		t.Errorf("supportedLanguages = %d entries, want 23", len(docs.SupportedLanguages))
	}
	if docs.SupportedLanguages[0].Code != "en" {
		t.Errorf("first language = %q, want en", docs.SupportedLanguages[0].Code)
	}
}

func TestHandler_Options(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/translate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("Allow-Origin = %q", origin)
	}
	if methods := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(methods, "POST") {
		t.Errorf("Allow-Methods = %q", methods)
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/translate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
}

func TestHandler_MetricsEndpoint(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	h, _ := newTestHandler(t, WithMetrics(metrics))
	mux := h.Mux()

	postTranslate(t, mux, `{"text":"Hello","sourceLang":"en","targetLang":"hi"}`)
	postTranslate(t, mux, `{"text":"Hello","sourceLang":"en","targetLang":"hi"}`)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "indictrans_cache_hits_total 1") {
		t.Errorf("expected one cache hit in metrics output:\n%s", body)
	}
	if !strings.Contains(body, "indictrans_cache_misses_total 1") {
		t.Errorf("expected one cache miss in metrics output:\n%s", body)
	}
	if !strings.Contains(body, "indictrans_requests_total") {
		t.Error("expected request counter in metrics output")
	}
}
