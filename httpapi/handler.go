// Package httpapi exposes the translator over a thin HTTP surface.
package httpapi

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	indictrans "github.com/arhrid/indic-translator-sub001"
)

// maxBodyBytes bounds the request body; 500 words fit comfortably.
const maxBodyBytes = 1 << 20

// Error codes surfaced to HTTP callers.
const (
	CodeValidationError     = "VALIDATION_ERROR"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeInvalidJSON         = "INVALID_JSON"
	CodeTranslationError    = "TRANSLATION_ERROR"
	CodeRateLimitExceeded   = "RATE_LIMIT_EXCEEDED"
	CodeInternalServerError = "INTERNAL_SERVER_ERROR"
)

// Handler serves /api/translate on top of a Translator.
type Handler struct {
	translator *indictrans.Translator
	limiter    *indictrans.RateLimiter
	metrics    *Metrics
	logger     *slog.Logger
}

// HandlerOption configures the Handler.
type HandlerOption func(*Handler)

// WithRateLimiter enables per-process request rate limiting (429 on deny).
func WithRateLimiter(l *indictrans.RateLimiter) HandlerOption {
	return func(h *Handler) {
		h.limiter = l
	}
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *Metrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(h *Handler) {
		h.logger = logger
	}
}

// NewHandler creates a Handler for the given translator.
func NewHandler(t *indictrans.Translator, opts ...HandlerOption) *Handler {
	h := &Handler{
		translator: t,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Mux returns a ServeMux with the API and, when metrics are enabled, /metrics.
func (h *Handler) Mux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/translate", h)
	if h.metrics != nil {
		mux.Handle("/metrics", h.metrics.HTTPHandler())
	}
	return mux
}

// ServeHTTP dispatches /api/translate by method.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusNoContent)
	case http.MethodGet:
		h.handleDocs(w, r)
	case http.MethodPost:
		h.handleTranslate(w, r)
	default:
		h.writeError(w, r, http.StatusMethodNotAllowed, CodeValidationError,
			"method not allowed", nil)
	}
}

// translateRequest is the POST body.
type translateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"sourceLang"`
	TargetLang string `json:"targetLang"`
}

// translateData is the success payload.
type translateData struct {
	TranslatedText string  `json:"translatedText"`
	SourceLang     string  `json:"sourceLang"`
	TargetLang     string  `json:"targetLang"`
	Duration       float64 `json:"duration"`
	Cached         bool    `json:"cached"`
}

type successEnvelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func (h *Handler) handleTranslate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if h.limiter != nil && !h.limiter.TryAcquire() {
		h.writeError(w, r, http.StatusTooManyRequests, CodeRateLimitExceeded,
			"too many requests", nil)
		return
	}

	var req translateRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, CodeInvalidJSON,
			"request body is not valid JSON", nil)
		return
	}

	resp, err := h.translator.Translate(r.Context(), indictrans.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		status, code, details := mapError(err)
		terr, _ := indictrans.AsTranslationError(err)
		h.writeError(w, r, status, code, errorMessage(terr, code), details)
		if h.metrics != nil && terr != nil && code == CodeTranslationError {
			h.metrics.ObserveBackendError(terr.Kind)
		}
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveCacheLookup(resp.ServedFromCache)
	}
	h.logger.Info("translated",
		"source", resp.SourceLang,
		"target", resp.TargetLang,
		"cached", resp.ServedFromCache,
		"duration_ms", resp.DurationMs)

	h.writeJSON(w, r, http.StatusOK, successEnvelope{
		Success: true,
		Data: translateData{
			TranslatedText: resp.TranslatedText,
			SourceLang:     resp.SourceLang,
			TargetLang:     resp.TargetLang,
			Duration:       resp.DurationMs,
			Cached:         resp.ServedFromCache,
		},
	}, start)
}

// handleDocs returns machine-readable endpoint documentation; no core logic runs.
func (h *Handler) handleDocs(w http.ResponseWriter, r *http.Request) {
	type languageDoc struct {
		Code        string `json:"code"`
		DisplayName string `json:"displayName"`
		NativeName  string `json:"nativeName"`
	}

	langs := indictrans.Languages()
	docs := make([]languageDoc, len(langs))
	for i, lang := range langs {
		docs[i] = languageDoc{Code: lang.Code, DisplayName: lang.DisplayName, NativeName: lang.NativeName}
	}

	h.writeJSON(w, r, http.StatusOK, map[string]any{
		"endpoint":           "/api/translate",
		"method":             "POST",
		"description":        "Translate text between English and the scheduled languages of India",
		"supportedLanguages": docs,
		"example": map[string]any{
			"request": translateRequest{Text: "Hello", SourceLang: "en", TargetLang: "hi"},
			"response": successEnvelope{
				Success: true,
				Data: translateData{
					TranslatedText: "नमस्ते",
					SourceLang:     "en",
					TargetLang:     "hi",
					Duration:       843.2,
					Cached:         false,
				},
			},
		},
	}, time.Now())
}

// mapError translates a core error into an HTTP status, code, and details.
func mapError(err error) (status int, code string, details any) {
	terr, ok := indictrans.AsTranslationError(err)
	if !ok {
		return http.StatusInternalServerError, CodeInternalServerError, nil
	}

	switch terr.Kind {
	case indictrans.KindValidation:
		return http.StatusBadRequest, CodeValidationError, nil
	case indictrans.KindUnsupportedLanguage:
		return http.StatusBadRequest, CodeUnsupportedLanguage, map[string]any{
			"field":              terr.Field,
			"supportedLanguages": terr.SupportedCodes,
		}
	case indictrans.KindBackendTimeout, indictrans.KindBackendUnavailable, indictrans.KindBackendBadResponse:
		return http.StatusInternalServerError, CodeTranslationError, nil
	default:
		return http.StatusInternalServerError, CodeInternalServerError, nil
	}
}

// errorMessage picks the caller-facing message. Validation and language
// errors are safe verbatim; everything else gets a generic message so
// internals never leak.
func errorMessage(terr *indictrans.TranslationError, code string) string {
	switch code {
	case CodeValidationError, CodeUnsupportedLanguage:
		if terr != nil {
			return terr.Message
		}
	case CodeTranslationError:
		return "translation failed, please try again"
	}
	return "internal server error"
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any, start time.Time) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encoding response", "error", err)
	}
	if h.metrics != nil {
		h.metrics.ObserveRequest(r.Method, status, time.Since(start))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", "method", r.Method, "code", code, "status", status)
	}
	h.writeJSON(w, r, status, errorEnvelope{
		Success: false,
		Error:   errorBody{Code: code, Message: message, Details: details},
	}, time.Now())
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
}
