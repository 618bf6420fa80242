package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	indictrans "github.com/arhrid/indic-translator-sub001"
)

// LocalBackend implements Backend against a local HTTP inference server.
type LocalBackend struct {
	httpClient *http.Client
	endpoint   string
}

// LocalConfig holds configuration for the local inference backend.
type LocalConfig struct {
	Endpoint string        // Translate endpoint (default: "http://localhost:8000/translate")
	Timeout  time.Duration // Per-call timeout (default: 30s)
}

// localRequest is the wire format sent to the inference server.
type localRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang"`
	TargetLang string `json:"target_lang"`
}

// localResponse is the wire format returned by the inference server.
type localResponse struct {
	TranslatedText *string `json:"translated_text"`
}

// NewLocalBackend creates a new local inference backend.
func NewLocalBackend(cfg LocalConfig) *LocalBackend {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = "http://localhost:8000/translate"
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &LocalBackend{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
	}
}

// Translate sends one translation request to the inference server.
func (b *LocalBackend) Translate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(localRequest{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		return "", indictrans.NewInternalError("encoding backend request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, b.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", indictrans.NewInternalError("building backend request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", indictrans.UserAgent())

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		if kind, ok := classifyTransportError(err); ok {
			return "", indictrans.NewBackendError(kind, "inference server call failed", err)
		}
		return "", indictrans.NewBackendError(indictrans.KindBackendUnavailable,
			"inference server call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			fmt.Sprintf("inference server returned status %d", resp.StatusCode), nil)
	}

	var result localResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			"unparseable response from inference server", err)
	}

	if result.TranslatedText == nil || *result.TranslatedText == "" {
		return "", indictrans.NewBackendError(indictrans.KindBackendBadResponse,
			"inference server response missing translated text", nil)
	}

	return *result.TranslatedText, nil
}

// Verify LocalBackend implements Backend
var _ Backend = (*LocalBackend)(nil)
