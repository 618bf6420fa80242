package backend

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockBackend is a mock translation backend for testing.
type MockBackend struct {
	mu           sync.Mutex
	translations map[string]string // Map of "source->target:text" to translation
	err          error             // Error to return instead of translating
	failFirst    int               // Number of initial calls that fail with err
	delay        time.Duration     // Artificial latency per call
	callCount    int
	lastRequest  Request
}

// NewMockBackend creates a new mock backend with default translations.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		translations: map[string]string{
			"en->hi:Hello":        "नमस्ते",
			"en->hi:Good morning": "सुप्रभात",
			"en->ta:Hello":        "வணக்கம்",
			"en->bn:Hello":        "হ্যালো",
			"hi->en:नमस्ते":        "Hello",
		},
	}
}

// Translate returns canned translations, synthesizing one for unknown texts.
func (m *MockBackend) Translate(ctx context.Context, req Request) (string, error) {
	m.mu.Lock()
	m.callCount++
	m.lastRequest = req
	err := m.err
	failing := m.err != nil && (m.failFirst == 0 || m.callCount <= m.failFirst)
	delay := m.delay
	translation, ok := m.translations[mockKey(req)]
	m.mu.Unlock()

	if delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delay):
		}
	}

	if failing {
		return "", err
	}

	if ok {
		return translation, nil
	}
	return fmt.Sprintf("[%s] %s", req.TargetLang, req.Text), nil
}

// SetTranslation registers a canned translation.
func (m *MockBackend) SetTranslation(req Request, translation string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.translations[mockKey(req)] = translation
}

// FailWith makes every call return err. A zero failFirst fails all calls;
// otherwise only the first failFirst calls fail.
func (m *MockBackend) FailWith(err error, failFirst int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
	m.failFirst = failFirst
}

// SetDelay adds artificial latency to every call.
func (m *MockBackend) SetDelay(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delay = d
}

// CallCount returns how many times Translate was called.
func (m *MockBackend) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}

// LastRequest returns the most recent request received.
func (m *MockBackend) LastRequest() Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastRequest
}

// Reset clears the call count, last request, and failure injection.
func (m *MockBackend) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callCount = 0
	m.lastRequest = Request{}
	m.err = nil
	m.failFirst = 0
	m.delay = 0
}

func mockKey(req Request) string {
	return req.SourceLang + "->" + req.TargetLang + ":" + req.Text
}

// Verify MockBackend implements Backend
var _ Backend = (*MockBackend)(nil)
