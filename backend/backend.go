// Package backend defines the translation backend interface and implementations.
package backend

import (
	"context"
	"errors"
	"net"
	"syscall"

	indictrans "github.com/arhrid/indic-translator-sub001"
)

// Backend is the interface for translation backends.
// This is an alias to the main package interface for convenience.
type Backend = indictrans.Backend

// Request is an alias to the main package type.
type Request = indictrans.BackendRequest

// classifyTransportError maps a network-level failure onto the error
// taxonomy. Returns false when the error is not a transport failure.
func classifyTransportError(err error) (indictrans.ErrorKind, bool) {
	if errors.Is(err, context.DeadlineExceeded) {
		return indictrans.KindBackendTimeout, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return indictrans.KindBackendTimeout, true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return indictrans.KindBackendUnavailable, true
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) {
		return indictrans.KindBackendUnavailable, true
	}

	// Remaining dial/read failures (no route, closed connection).
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return indictrans.KindBackendUnavailable, true
	}

	return "", false
}
