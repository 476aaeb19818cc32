// Package gateway contains the typed REST clients for the court e-filing
// API and the document-intelligence service, plus the shared error taxonomy
// for upstream HTTP failures.
package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Upstream failure taxonomy. Handlers and the workflow pipeline branch on
// these with errors.Is; user-facing text comes from UserMessage.
var (
	// ErrAuthenticationRequired is raised client-side, before any network
	// call, when no credentials are available.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrCredentialRejected maps an upstream 401.
	ErrCredentialRejected = errors.New("credentials rejected")

	// ErrNotFound maps an upstream 404.
	ErrNotFound = errors.New("resource not found")

	// ErrServerUnavailable maps an upstream 500.
	ErrServerUnavailable = errors.New("server unavailable")

	// ErrGatewayTimeout maps an upstream 504. Distinguished for messaging
	// only; the submission may have partially succeeded, so it is never
	// retried automatically.
	ErrGatewayTimeout = errors.New("gateway timeout")
)

// statusError attaches the upstream HTTP status and message to a taxonomy
// sentinel.
type statusError struct {
	sentinel error
	code     int
	message  string
}

func (e *statusError) Error() string {
	if e.message == "" {
		return fmt.Sprintf("%v (HTTP %d)", e.sentinel, e.code)
	}
	return fmt.Sprintf("%v (HTTP %d): %s", e.sentinel, e.code, e.message)
}

func (e *statusError) Unwrap() error { return e.sentinel }

// mapStatus converts an upstream HTTP status into a taxonomy error, or nil
// for 2xx.
func mapStatus(code int, message string) error {
	var sentinel error
	switch {
	case code >= 200 && code < 300:
		return nil
	case code == http.StatusUnauthorized:
		sentinel = ErrCredentialRejected
	case code == http.StatusNotFound:
		sentinel = ErrNotFound
	case code == http.StatusGatewayTimeout:
		sentinel = ErrGatewayTimeout
	default:
		sentinel = ErrServerUnavailable
	}
	return &statusError{sentinel: sentinel, code: code, message: message}
}

// UserMessage returns the fixed localized notification text for a taxonomy
// error. Unknown errors get the generic failure message.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrAuthenticationRequired):
		return "Debe iniciar sesión para continuar."
	case errors.Is(err, ErrCredentialRejected):
		return "Credenciales inválidas. Verifique su RUT y clave."
	case errors.Is(err, ErrNotFound):
		return "El recurso solicitado no existe."
	case errors.Is(err, ErrGatewayTimeout):
		return "El envío demoró demasiado y pudo haberse completado parcialmente. Verifique en el Poder Judicial antes de reintentar."
	case errors.Is(err, ErrServerUnavailable):
		return "El servicio del Poder Judicial no está disponible. Intente más tarde."
	default:
		return "Ocurrió un error inesperado. Intente nuevamente."
	}
}
