package obsws

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnectionFailed indicates the websocket connection could not be
	// established or dropped mid-request.
	ErrConnectionFailed = errors.New("obs connection failed")
	// ErrAuthenticationFailed indicates the server rejected the Identify
	// authentication string derived from the configured password.
	ErrAuthenticationFailed = errors.New("obs authentication failed")
	// ErrNotConnected indicates a request was attempted before Connect or
	// after the connection was lost.
	ErrNotConnected = errors.New("not connected to obs")
	// ErrTimeout indicates no response arrived within the configured
	// request timeout.
	ErrTimeout = errors.New("obs request timed out")
	// ErrRequestFailed is the generic failure for request errors that do
	// not map to a more specific sentinel.
	ErrRequestFailed = errors.New("obs request failed")

	// ErrResourceNotFound indicates the named scene, input, or kind does
	// not exist.
	ErrResourceNotFound = errors.New("obs resource not found")
	// ErrResourceAlreadyExists indicates a create request collided with an
	// existing resource name.
	ErrResourceAlreadyExists = errors.New("obs resource already exists")
	// ErrOutputRunning indicates an output (record, stream, virtual camera)
	// was started while already active.
	ErrOutputRunning = errors.New("obs output already running")
	// ErrOutputNotRunning indicates an output was stopped while not active.
	ErrOutputNotRunning = errors.New("obs output not running")
	// ErrStudioModeNotActive indicates a studio-mode operation was issued
	// while studio mode is disabled.
	ErrStudioModeNotActive = errors.New("obs studio mode not active")
	// ErrNotReady indicates OBS is not ready to perform the request.
	ErrNotReady = errors.New("obs not ready")
	// ErrInvalidParameter indicates the server rejected a request field.
	ErrInvalidParameter = errors.New("invalid obs request parameter")
)

// mapRequestError translates a failed RequestStatus into one of the sentinel
// errors above. The RequestStatus code is authoritative; the status comment
// is keyword-matched only when the code matches no known constant.
func mapRequestError(requestType string, status requestStatus) error {
	sentinel := sentinelForCode(status.Code)
	if sentinel == nil {
		sentinel = sentinelForComment(status.Comment)
	}

	if status.Comment == "" {
		return fmt.Errorf("%w: %s (code %d)", sentinel, requestType, status.Code)
	}
	return fmt.Errorf("%w: %s (code %d): %s", sentinel, requestType, status.Code, status.Comment)
}

// sentinelForCode maps a known RequestStatus code to its sentinel, or nil
// when the code is not one the protocol defines a specific meaning for.
func sentinelForCode(code int) error {
	switch {
	case code == statusResourceNotFound, code == statusInvalidInputKind:
		return ErrResourceNotFound
	case code == statusResourceAlreadyExists:
		return ErrResourceAlreadyExists
	case code == statusOutputRunning:
		return ErrOutputRunning
	case code == statusOutputNotRunning:
		return ErrOutputNotRunning
	case code == statusStudioModeNotActive:
		return ErrStudioModeNotActive
	case code == statusNotReady:
		return ErrNotReady
	case code >= statusMissingRequestField && code < statusOutputRunning:
		return ErrInvalidParameter
	default:
		return nil
	}
}

// sentinelForComment keyword-matches the status comment. "studio mode" is
// checked before "not active" so studio-mode failures are not misread as an
// output state.
func sentinelForComment(comment string) error {
	comment = strings.ToLower(comment)
	switch {
	case strings.Contains(comment, "not found"),
		strings.Contains(comment, "does not exist"):
		return ErrResourceNotFound
	case strings.Contains(comment, "already exists"):
		return ErrResourceAlreadyExists
	case strings.Contains(comment, "already active"):
		return ErrOutputRunning
	case strings.Contains(comment, "studio mode"):
		return ErrStudioModeNotActive
	case strings.Contains(comment, "not active"):
		return ErrOutputNotRunning
	case strings.Contains(comment, "not ready"):
		return ErrNotReady
	default:
		return ErrRequestFailed
	}
}
