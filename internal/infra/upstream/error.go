package upstream

import (
	"errors"
	"log/slog"

	"tripdesk/internal/pkg/errs"
)

type GatewayErrorKind string

// Gateway-specific error kinds, mapped from the upstream response class.
const (
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"      // 401: triggers global session teardown
	KindNotFound     GatewayErrorKind = "NOT_FOUND"         // 404
	KindRejected     GatewayErrorKind = "REJECTED"          // other 4xx: validation/business failure
	KindUpstreamDown GatewayErrorKind = "UPSTREAM_FAILURE"  // 5xx
	KindTransport    GatewayErrorKind = "TRANSPORT_FAILURE" // dial/timeout/body read
	KindDecode       GatewayErrorKind = "DECODE_FAILURE"    // malformed envelope
)

type GatewayError struct {
	Kind   GatewayErrorKind
	Status int // HTTP status when one was received, 0 otherwise
	msg    string
	err    error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

// NewGatewayError builds a bare gateway error. Production paths go through
// wrapGatewayErr so the failure is logged where it happened.
func NewGatewayError(kind GatewayErrorKind, status int, msg string) error {
	return GatewayError{Kind: kind, Status: status, msg: msg}
}

func wrapGatewayErr(slogger *slog.Logger, kind GatewayErrorKind, status int, msg string, err error) error {
	slogger.Error("Upstream error: "+msg,
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	)

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return GatewayError{Kind: kind, Status: status, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsUnauthorized reports whether the upstream rejected our bearer token. The
// error middleware treats this uniformly for every screen.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}

func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}
