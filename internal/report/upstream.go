package report

import "errors"

// Cause labels for upstream fetch failures. The public fetcher contract
// collapses every failure into an empty result, so these labels are the
// only place the distinction survives (logs, Sentry tags, metrics).
const (
	CauseTransport = "transport"
	CauseStatus    = "status"
	CauseDecode    = "decode"
	CauseSemantic  = "semantic"
)

// UpstreamError pairs a failure cause label with the underlying error.
type UpstreamError struct {
	Cause string
	Err   error
}

func (e *UpstreamError) Error() string { return e.Cause + ": " + e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Upstream wraps err with a cause label.
func Upstream(cause string, err error) error {
	return &UpstreamError{Cause: cause, Err: err}
}

// CauseOf extracts the cause label from an error chain, defaulting to
// transport for unlabeled errors (context cancellation, dial failures).
func CauseOf(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Cause
	}
	return CauseTransport
}
