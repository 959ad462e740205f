package common

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies every failure the pipeline can produce. The request boundary
// maps kinds to HTTP statuses; nothing propagates unclassified.
type Kind string

const (
	KindBadRequest       Kind = "bad_request"       // missing/oversized/malformed input
	KindUnsupportedType  Kind = "unsupported_type"  // media type outside the accepted set
	KindExtractionFailed Kind = "extraction_failed" // corrupt document or PDF
	KindUpstreamFailure  Kind = "upstream_failure"  // completion endpoint unreachable or erroring
	KindParseFailure     Kind = "parse_failure"     // model response not valid JSON in JSON mode
	KindNoTableFound     Kind = "no_table_found"    // well-formed response without table markers
	KindNoDataFound      Kind = "no_data_found"     // model explicitly reported no medical data
)

// AppError carries a kind, a human-readable message, and an optional cause.
type AppError struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps the taxonomy to response codes. Client-side problems
// (including "no data located", which the UI surfaces as a re-selection
// prompt) are 400; everything that went wrong after intake is 500.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest, KindUnsupportedType, KindNoDataFound:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func New(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *AppError {
	return &AppError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

// KindOf extracts the kind from any error in the chain; unknown errors
// report as upstream-agnostic internal failures via the empty kind.
func KindOf(err error) Kind {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
