package customerr

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	Unknown           Kind = ""
	InvalidCredential Kind = "invalid_credential"
	MissingCredential Kind = "missing_credential"
	AccessRestricted  Kind = "access_restricted"
	QuotaExhausted    Kind = "quota_exhausted"
	NetworkFailure    Kind = "network_failure"
	NoCachedData      Kind = "no_cached_data"
	ExtractionFailed  Kind = "extraction_failed"
	Remote            Kind = "remote"
)

// ErrExtractionFailed is returned when a selection holds no currency amount.
var ErrExtractionFailed = &Error{Kind: ExtractionFailed, Detail: "no currency amount found"}

type Error struct {
	Kind   Kind
	Detail string
	// DaysRemaining is set for QuotaExhausted.
	DaysRemaining int64
	Err           error
}

func New(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func Wrap(kind Kind, err error, detail string) *Error {
	return &Error{Kind: kind, Detail: detail, Err: err}
}

func Quota(daysRemaining int64) *Error {
	return &Error{
		Kind:          QuotaExhausted,
		Detail:        fmt.Sprintf("quota will reset in %d days", daysRemaining),
		DaysRemaining: daysRemaining,
	}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// As is errors.As for *Error.
func As(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
