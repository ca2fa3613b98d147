package service

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")

	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuizAccessDenied = errors.New("access denied: requester is not the quiz owner")

	// ErrGenerationUnavailable covers provider call failures (network, auth, quota).
	// There is no fallback content: a failed generation is always surfaced to the caller.
	ErrGenerationUnavailable = errors.New("quiz generation provider unavailable")
)

// rawExcerptLimit bounds how much raw provider text is echoed back for diagnostics.
const rawExcerptLimit = 500

// MalformedResponseError means the provider answered but its output was not a
// parseable JSON quiz. Excerpt carries the first rawExcerptLimit characters of the
// raw text so the failure can be diagnosed without logging the full payload.
type MalformedResponseError struct {
	Detail  string
	Excerpt string
}

func (e *MalformedResponseError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("malformed provider response: %s", e.Detail)
	}
	return fmt.Sprintf("malformed provider response: %s (raw: %s)", e.Detail, e.Excerpt)
}

func newMalformedResponseError(detail, raw string) *MalformedResponseError {
	return &MalformedResponseError{Detail: detail, Excerpt: rawExcerpt(raw)}
}

// rawExcerpt keeps the first rawExcerptLimit characters, truncating on a rune
// boundary so a multi-byte sequence is never split.
func rawExcerpt(raw string) string {
	if len(raw) <= rawExcerptLimit {
		return raw
	}
	runes := []rune(raw)
	if len(runes) <= rawExcerptLimit {
		return raw
	}
	return string(runes[:rawExcerptLimit])
}

func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrInvalidCredentials)
}

func IsForbidden(err error) bool {
	return errors.Is(err, ErrQuizAccessDenied)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrQuizNotFound)
}

func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}

func IsMalformedResponse(err error) bool {
	var mre *MalformedResponseError
	return errors.As(err, &mre)
}
