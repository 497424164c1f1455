package common

import (
	"errors"
	"fmt"
)

// View-level error kinds. None of them is fatal; every view recovers from all of them.
var (
	// ErrNotAuthenticated blocks navigation and submission; the client goes to login
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotAuthor blocks edit and delete of someone else's post
	ErrNotAuthor = errors.New("not the author of this post")
	// ErrSuspendedAccount blocks authoring actions
	ErrSuspendedAccount = errors.New("account is suspended")
	// ErrValidationFailed is a title or content length violation
	ErrValidationFailed = errors.New("validation failed")
	// ErrRemoteFetchFailed is a list, detail or comment count lookup failure
	ErrRemoteFetchFailed = errors.New("remote fetch failed")
	// ErrRemoteWriteFailed is a create, update, delete or remove-attachment failure
	ErrRemoteWriteFailed = errors.New("remote write failed")

	ErrPostNotFound = errors.New("post not found")
	ErrNoPrevious   = errors.New("no previous post")
	ErrNoNext       = errors.New("no next post")
	ErrFileNotFound = errors.New("file not found")
	ErrInvalidInput = errors.New("invalid input")

	// Session token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
)

// Validation reasons
const (
	ReasonTitleTooLong   = "TITLE_TOO_LONG"
	ReasonContentTooLong = "CONTENT_TOO_LONG"
	ReasonUnknownField   = "UNKNOWN_FIELD"
)

// ValidationError is a rejected draft update. It matches ErrValidationFailed.
type ValidationError struct {
	Field  string
	Reason string
	Limit  int
}

func (e *ValidationError) Error() string {
	if e.Limit > 0 {
		return fmt.Sprintf("%s: %s (limit %d)", e.Field, e.Reason, e.Limit)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrValidationFailed) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationReason extracts the reason code from a validation error, if any
func ValidationReason(err error) (string, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

// RemoteStatusError is a non-2xx answer from the remote community API
type RemoteStatusError struct {
	Op     string
	Status int
}

func (e *RemoteStatusError) Error() string {
	return fmt.Sprintf("%s: remote responded %d", e.Op, e.Status)
}
