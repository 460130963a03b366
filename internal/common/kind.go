package common

import "errors"

// Kind classifies a failure for the presentation layer. It travels over the
// wire as the ErrorInfo reason, so values must stay stable.
type Kind string

const (
	KindUnauthenticated        Kind = "UNAUTHENTICATED"
	KindNotFound               Kind = "NOT_FOUND"
	KindForbidden              Kind = "FORBIDDEN"
	KindInvalidStateTransition Kind = "INVALID_STATE_TRANSITION"
	KindAlreadyPending         Kind = "ALREADY_PENDING"
	KindAlreadyShared          Kind = "ALREADY_SHARED"
	KindSelfShareRejected      Kind = "SELF_SHARE_REJECTED"
	KindReceiverNotFound       Kind = "RECEIVER_NOT_FOUND"
	KindNotOwnerOrNoteMissing  Kind = "NOT_OWNER_OR_NOTE_MISSING"
	KindRequestNotFound        Kind = "REQUEST_NOT_FOUND"
	KindStoreFailure           Kind = "STORE_FAILURE"
)

// kindTable is ordered: more specific sentinels first.
var kindTable = []struct {
	err  error
	kind Kind
}{
	{ErrorUnauthenticated, KindUnauthenticated},
	{ErrInvalidToken, KindUnauthenticated},
	{ErrorForbidden, KindForbidden},
	{ErrInvalidStateTransition, KindInvalidStateTransition},
	{ErrAlreadyPending, KindAlreadyPending},
	{ErrAlreadyShared, KindAlreadyShared},
	{ErrSelfShare, KindSelfShareRejected},
	{ErrReceiverNotFound, KindReceiverNotFound},
	{ErrNotOwnerOrNoteMissing, KindNotOwnerOrNoteMissing},
	{ErrRequestNotFound, KindRequestNotFound},
	{ErrorNotFound, KindNotFound},
	{ErrorInternal, KindStoreFailure},
}

// KindOf returns the Kind of err. Unknown errors are store failures.
// A nil error has no kind.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var f *Failure
	if errors.As(err, &f) {
		return f.Kind
	}
	for _, m := range kindTable {
		if errors.Is(err, m.err) {
			return m.kind
		}
	}
	return KindStoreFailure
}

// Failure is an error rebuilt from a Kind and a message, typically on the
// client side of the wire. It matches the sentinel of the same Kind with
// errors.Is.
type Failure struct {
	Kind    Kind
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

func (f *Failure) Is(target error) bool {
	for _, m := range kindTable {
		if target == m.err {
			return m.kind == f.Kind
		}
	}
	return false
}
