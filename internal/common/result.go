package common

// Result is the tagged outcome of an operation exposed to the presentation
// layer. Exactly one variant is populated: a success carries Value and an
// optional Message, a failure carries Kind and Message.
type Result[T any] struct {
	Value   T
	Kind    Kind
	Message string
}

// Ok builds the success variant.
func Ok[T any](v T, message string) Result[T] {
	return Result[T]{Value: v, Message: message}
}

// Fail builds the failure variant from err. Store failures get a generic
// message so driver details never reach the user.
func Fail[T any](err error) Result[T] {
	kind := KindOf(err)
	if kind == "" {
		kind = KindStoreFailure
	}
	msg := ErrorInternal.Error()
	if kind != KindStoreFailure && err != nil {
		msg = err.Error()
	}
	return Result[T]{Kind: kind, Message: msg}
}

// ResultOf folds a conventional (value, error) pair into a Result.
func ResultOf[T any](v T, err error, message string) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v, message)
}

// Success reports whether r is the success variant.
func (r Result[T]) Success() bool {
	return r.Kind == ""
}
