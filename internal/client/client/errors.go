package client

import (
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophnotes/internal/common"
)

var ErrUnavailable = errors.New("server unavailable")

// codeKinds is used when a status carries no ErrorInfo, e.g. one produced
// by the gRPC runtime rather than the service.
var codeKinds = map[codes.Code]common.Kind{
	codes.Unauthenticated:    common.KindUnauthenticated,
	codes.NotFound:           common.KindNotFound,
	codes.PermissionDenied:   common.KindForbidden,
	codes.FailedPrecondition: common.KindInvalidStateTransition,
}

// mapError turns a gRPC error into a *common.Failure, or ErrUnavailable when
// the server could not be reached in time.
func mapError(err error) error {
	if err == nil {
		return nil
	}

	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	}

	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.Domain == common.ErrorDomain {
			return &common.Failure{Kind: common.Kind(info.Reason), Message: st.Message()}
		}
	}

	kind, ok := codeKinds[st.Code()]
	if !ok {
		return &common.Failure{Kind: common.KindStoreFailure, Message: common.ErrorInternal.Error()}
	}
	return &common.Failure{Kind: kind, Message: st.Message()}
}

// failed builds the failure Result for err. Unavailability keeps its own
// message so the user can tell it apart from a server-side failure.
func failed[T any](err error) common.Result[T] {
	err = mapError(err)
	if errors.Is(err, ErrUnavailable) {
		return common.Result[T]{Kind: common.KindStoreFailure, Message: err.Error()}
	}
	return common.Fail[T](err)
}
