package grpc

import (
	"context"
	"errors"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/gophnotes/internal/common"
)

var kindCodes = map[common.Kind]codes.Code{
	common.KindUnauthenticated:        codes.Unauthenticated,
	common.KindNotFound:               codes.NotFound,
	common.KindReceiverNotFound:       codes.NotFound,
	common.KindRequestNotFound:        codes.NotFound,
	common.KindNotOwnerOrNoteMissing:  codes.NotFound,
	common.KindForbidden:              codes.PermissionDenied,
	common.KindInvalidStateTransition: codes.FailedPrecondition,
	common.KindAlreadyPending:         codes.AlreadyExists,
	common.KindAlreadyShared:          codes.AlreadyExists,
	common.KindSelfShareRejected:      codes.InvalidArgument,
	common.KindStoreFailure:           codes.Internal,
}

func codeOf(kind common.Kind) codes.Code {
	if c, ok := kindCodes[kind]; ok {
		return c
	}
	return codes.Internal
}

// toStatus converts a service error into a gRPC status carrying the error
// Kind as ErrorInfo. Store failures are logged and reported generically.
// A call abandoned by its caller is not a store failure and keeps the
// matching context code.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		s.logger.Warn(ctx, "request canceled", "error", err.Error())
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		s.logger.Warn(ctx, "request deadline exceeded", "error", err.Error())
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	kind := common.KindOf(err)
	msg := err.Error()
	if kind == common.KindStoreFailure {
		s.logger.Error(ctx, "store failure", "error", err.Error())
		msg = common.ErrorInternal.Error()
	}

	st := status.New(codeOf(kind), msg)
	if detailed, derr := st.WithDetails(&errdetails.ErrorInfo{
		Reason: string(kind),
		Domain: common.ErrorDomain,
	}); derr == nil {
		st = detailed
	}

	return st.Err()
}
