package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/t4gged/t4gged/internal/common"
)

// errorCodes is checked in order; the status message is the sentinel's text
// so the client can map it back.
var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrNoIdentity, codes.Unauthenticated},
	{common.ErrInvalidToken, codes.Unauthenticated},
	{common.ErrIdentityUnavailable, codes.Unavailable},
	{common.ErrNotFound, codes.NotFound},
	{common.ErrAlreadyResolved, codes.FailedPrecondition},
	{common.ErrSelfInvite, codes.InvalidArgument},
	{common.ErrInvalidArgument, codes.InvalidArgument},
	{common.ErrDuplicatePending, codes.AlreadyExists},
	{common.ErrNotRecipient, codes.PermissionDenied},
	{common.ErrRateLimited, codes.ResourceExhausted},
}

// toStatus converts a service error into a gRPC status error. Store errors
// are logged and reported as Internal without their cause.
func (s *GRPCServer) toStatus(ctx context.Context, method string, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}

	s.logger.Error(ctx, "request failed", "method", method, "error", err.Error())
	return status.Error(codes.Internal, common.ErrStore.Error())
}
