package client

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/t4gged/t4gged/internal/common"
)

var ErrUnavailable = errors.New("record store unavailable")

// byMessage lists the sentinels the server sends as status messages.
var byMessage = []error{
	common.ErrNoIdentity,
	common.ErrInvalidToken,
	common.ErrIdentityUnavailable,
	common.ErrNotFound,
	common.ErrAlreadyResolved,
	common.ErrSelfInvite,
	common.ErrDuplicatePending,
	common.ErrNotRecipient,
	common.ErrRateLimited,
	common.ErrInvalidArgument,
}

var byCode = map[codes.Code]error{
	codes.Unauthenticated:    common.ErrInvalidToken,
	codes.NotFound:           common.ErrNotFound,
	codes.FailedPrecondition: common.ErrAlreadyResolved,
	codes.AlreadyExists:      common.ErrDuplicatePending,
	codes.PermissionDenied:   common.ErrNotRecipient,
	codes.ResourceExhausted:  common.ErrRateLimited,
	codes.InvalidArgument:    common.ErrInvalidArgument,
}

// mapError turns an RPC failure of op into a domain error: first by status
// message, then by code. Anything else is a StoreError.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, common.ErrIdentityUnavailable) {
		return common.ErrIdentityUnavailable
	}

	st, ok := status.FromError(err)
	if !ok {
		return common.NewStoreError(op, err)
	}

	for _, e := range byMessage {
		if st.Message() == e.Error() {
			return e
		}
	}

	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.NewStoreError(op, ErrUnavailable)
	case codes.Canceled:
		return common.NewStoreError(op, err)
	}

	if e, ok := byCode[st.Code()]; ok {
		return e
	}

	return common.NewStoreError(op, errors.New(st.Message()))
}
