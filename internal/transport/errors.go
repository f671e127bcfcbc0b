package transport

import (
	"context"
	"errors"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// codeOf maps sale rejections onto gRPC codes. REST derives its status from the same code.
func codeOf(err error) codes.Code {
	switch {
	case errors.Is(err, model.ErrUnauthorized), errors.Is(err, model.ErrNotWhitelisted):
		return codes.PermissionDenied
	case errors.Is(err, model.ErrPhaseClosed),
		errors.Is(err, model.ErrPhaseAlreadyOpen),
		errors.Is(err, model.ErrPhaseAlreadyClosed):
		return codes.FailedPrecondition
	case errors.Is(err, model.ErrMintLimitExceeded), errors.Is(err, model.ErrSoldOut):
		return codes.ResourceExhausted
	case errors.Is(err, model.ErrInvalidAmount),
		errors.Is(err, model.ErrInvalidPayment),
		errors.Is(err, model.ErrInvalidConfiguration):
		return codes.InvalidArgument
	case errors.Is(err, model.ErrUnknownToken):
		return codes.NotFound
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	default:
		return codes.Internal
	}
}

func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	code := codeOf(err)
	if code == codes.Internal {
		return status.Error(code, "internal error")
	}
	return status.Error(code, err.Error())
}

func invalidArgument(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}
