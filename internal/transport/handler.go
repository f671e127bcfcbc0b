// Package transport exposes the sale over gRPC and REST.
package transport

import (
	"context"
	"time"

	"github.com/paulrouge/multitoken-presale/internal/presale/model"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// Handler dispatches named operations to the sale. Both transports share it.
type Handler struct {
	sale      Sale
	analytics Analytics
	ops       map[string]operation
	logger    *zap.Logger
}

// NewHandler returns a Handler. analytics and logger may be nil.
func NewHandler(sale Sale, analytics Analytics, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	ops := make(map[string]operation, len(operations))
	for _, op := range operations {
		ops[op.name] = op
	}
	return &Handler{
		sale:      sale,
		analytics: analytics,
		ops:       ops,
		logger:    logger.Named("transport"),
	}
}

// Invoke runs the operation called name with the fields of in.
// Errors are gRPC statuses.
func (h *Handler) Invoke(ctx context.Context, name string, caller model.Address, in *structpb.Struct) (*structpb.Struct, error) {
	op, ok := h.ops[name]
	if !ok {
		return nil, status.Errorf(codes.Unimplemented, "unknown operation %s", name)
	}
	if op.caller && caller == model.ZeroAddress {
		return nil, status.Error(codes.Unauthenticated, "caller address is required")
	}

	started := time.Now()
	out, err := op.invoke(ctx, h, caller, params(in.AsMap()))
	if err != nil {
		h.logFailure(name, caller, err, started)
		return nil, toStatus(err)
	}

	res, err := structpb.NewStruct(out)
	if err != nil {
		h.logger.Error("encode response failed", zap.String("operation", name), zap.Error(err))
		return nil, status.Error(codes.Internal, "encode response")
	}
	return res, nil
}

func (h *Handler) logFailure(name string, caller model.Address, err error, started time.Time) {
	fields := []zap.Field{
		zap.String("operation", name),
		zap.Stringer("caller", caller),
		zap.Duration("elapsed", time.Since(started)),
		zap.Error(err),
	}
	if _, isStatus := status.FromError(err); isStatus || model.IsRejection(err) {
		h.logger.Debug("operation rejected", fields...)
		return
	}
	h.logger.Error("operation failed", fields...)
}
