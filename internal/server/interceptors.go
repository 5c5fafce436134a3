package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/scouter-app/receipt-pipeline/internal/common"
)

// UnaryRequestID tags every call with a request id (taken from the
// x-request-id header when the client sends one) and logs completion.
func UnaryRequestID(logger *slog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		rid := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if vals := md.Get("x-request-id"); len(vals) > 0 {
				rid = vals[0]
			}
			if vals := md.Get("x-user-id"); len(vals) > 0 {
				ctx = common.WithUserID(ctx, vals[0])
			}
		}
		if rid == "" {
			rid = uuid.New().String()
		}
		ctx = common.WithRequestID(ctx, rid)

		start := time.Now()
		resp, err := handler(ctx, req)
		logger.Info("grpc.request",
			"method", info.FullMethod,
			"request_id", common.RequestIDFromContext(ctx),
			"user_id", common.UserIDFromContext(ctx),
			"elapsed_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return resp, err
	}
}
