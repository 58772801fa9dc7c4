package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/t4gged/t4gged/internal/common"
	"github.com/t4gged/t4gged/internal/logging"
	pb "github.com/t4gged/t4gged/internal/proto"
	"github.com/t4gged/t4gged/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identityRef"

func withIdentity(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, identityKey, ref)
}

// identityFromContext returns the verified caller set by identityInterceptor.
func identityFromContext(ctx context.Context) (string, bool) {
	ref, ok := ctx.Value(identityKey).(string)
	return ref, ok && ref != ""
}

// identityInterceptor verifies the identity token on every method but Ping
// and stores the identity ref in the context.
func (s *GRPCServer) identityInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if info.FullMethod == pb.RecordStore_Ping_FullMethodName {
		return handler(ctx, req)
	}

	var token string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.IdentityTokenHeaderName); len(values) > 0 {
			token = values[0]
		}
	}
	if token == "" {
		return nil, status.Error(codes.Unauthenticated, common.ErrNoIdentity.Error())
	}

	ref, err := auth.IdentityFromToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Warn(ctx, "rejected identity token", "method", info.FullMethod, "error", err.Error())
		return nil, status.Error(codes.Unauthenticated, common.ErrInvalidToken.Error())
	}

	return handler(logging.ContextWith(withIdentity(ctx, ref), "identity", ref), req)
}

// rateLimitInterceptor applies the per-identity token bucket to SendInvite.
func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.limiter == nil || info.FullMethod != pb.RecordStore_SendInvite_FullMethodName {
		return handler(ctx, req)
	}

	ref, _ := identityFromContext(ctx)
	if !s.limiter.Allow(ref) {
		s.logger.Warn(ctx, "invite rate limit hit", "user", ref)
		return nil, status.Error(codes.ResourceExhausted, common.ErrRateLimited.Error())
	}

	return handler(ctx, req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if s.metrics == nil {
		return handler(ctx, req)
	}

	start := time.Now()
	resp, err := handler(ctx, req)
	s.metrics.Observe(info.FullMethod, status.Code(err), time.Since(start))
	return resp, err
}
