package grpc

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/auth"
)

type ctxKey string

const identityIDKey ctxKey = "identityID"

// protectedMethods act on the active identity's data and need its token.
var protectedMethods = map[string]struct{}{
	FullMethod("Logout"):         {},
	FullMethod("GetCart"):        {},
	FullMethod("AddItem"):        {},
	FullMethod("RemoveItem"):     {},
	FullMethod("UpdateQuantity"): {},
	FullMethod("ClearCart"):      {},
	FullMethod("Checkout"):       {},
	FullMethod("ToggleWishlist"): {},
	FullMethod("GetWishlist"):    {},
}

var rateLimitedMethods = map[string]struct{}{
	FullMethod("Login"):  {},
	FullMethod("Signup"): {},
}

// IdentityIDFromContext returns the identity id the access token was
// issued for, if the call passed the token check.
func IdentityIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(identityIDKey).(string)
	return id, ok
}

// accessTokenInterceptor admits protected calls only when the token's
// subject is the identity currently active in the session.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := protectedMethods[info.FullMethod]; !ok {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(common.AccessTokenHeaderName); len(values) > 0 {
			accessToken = values[0]
		}
	}
	if accessToken == "" {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	identityID, err := auth.SubjectFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, "token expired")
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	current := s.stores.Session.Current()
	if current == nil || current.ID != identityID {
		return nil, status.Error(codes.Unauthenticated, "session is not active")
	}

	return handler(context.WithValue(ctx, identityIDKey, identityID), req)
}

func (s *GRPCServer) rateLimitInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if _, ok := rateLimitedMethods[info.FullMethod]; ok && !s.limiter.Allow() {
		return nil, status.Error(codes.ResourceExhausted, "too many attempts, try again later")
	}
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	args := []any{"method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start)}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", err.Error())...)
	} else {
		s.logger.Debug(ctx, "request", args...)
	}
	return resp, err
}

// recoveryInterceptor turns panics into statuses. A cart or wishlist
// mutation that finds no active identity (the session was closed between
// the token check and the call) becomes Unauthenticated.
func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok && errors.Is(e, common.ErrNoActiveIdentity) {
			resp, err = nil, status.Error(codes.Unauthenticated, e.Error())
			return
		}
		s.logger.Error(ctx, "panic in handler", "method", info.FullMethod, "panic", fmt.Sprint(r), "stack", string(debug.Stack()))
		resp, err = nil, status.Error(codes.Internal, "internal error")
	}()
	return handler(ctx, req)
}
