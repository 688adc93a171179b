// Package authctx carries the caller's account ID across gRPC boundaries.
// Identity is asserted by the client; nothing here verifies a credential.
package authctx

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

// AccountIDHeader is the gRPC metadata key naming the caller's account
const AccountIDHeader = "x-account-id"

type contextKey struct{}

// WithAccountID stores the account ID in ctx for server-side handlers
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, contextKey{}, strings.TrimSpace(accountID))
}

// AccountID returns the caller's account ID, or "" when the call is anonymous
func AccountID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(contextKey{}).(string)
	return v
}

// OutgoingWithAccountID returns a context with account-id metadata when
// accountID is non-empty
func OutgoingWithAccountID(ctx context.Context, accountID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	accountID = strings.TrimSpace(accountID)
	if accountID == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, AccountIDHeader, accountID)
}

// FromIncoming lifts the account-id header into the context. Anonymous calls
// pass through; operations that need an identity reject them later.
func FromIncoming(ctx context.Context) (context.Context, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ctx, nil
	}
	for _, v := range md.Get(AccountIDHeader) {
		if v = strings.TrimSpace(v); v != "" {
			return WithAccountID(ctx, v), nil
		}
	}
	return ctx, nil
}

// UnaryServerInterceptor extracts the caller identity for unary calls
func UnaryServerInterceptor() grpc.UnaryServerInterceptor {
	return auth.UnaryServerInterceptor(FromIncoming)
}

// StreamServerInterceptor extracts the caller identity for streaming calls
func StreamServerInterceptor() grpc.StreamServerInterceptor {
	return auth.StreamServerInterceptor(FromIncoming)
}

// UnaryClientInterceptor attaches accountID to every unary call
func UnaryClientInterceptor(accountID string) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		return invoker(OutgoingWithAccountID(ctx, accountID), method, req, reply, cc, opts...)
	}
}

// StreamClientInterceptor attaches accountID to every streaming call
func StreamClientInterceptor(accountID string) grpc.StreamClientInterceptor {
	return func(
		ctx context.Context,
		desc *grpc.StreamDesc,
		cc *grpc.ClientConn,
		method string,
		streamer grpc.Streamer,
		opts ...grpc.CallOption,
	) (grpc.ClientStream, error) {
		return streamer(OutgoingWithAccountID(ctx, accountID), desc, cc, method, opts...)
	}
}
