package middleware

import (
	"context"
	"net"
	"strings"

	"github.com/fekuna/omnipos-shift-service/internal/auth"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

const MetadataAcceptLanguage = "accept-language"

type localeKey struct{}

func WithLocale(ctx context.Context, acceptLanguage string) context.Context {
	return context.WithValue(ctx, localeKey{}, acceptLanguage)
}

// LocaleFromContext returns the raw Accept-Language value, or "".
func LocaleFromContext(ctx context.Context) string {
	v, _ := ctx.Value(localeKey{}).(string)
	return v
}

// ContextInterceptor resolves the caller identity, source address and
// locale once per request and stores them on the context.
func ContextInterceptor() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		u := auth.FromContext(ctx)
		u.SourceIP = sourceIP(ctx, u.SourceIP)
		ctx = auth.WithUser(ctx, u)

		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if val := md.Get(MetadataAcceptLanguage); len(val) > 0 {
				ctx = WithLocale(ctx, val[0])
			}
		}
		return handler(ctx, req)
	}
}

// sourceIP prefers the first x-forwarded-for hop and falls back to the
// transport peer.
func sourceIP(ctx context.Context, forwarded string) string {
	if forwarded != "" {
		first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
		if first != "" {
			return first
		}
	}
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(p.Addr.String())
	if err != nil {
		return p.Addr.String()
	}
	return host
}
