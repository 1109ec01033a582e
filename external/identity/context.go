package identity

import "context"

type tokenKey struct{}

// WithToken attaches the backend bearer token of the current identity to ctx.
// Every mutating backend operation is attributed through this token; an empty
// token means anonymous.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// TokenFromContext returns the attached token, or "" for anonymous callers.
func TokenFromContext(ctx context.Context) string {
	if tok, ok := ctx.Value(tokenKey{}).(string); ok {
		return tok
	}
	return ""
}
