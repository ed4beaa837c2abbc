package auth

import "context"

type callerKey struct{}

// WithCaller attaches the verified identity to the request context.
func WithCaller(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom returns the identity attached by WithCaller, if any. An
// absent caller means the request is anonymous.
func CallerFrom(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(callerKey{}).(*Claims)
	return c, ok && c != nil
}
