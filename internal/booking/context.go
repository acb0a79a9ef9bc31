package booking

import "context"

type idempotencyKeyCtx struct{}

// WithIdempotencyKey scopes draft creation to a client supplied key.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtx{}, key)
}

func IdempotencyKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtx{}).(string)

	return key, ok && key != ""
}
