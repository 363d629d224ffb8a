package auth

import "context"

type contextKey string

const identityKey contextKey = "identity"

// Identity is the outcome of request authentication. The zero value is an
// anonymous caller.
type Identity struct {
	Authenticated bool
	UserID        int64
}

// ContextWithIdentity returns a new context that carries the authenticated
// caller identity.
func ContextWithIdentity(ctx context.Context, identity Identity) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext retrieves the caller identity from the context. An
// absent or malformed value yields the anonymous identity.
func IdentityFromContext(ctx context.Context) Identity {
	if ctx == nil {
		return Identity{}
	}
	value := ctx.Value(identityKey)
	if value == nil {
		return Identity{}
	}
	identity, ok := value.(Identity)
	if !ok {
		return Identity{}
	}
	return identity
}
