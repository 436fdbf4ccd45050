package api

import (
	"context"

	"github.com/portfolio-site/backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity attaches the resolved admin identity to the context
func ctxWithIdentity(ctx context.Context, identity *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// ctxIdentity retrieves the resolved identity, or nil for anonymous requests
func ctxIdentity(ctx context.Context) *auth.Identity {
	if value := ctx.Value(identityKey); value != nil {
		if identity, ok := value.(*auth.Identity); ok {
			return identity
		}
	}
	return nil
}
