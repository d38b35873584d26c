package api

import (
	"context"

	"github.com/google/uuid"
)

type keyType string

const principalIDKey keyType = "principalID"

// ctxWithPrincipalID adds the configured owner principal to the context
func ctxWithPrincipalID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, principalIDKey, id)
}

// principalIDFromCtx retrieves the owner principal from the context
func principalIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(principalIDKey).(uuid.UUID)
	return id, ok
}
