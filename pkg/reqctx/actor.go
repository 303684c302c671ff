package reqctx

import (
	"context"

	"github.com/athletiq/athletiq_backend/internal/actor"
)

// WithActor stores the resolved request actor in the context.
// Set once by the auth middleware after token verification.
func WithActor(ctx context.Context, a actor.Actor) context.Context {
	return context.WithValue(ctx, keyActor, a)
}

// ActorFromContext retrieves the resolved actor.
// Returns false if the request is unauthenticated.
func ActorFromContext(ctx context.Context) (actor.Actor, bool) {
	v := ctx.Value(keyActor)
	if v == nil {
		return actor.Actor{}, false
	}
	a, ok := v.(actor.Actor)
	return a, ok
}

// MustActor retrieves the actor from the context.
// Panics if not set. Use only behind auth middleware.
func MustActor(ctx context.Context) actor.Actor {
	a, ok := ActorFromContext(ctx)
	if !ok {
		panic("reqctx: actor not found in context")
	}
	return a
}
