package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"

	"github.com/athletiq/athletiq_backend/internal/actor"
	"github.com/athletiq/athletiq_backend/pkg/authorize"
	pasetotoken "github.com/athletiq/athletiq_backend/pkg/paseto"
	"github.com/athletiq/athletiq_backend/pkg/reqctx"
)

const LocalsActor = "actor"

// AuthRequired validates a Bearer PASETO access token, checks the session in
// Redis, and resolves the actor from the token claims. On success the actor
// is attached to the request context and the claims to c.Locals.
func AuthRequired(mgr *pasetotoken.Manager, rdb *redis.Client, auth authorize.IAuthorization) fiber.Handler {
	return func(c fiber.Ctx) error {
		h := c.Get("Authorization")
		if h == "" {
			return fiber.ErrUnauthorized
		}

		parts := strings.SplitN(h, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return fiber.ErrUnauthorized
		}

		claims, err := mgr.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			return fiber.ErrUnauthorized
		}

		// Only access tokens are accepted on protected routes
		if claims.Type != pasetotoken.TokenTypeAccess {
			return fiber.ErrUnauthorized
		}

		// Validate session in Redis
		if claims.SessionID != nil {
			key := "session:" + claims.SessionID.String()
			if err := rdb.Get(c.Context(), key).Err(); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		a := actor.Actor{Role: actor.Role(claims.Role), ID: claims.UserID}
		if !a.Role.Valid() {
			return fiber.ErrUnauthorized
		}

		// Idempotent; records the grouping policy the first time a subject is seen.
		if auth != nil {
			if err := authorize.AssignActorRole(c.Context(), auth, a); err != nil {
				return fiber.ErrUnauthorized
			}
		}

		c.Locals(pasetotoken.CtxKeyClaims, claims)
		c.Locals(LocalsActor, a)
		c.SetContext(reqctx.WithActor(c.Context(), a))
		return c.Next()
	}
}

// ActorFromFiber retrieves the resolved actor from Fiber locals.
func ActorFromFiber(c fiber.Ctx) (actor.Actor, bool) {
	a, ok := c.Locals(LocalsActor).(actor.Actor)
	return a, ok
}
