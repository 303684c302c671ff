package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/athletiq/athletiq_backend/pkg/authorize"
)

// RequirePermission checks if the authenticated actor has the given
// permission in the sys domain. It is the coarse route-level gate; the
// per-case participant checks live in the lifecycle service.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		a, ok := ActorFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(a.ID.String())
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainSys, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
