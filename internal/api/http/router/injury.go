package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/athletiq/athletiq_backend/internal/api/http/handler"
	"github.com/athletiq/athletiq_backend/pkg/authorize"
)

func (r *Router) registerInjuryRoutes(
	api fiber.Router,
	ih *handler.InjuryHandler,
	authRequired fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	injuries := api.Group("/injuries", authRequired)

	injuries.Post("/", ih.OpenCase, requirePerm(authorize.ResourceInjuryCase, authorize.ActionCreate))
	injuries.Get("/", ih.ListAll, requirePerm(authorize.ResourceInjuryCase, authorize.ActionList))
	injuries.Get("/mine", ih.ListMine, requirePerm(authorize.ResourceInjuryCase, authorize.ActionList))
	injuries.Get("/assigned", ih.ListAssigned, requirePerm(authorize.ResourceInjuryCase, authorize.ActionList))

	injuries.Patch("/messages/:id", ih.UpdateMessage, requirePerm(authorize.ResourceInjuryMessage, authorize.ActionUpdate))
	injuries.Patch("/assessments/:id", ih.UpdateAssessment, requirePerm(authorize.ResourceInjuryAssessment, authorize.ActionUpdate))

	one := injuries.Group("/:id")
	one.Get("/", ih.GetCase, requirePerm(authorize.ResourceInjuryCase, authorize.ActionRead))
	one.Delete("/", ih.WithdrawCase, requirePerm(authorize.ResourceInjuryCase, authorize.ActionDelete))
	one.Patch("/report", ih.UpdateReport, requirePerm(authorize.ResourceInjuryCase, authorize.ActionUpdate))
	one.Get("/messages", ih.ListMessages, requirePerm(authorize.ResourceInjuryMessage, authorize.ActionRead))
	one.Post("/messages", ih.PostMessage, requirePerm(authorize.ResourceInjuryMessage, authorize.ActionCreate))
	one.Post("/assessment", ih.FileAssessment, requirePerm(authorize.ResourceInjuryAssessment, authorize.ActionCreate))
}
