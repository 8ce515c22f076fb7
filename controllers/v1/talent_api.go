package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"wired-people-backend/controllers"
	talenthandler "wired-people-backend/lib/talent"
	"wired-people-backend/middleware"
	apimodels "wired-people-backend/models/api"
	talentapimodels "wired-people-backend/models/api/talent"
)

type talentApiController struct {
	controllers.BaseAPIController
}

func InitTalentApiRouters(app *fiber.App) {
	controller := talentApiController{}
	app.Route("talents", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("status", controller.updateStatus)
		})
	})
}

// @Summary List talents
// @Tags Talents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 talentapimodels.TalentFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=talentapimodels.TalentListView}
// @router /api/v1/talents/list [post]
func (c *talentApiController) list(ctx *fiber.Ctx) error {
	var filter talentapimodels.TalentFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := talenthandler.Instance.List(ctx.UserContext(), token, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list talents")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get talent by ID
// @Tags Talents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=talentapimodels.TalentView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/talents/{id} [get]
func (c *talentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := talenthandler.Instance.GetByID(ctx.UserContext(), token, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load talent")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update talent status
// @Tags Talents
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 talentapimodels.StatusUpdateRequest	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @router /api/v1/talents/{id}/status [patch]
func (c *talentApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload talentapimodels.StatusUpdateRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	if err = talenthandler.Instance.UpdateStatus(ctx.UserContext(), token, id, payload); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update talent status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
