package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"wired-people-backend/controllers"
	processhandler "wired-people-backend/lib/process"
	"wired-people-backend/middleware"
	apimodels "wired-people-backend/models/api"
	processapimodels "wired-people-backend/models/api/process"
)

type processApiController struct {
	controllers.BaseAPIController
}

func InitProcessApiRouters(app *fiber.App) {
	controller := processApiController{}
	app.Route("processes", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("statistics", controller.statistics)
		router.Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Patch("", controller.update)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Route("candidates", func(candidateRoute fiber.Router) {
				candidateRoute.Post("", controller.assignCandidates)
				candidateRoute.Delete(":candidate_id", controller.removeCandidate)
			})
		})
	})
}

// @Summary Create process
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 processapimodels.ProcessData	true	"request body"
// @Success 200 {object} apimodels.Response{data=processapimodels.ProcessView}
// @Failure 400 {object} apimodels.Response
// @Failure 401 {object} apimodels.Response
// @router /api/v1/processes [post]
func (c *processApiController) create(ctx *fiber.Ctx) error {
	var payload processapimodels.ProcessData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.Create(ctx.UserContext(), token, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to create process")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Get process by ID
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=processapimodels.ProcessView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/processes/{id} [get]
func (c *processApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.GetByID(ctx.UserContext(), token, id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load process")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update process
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 processapimodels.ProcessData	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=processapimodels.ProcessView}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @router /api/v1/processes/{id} [patch]
func (c *processApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload processapimodels.ProcessData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.Update(ctx.UserContext(), token, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to update process")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Delete process
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @router /api/v1/processes/{id} [delete]
func (c *processApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	if err = processhandler.Instance.Delete(ctx.UserContext(), token, id); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to delete process")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List processes
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 processapimodels.ProcessFilter	true	"request body"
// @Success 200 {object} apimodels.Response{data=processapimodels.ProcessListView}
// @router /api/v1/processes/list [post]
func (c *processApiController) list(ctx *fiber.Ctx) error {
	var filter processapimodels.ProcessFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.List(ctx.UserContext(), token, filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to list processes")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Change process status
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 processapimodels.StatusChangeRequest	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response{data=processapimodels.ProcessView}
// @Failure 412 {object} apimodels.Response
// @router /api/v1/processes/{id}/change_status [put]
func (c *processApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload processapimodels.StatusChangeRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.ChangeStatus(ctx.UserContext(), token, id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to change process status")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Assign candidates to process
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 processapimodels.AssignCandidatesRequest	true	"request body"
// @Param   id          		path    string  true    "rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 412 {object} apimodels.Response
// @router /api/v1/processes/{id}/candidates [post]
func (c *processApiController) assignCandidates(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload processapimodels.AssignCandidatesRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	if err = processhandler.Instance.AssignCandidates(ctx.UserContext(), token, id, payload.CandidateIDs); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to assign candidates")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove candidate from process
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  true    "rec ID"
// @Param   candidate_id		path    string  true    "candidate ID"
// @Success 200 {object} apimodels.Response
// @router /api/v1/processes/{id}/candidates/{candidate_id} [delete]
func (c *processApiController) removeCandidate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID := ctx.Params("candidate_id")
	if candidateID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("candidate id is required"))
	}
	token := middleware.GetToken(ctx)
	if err = processhandler.Instance.RemoveCandidate(ctx.UserContext(), token, id, candidateID); err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to remove candidate")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Process statistics
// @Tags Processes
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=processapimodels.StatisticsView}
// @router /api/v1/processes/statistics [get]
func (c *processApiController) statistics(ctx *fiber.Ctx) error {
	token := middleware.GetToken(ctx)
	view, err := processhandler.Instance.Statistics(ctx.UserContext(), token)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load process statistics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
