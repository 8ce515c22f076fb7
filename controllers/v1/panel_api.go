package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"wired-people-backend/controllers"
	dashboardhandler "wired-people-backend/lib/dashboard"
	"wired-people-backend/middleware"
	apimodels "wired-people-backend/models/api"
	panelapimodels "wired-people-backend/models/api/panel"
)

type panelApiController struct {
	controllers.BaseAPIController
}

func InitPanelApiRouters(app *fiber.App) {
	controller := panelApiController{}
	app.Route("panel", func(router fiber.Router) {
		router.Get("metrics", controller.metrics)
		router.Get("export", controller.export)
	})
}

// @Summary Dashboard metrics
// @Tags Panel
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=panelapimodels.MetricsView}
// @router /api/v1/panel/metrics [get]
func (c *panelApiController) metrics(ctx *fiber.Ctx) error {
	token := middleware.GetToken(ctx)
	view, err := dashboardhandler.Instance.Metrics(ctx.UserContext(), token)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to load dashboard metrics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Export dashboard metrics
// @Tags Panel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   format      		query   string  false   "csv, xlsx or pdf (default csv)"
// @Success 200 {object} apimodels.Response{data=panelapimodels.ExportView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/panel/export [get]
func (c *panelApiController) export(ctx *fiber.Ctx) error {
	rawFormat := ctx.Query("format", string(panelapimodels.ExportFormatCSV))
	format, err := panelapimodels.ParseExportFormat(rawFormat)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	token := middleware.GetToken(ctx)
	view, err := dashboardhandler.Instance.Export(ctx.UserContext(), token, format)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "failed to export dashboard metrics")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
