package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	systemlog "ats-backend/lib/system-log"
	apimodels "ats-backend/models/api"
	syslogapimodels "ats-backend/models/api/syslog"
)

type systemLogApiController struct {
	controllers.BaseAPIController
}

func InitSystemLogApiRouters(app *fiber.App) {
	controller := systemLogApiController{}
	app.Route("system-log", func(router fiber.Router) {
		router.Post("access", controller.access)
		router.Post("list", controller.list)
	})
}

// @Summary Verify audit log access
// @Tags System log
// @Description Check the shared audit log password before showing log entries
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body syslogapimodels.AccessRequest true "password"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/system-log/access [post]
func (c *systemLogApiController) access(ctx *fiber.Ctx) error {
	body := syslogapimodels.AccessRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !systemlog.Instance.CheckAccess(body.Password) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("invalid password"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Audit log list
// @Tags System log
// @Description List audit entries, newest first
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body syslogapimodels.LogListRequest true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]syslogapimodels.LogView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/system-log/list [post]
func (c *systemLogApiController) list(ctx *fiber.Ctx) error {
	body := syslogapimodels.LogListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := body.GetPage()
	list, rowCount, err := systemlog.Instance.List(body.Filter, page, limit)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}
