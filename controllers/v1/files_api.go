package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	filestorage "ats-backend/lib/file-storage"
	apimodels "ats-backend/models/api"
	filesapimodels "ats-backend/models/api/files"
)

type filesApiController struct {
	controllers.BaseAPIController
}

func InitFilesApiRouters(app *fiber.App) {
	controller := filesApiController{}
	app.Route("files", func(router fiber.Router) {
		router.Delete("", controller.remove)
	})
}

// @Summary Remove files
// @Tags Files
// @Description Remove stored files by key
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body filesapimodels.RemoveRequest true "file keys"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/files [delete]
func (c *filesApiController) remove(ctx *fiber.Ctx) error {
	body := filesapimodels.RemoveRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if len(body.Keys) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("no file keys provided"))
	}
	err := filestorage.Instance.Remove(ctx.UserContext(), body.Keys)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
