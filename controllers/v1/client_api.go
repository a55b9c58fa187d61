package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/clients"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	clientapimodels "ats-backend/models/api/client"
)

type clientApiController struct {
	controllers.BaseAPIController
}

func InitClientApiRouters(app *fiber.App) {
	controller := clientApiController{}
	app.Route("client", func(router fiber.Router) {
		router.Use(middleware.AdministratorRequired())
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// @Summary Client list
// @Tags Client
// @Description List client companies, administrators only
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body clientapimodels.ClientListRequest true "filter"
// @Success 200 {object} apimodels.Response{data=[]clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/list [post]
func (c *clientApiController) list(ctx *fiber.Ctx) error {
	body := clientapimodels.ClientListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := clients.Instance.List(body.Filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create client
// @Tags Client
// @Description Create a client company
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body clientapimodels.ClientData true "client data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client [post]
func (c *clientApiController) create(ctx *fiber.Ctx) error {
	body := clientapimodels.ClientData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := clients.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get client
// @Tags Client
// @Description Get client by id
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"client id"
// @Success 200 {object} apimodels.Response{data=clientapimodels.ClientView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [get]
func (c *clientApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := clients.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update client
// @Tags Client
// @Description Update client data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"client id"
// @Param body body clientapimodels.ClientData true "client data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [put]
func (c *clientApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := clientapimodels.ClientData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = clients.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete client
// @Tags Client
// @Description Delete a client company
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"client id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/client/{id} [delete]
func (c *clientApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = clients.Instance.Delete(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
