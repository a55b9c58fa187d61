package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/pipeline"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	pipelineapimodels "ats-backend/models/api/pipeline"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("pipeline", func(router fiber.Router) {
		router.Get("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.rename)
			idRouter.Delete("", controller.delete)
			idRouter.Post("applicants", controller.addApplicants)
			idRouter.Delete("applicants/:applicantId", controller.removeApplicant)
		})
	})
}

// @Summary Pipeline card list
// @Tags Pipeline
// @Description List the current user's pipeline cards with their candidates
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]pipelineapimodels.CardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/list [get]
func (c *pipelineApiController) list(ctx *fiber.Ctx) error {
	list, err := pipeline.Instance.List(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create pipeline card
// @Tags Pipeline
// @Description Create a free-form candidate bucket
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body pipelineapimodels.CardData true "card data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline [post]
func (c *pipelineApiController) create(ctx *fiber.Ctx) error {
	body := pipelineapimodels.CardData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := pipeline.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get pipeline card
// @Tags Pipeline
// @Description Get pipeline card by id with linked applicants
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"card id"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.CardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [get]
func (c *pipelineApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := pipeline.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Rename pipeline card
// @Tags Pipeline
// @Description Change the card title
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"card id"
// @Param body body pipelineapimodels.CardData true "card data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [put]
func (c *pipelineApiController) rename(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := pipelineapimodels.CardData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Rename(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete pipeline card
// @Tags Pipeline
// @Description Delete the card and its links, the applicants themselves are untouched
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"card id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id} [delete]
func (c *pipelineApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.Delete(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Add applicants to card
// @Tags Pipeline
// @Description Link applicants to the card, already-linked applicants are skipped
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"card id"
// @Param body body pipelineapimodels.AddApplicantsRequest true "applicant ids"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/applicants [post]
func (c *pipelineApiController) addApplicants(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := pipelineapimodels.AddApplicantsRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = pipeline.Instance.AddApplicants(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body.ApplicantIDs)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Remove applicant from card
// @Tags Pipeline
// @Description Unlink the applicant from the card, removing a missing link is a no-op
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"card id"
// @Param   applicantId	path	string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/pipeline/{id}/applicants/{applicantId} [delete]
func (c *pipelineApiController) removeApplicant(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	applicantID := ctx.Params("applicantId")
	if applicantID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("applicant id is required"))
	}
	err = pipeline.Instance.RemoveApplicant(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, applicantID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
