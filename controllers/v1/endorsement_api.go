package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/endorsement"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	endorsementapimodels "ats-backend/models/api/endorsement"
)

type endorsementApiController struct {
	controllers.BaseAPIController
}

func InitEndorsementApiRouters(app *fiber.App) {
	controller := endorsementApiController{}
	app.Route("endorsement", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Get("candidate-pool/:id", controller.candidatePool)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("stage", controller.updateStage)
			idRouter.Put("status", controller.updateStatus)
		})
	})
}

// @Summary Endorsement list
// @Tags Endorsement
// @Description List application records, filterable by job order or applicant
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body endorsementapimodels.EndorsementListRequest true "filter"
// @Success 200 {object} apimodels.Response{data=[]endorsementapimodels.EndorsementView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/list [post]
func (c *endorsementApiController) list(ctx *fiber.Ctx) error {
	body := endorsementapimodels.EndorsementListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := endorsement.Instance.List(body.Filter)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Endorse applicant
// @Tags Endorsement
// @Description Link an applicant to a job order, an applicant can only be endorsed once per job order
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body endorsementapimodels.EndorsementData true "endorsement data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement [post]
func (c *endorsementApiController) create(ctx *fiber.Ctx) error {
	body := endorsementapimodels.EndorsementData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := endorsement.Instance.Endorse(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Candidate pool
// @Tags Endorsement
// @Description Applicants of the current user not yet endorsed to the given job order
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Param   search	query	string	false	"name or email search"
// @Success 200 {object} apimodels.Response{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/candidate-pool/{id} [get]
func (c *endorsementApiController) candidatePool(ctx *fiber.Ctx) error {
	jobOrderID, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := endorsement.Instance.CandidatePool(middleware.GetUserID(ctx), jobOrderID, ctx.Query("search"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Get endorsement
// @Tags Endorsement
// @Description Get application record by id
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"endorsement id"
// @Success 200 {object} apimodels.Response{data=endorsementapimodels.EndorsementView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/{id} [get]
func (c *endorsementApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := endorsement.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update endorsement
// @Tags Endorsement
// @Description Partial update of application record fields
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"endorsement id"
// @Param body body endorsementapimodels.EndorsementUpdate true "fields to update"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/{id} [put]
func (c *endorsementApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := endorsementapimodels.EndorsementUpdate{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = endorsement.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change stage
// @Tags Endorsement
// @Description Move the applicant in the sourcing funnel, any valid stage may be set
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"endorsement id"
// @Param body body endorsementapimodels.StageUpdateRequest true "new stage"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/{id}/stage [put]
func (c *endorsementApiController) updateStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := endorsementapimodels.StageUpdateRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = endorsement.Instance.UpdateStage(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body.Stage)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change status
// @Tags Endorsement
// @Description Set the application outcome status
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"endorsement id"
// @Param body body endorsementapimodels.StatusUpdateRequest true "new status"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/endorsement/{id}/status [put]
func (c *endorsementApiController) updateStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := endorsementapimodels.StatusUpdateRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = endorsement.Instance.UpdateStatus(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
