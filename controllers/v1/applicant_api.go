package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ats-backend/controllers"
	"ats-backend/lib/applicant"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	applicantapimodels "ats-backend/models/api/applicant"
	filesapimodels "ats-backend/models/api/files"
	dbmodels "ats-backend/models/db"
)

type applicantApiController struct {
	controllers.BaseAPIController
}

func InitApplicantApiRouters(app *fiber.App) {
	controller := applicantApiController{}
	app.Route("applicant", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Post("upload-resume", controller.uploadResume)
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Delete("", controller.delete)
		})
	})
}

// recruiters only see their own applicants, administrators see everything
func (c *applicantApiController) scopeFilter(ctx *fiber.Ctx, filter dbmodels.ApplicantFilter) dbmodels.ApplicantFilter {
	if !middleware.GetUserRole(ctx).IsAdmin() {
		filter.AuthorID = middleware.GetUserID(ctx)
	}
	return filter
}

// @Summary Applicant list
// @Tags Applicant
// @Description List applicants with filter and pagination, recruiters see only their own
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body applicantapimodels.ApplicantListRequest true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/list [post]
func (c *applicantApiController) list(ctx *fiber.Ctx) error {
	body := applicantapimodels.ApplicantListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body.Filter = c.scopeFilter(ctx, body.Filter)
	list, rowCount, err := applicant.Instance.List(body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create applicant
// @Tags Applicant
// @Description Create an applicant record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body applicantapimodels.ApplicantData true "applicant data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant [post]
func (c *applicantApiController) create(ctx *fiber.Ctx) error {
	body := applicantapimodels.ApplicantData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := applicant.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get applicant
// @Tags Applicant
// @Description Get applicant by id
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant id"
// @Success 200 {object} apimodels.Response{data=applicantapimodels.ApplicantView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [get]
func (c *applicantApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := applicant.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update applicant
// @Tags Applicant
// @Description Update applicant data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant id"
// @Param body body applicantapimodels.ApplicantData true "applicant data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [put]
func (c *applicantApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := applicantapimodels.ApplicantData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicant.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Delete applicant
// @Tags Applicant
// @Description Soft-delete an applicant, history stays available
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id} [delete]
func (c *applicantApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicant.Instance.Delete(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload résumé
// @Tags Applicant
// @Description Upload a résumé file and attach it to the applicant
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"applicant id"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=filesapimodels.UploadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/applicant/{id}/upload-resume [post]
func (c *applicantApiController) uploadResume(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open résumé file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read résumé file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	key, url, err := filestorage.Instance.UploadResume(ctx.UserContext(), fileBody, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	err = applicant.Instance.AttachResume(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, key)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(filesapimodels.UploadView{Key: key, URL: url}))
}
