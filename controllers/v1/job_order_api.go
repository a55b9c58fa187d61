package apiv1

import (
	"io"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ats-backend/controllers"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/lib/joborder"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	filesapimodels "ats-backend/models/api/files"
	joborderapimodels "ats-backend/models/api/joborder"
)

type jobOrderApiController struct {
	controllers.BaseAPIController
}

func InitJobOrderApiRouters(app *fiber.App) {
	controller := jobOrderApiController{}
	app.Route("job-order", func(router fiber.Router) {
		router.Get("board", controller.board)
		router.Post("list", controller.list)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("", controller.update)
			idRouter.Put("change_status", controller.changeStatus)
			idRouter.Put("archive", controller.archive)
			idRouter.Put("favorite", controller.toggleFavorite)
			idRouter.Post("upload-desc", controller.uploadJobDesc)
		})
	})
}

// @Summary Priority board
// @Tags Job order
// @Description Active job orders grouped into High/Mid/Low lanes with candidate counts
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=joborderapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/board [get]
func (c *jobOrderApiController) board(ctx *fiber.Ctx) error {
	view, err := joborder.Instance.Board(middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Job order list
// @Tags Job order
// @Description List job orders with filter and pagination
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body joborderapimodels.JobOrderListRequest true "filter"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]joborderapimodels.JobOrderView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/list [post]
func (c *jobOrderApiController) list(ctx *fiber.Ctx) error {
	body := joborderapimodels.JobOrderListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := joborder.Instance.List(middleware.GetUserID(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Create job order
// @Tags Job order
// @Description Create a job order
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body joborderapimodels.JobOrderData true "job order data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order [post]
func (c *jobOrderApiController) create(ctx *fiber.Ctx) error {
	body := joborderapimodels.JobOrderData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := joborder.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get job order
// @Tags Job order
// @Description Get job order by id
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Success 200 {object} apimodels.Response{data=joborderapimodels.JobOrderView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id} [get]
func (c *jobOrderApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := joborder.Instance.GetByID(id, middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update job order
// @Tags Job order
// @Description Update job order data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Param body body joborderapimodels.JobOrderData true "job order data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id} [put]
func (c *jobOrderApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := joborderapimodels.JobOrderData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = joborder.Instance.Update(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change job order status
// @Tags Job order
// @Description Move the job order along the status pipeline
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Param body body joborderapimodels.StatusUpdateRequest true "new status"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id}/change_status [put]
func (c *jobOrderApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := joborderapimodels.StatusUpdateRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = joborder.Instance.ChangeStatus(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body.Status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Archive job order
// @Tags Job order
// @Description Hide the job order from lists and the board, records are never deleted
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id}/archive [put]
func (c *jobOrderApiController) archive(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = joborder.Instance.Archive(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Toggle favorite
// @Tags Job order
// @Description Toggle the job order in the user's favorites, returns the resulting state
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Success 200 {object} apimodels.Response{data=bool}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id}/favorite [put]
func (c *jobOrderApiController) toggleFavorite(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	selected, err := joborder.Instance.ToggleFavorite(id, middleware.GetUserID(ctx))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(selected))
}

// @Summary Upload job description
// @Tags Job order
// @Description Upload a job description file and attach it to the job order
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"job order id"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=filesapimodels.UploadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/job-order/{id}/upload-desc [post]
func (c *jobOrderApiController) uploadJobDesc(ctx *fiber.Ctx) error {
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
		log.WithError(err).Error("failed to open job description file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read job description file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	key, url, err := filestorage.Instance.UploadJobDesc(ctx.UserContext(), fileBody, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	err = joborder.Instance.AttachJobDesc(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, key)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(filesapimodels.UploadView{Key: key, URL: url}))
}
