package apiv1

import (
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"ats-backend/controllers"
	"ats-backend/lib/commission"
	xlsexport "ats-backend/lib/export/xls"
	filestorage "ats-backend/lib/file-storage"
	"ats-backend/middleware"
	apimodels "ats-backend/models/api"
	commissionapimodels "ats-backend/models/api/commission"
	filesapimodels "ats-backend/models/api/files"
	dbmodels "ats-backend/models/db"
)

type commissionApiController struct {
	controllers.BaseAPIController
}

func InitCommissionApiRouters(app *fiber.App) {
	controller := commissionApiController{}
	app.Route("commission", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get("summary", controller.summary)
		router.Get("summary/xls", controller.summaryXls)
		router.Post("", controller.create)
		router.Route(":id", func(idRouter fiber.Router) {
			idRouter.Get("", controller.get)
			idRouter.Put("amount", controller.updateAmount)
			idRouter.Post("payment", controller.addPayment)
			idRouter.Post("upload-receipt", controller.uploadReceipt)
			idRouter.Delete("", controller.delete)
		})
	})
}

// recruiters only see their own commissions, administrators see everything
func (c *commissionApiController) scopeFilter(ctx *fiber.Ctx, filter dbmodels.CommissionFilter) dbmodels.CommissionFilter {
	if !middleware.GetUserRole(ctx).IsAdmin() {
		filter.AuthorID = middleware.GetUserID(ctx)
	}
	return filter
}

// @Summary Commission list
// @Tags Commission
// @Description List commissions, recruiters see only their own
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body commissionapimodels.CommissionListRequest true "filter"
// @Success 200 {object} apimodels.Response{data=[]commissionapimodels.CommissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/list [post]
func (c *commissionApiController) list(ctx *fiber.Ctx) error {
	body := commissionapimodels.CommissionListRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := commission.Instance.List(c.scopeFilter(ctx, body.Filter))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Commission summary
// @Tags Commission
// @Description Per-recruiter totals of owed, received and pending commission
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]commissionapimodels.SummaryRowView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/summary [get]
func (c *commissionApiController) summary(ctx *fiber.Ctx) error {
	rows, err := commission.Instance.Summary(c.scopeFilter(ctx, dbmodels.CommissionFilter{}))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rows))
}

// @Summary Commission summary export
// @Tags Commission
// @Description Download the commission summary as an xlsx file
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/summary/xls [get]
func (c *commissionApiController) summaryXls(ctx *fiber.Ctx) error {
	rows, err := commission.Instance.SummaryRows(c.scopeFilter(ctx, dbmodels.CommissionFilter{}))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := xlsexport.Instance.ExportCommissionSummary(rows)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	fileName := fmt.Sprintf("commission-summary-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, fileName))
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return ctx.Send(buf.Bytes())
}

// @Summary Create commission
// @Tags Commission
// @Description Create a commission for an application record, one per record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param body body commissionapimodels.CommissionData true "commission data"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission [post]
func (c *commissionApiController) create(ctx *fiber.Ctx) error {
	body := commissionapimodels.CommissionData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := commission.Instance.Create(middleware.GetUserID(ctx), middleware.GetUserName(ctx), body)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Get commission
// @Tags Commission
// @Description Get commission by id with payment history
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"commission id"
// @Success 200 {object} apimodels.Response{data=commissionapimodels.CommissionView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/{id} [get]
func (c *commissionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := commission.Instance.GetByID(id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update commission amount
// @Tags Commission
// @Description Change the total owed commission
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"commission id"
// @Param body body commissionapimodels.AmountUpdateRequest true "new amount"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/{id}/amount [put]
func (c *commissionApiController) updateAmount(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := commissionapimodels.AmountUpdateRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = commission.Instance.UpdateAmount(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body.CurrentCommission)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Record payment
// @Tags Commission
// @Description Append a payment to the commission, payments are never edited or removed
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"commission id"
// @Param body body commissionapimodels.PaymentData true "payment data"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/{id}/payment [post]
func (c *commissionApiController) addPayment(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	body := commissionapimodels.PaymentData{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = commission.Instance.AddPayment(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id, body)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Upload payment receipt
// @Tags Commission
// @Description Upload a receipt file, the returned key is passed with the payment data
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"commission id"
// @Param   file	formData	file	true	"file to upload"
// @Success 200 {object} apimodels.Response{data=filesapimodels.UploadView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/{id}/upload-receipt [post]
func (c *commissionApiController) uploadReceipt(ctx *fiber.Ctx) error {
	if _, err := c.GetID(ctx); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	file, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buffer, err := file.Open()
	if err != nil {
		log.WithError(err).Error("failed to open receipt file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	defer buffer.Close()
	fileBody, err := io.ReadAll(buffer)
	if err != nil {
		log.WithError(err).Error("failed to read receipt file")
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	key, url, err := filestorage.Instance.UploadReceipt(ctx.UserContext(), fileBody, file.Filename, file.Header.Get("Content-Type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(filesapimodels.UploadView{Key: key, URL: url}))
}

// @Summary Delete commission
// @Tags Commission
// @Description Soft-delete a commission record
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"commission id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/commission/{id} [delete]
func (c *commissionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = commission.Instance.Delete(middleware.GetUserID(ctx), middleware.GetUserName(ctx), id)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
