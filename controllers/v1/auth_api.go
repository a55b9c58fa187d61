package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"ats-backend/controllers"
	"ats-backend/lib/auth"
	apimodels "ats-backend/models/api"
	authapimodels "ats-backend/models/api/auth"
)

type authApiController struct {
	controllers.BaseAPIController
}

func InitAuthApiRouters(app *fiber.App) {
	controller := authApiController{}
	app.Route("auth", func(router fiber.Router) {
		router.Post("sign-up", controller.signUp)
		router.Post("sign-in", controller.signIn)
		router.Post("refresh", controller.refresh)
	})
}

// @Summary Register a recruiter account
// @Tags Auth
// @Description Register a recruiter account, the username is assigned automatically
// @Param body body authapimodels.SignUpRequest true "registration data"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/sign-up [post]
func (c *authApiController) signUp(ctx *fiber.Ctx) error {
	body := authapimodels.SignUpRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.SignUp(body)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Sign in
// @Tags Auth
// @Description Sign in with email or username
// @Param body body authapimodels.SignInRequest true "credentials"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/sign-in [post]
func (c *authApiController) signIn(ctx *fiber.Ctx) error {
	body := authapimodels.SignInRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.SignIn(body.Login, body.Password)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}

// @Summary Refresh tokens
// @Tags Auth
// @Description Exchange a refresh token for a new token pair
// @Param body body authapimodels.RefreshRequest true "refresh token"
// @Success 200 {object} apimodels.Response{data=authapimodels.JWTResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/auth/refresh [post]
func (c *authApiController) refresh(ctx *fiber.Ctx) error {
	body := authapimodels.RefreshRequest{}
	if err := c.BodyParser(ctx, &body); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := body.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	tokens, err := auth.Instance.Refresh(body.RefreshToken)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(tokens))
}
