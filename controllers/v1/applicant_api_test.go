package apiv1

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

func claimsCtx(t *testing.T, app *fiber.App, userID string, role models.UserRole) *fiber.Ctx {
	ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
	t.Cleanup(func() { app.ReleaseCtx(ctx) })
	ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": userID, "role": string(role)}})
	return ctx
}

func TestApplicantListScope(t *testing.T) {
	app := fiber.New()
	controller := applicantApiController{}

	t.Run(`recruiters are pinned to their own rows`, func(t *testing.T) {
		ctx := claimsCtx(t, app, "rec-1", models.UserRoleRecruiter)
		filter := controller.scopeFilter(ctx, dbmodels.ApplicantFilter{AuthorID: "rec-2"})
		require.Equal(t, "rec-1", filter.AuthorID)
	})

	t.Run(`administrators keep the requested filter`, func(t *testing.T) {
		ctx := claimsCtx(t, app, "adm-1", models.UserRoleAdministrator)
		filter := controller.scopeFilter(ctx, dbmodels.ApplicantFilter{AuthorID: "rec-2"})
		require.Equal(t, "rec-2", filter.AuthorID)
	})
}
