package apiv1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"ats-backend/lib/clients"
	"ats-backend/models"
	clientapimodels "ats-backend/models/api/client"
	dbmodels "ats-backend/models/db"
)

type fakeClientsHandler struct{}

func (fakeClientsHandler) Create(userID, userName string, data clientapimodels.ClientData) (string, error) {
	return "cli-1", nil
}
func (fakeClientsHandler) Update(userID, userName, id string, data clientapimodels.ClientData) error {
	return nil
}
func (fakeClientsHandler) GetByID(id string) (clientapimodels.ClientView, error) {
	return clientapimodels.ClientView{}, nil
}
func (fakeClientsHandler) List(filter dbmodels.ClientFilter) ([]clientapimodels.ClientView, error) {
	return []clientapimodels.ClientView{}, nil
}
func (fakeClientsHandler) Delete(userID, userName, id string) error { return nil }

func TestClientRoutesRequireAdministrator(t *testing.T) {
	clients.Instance = fakeClientsHandler{}

	role := models.UserRoleRecruiter
	app := fiber.New()
	app.Use(func(ctx *fiber.Ctx) error {
		ctx.Locals("user", &jwt.Token{Claims: jwt.MapClaims{"sub": "u-1", "role": string(role)}})
		return ctx.Next()
	})
	InitClientApiRouters(app)

	listRequest := func() *http.Request {
		req := httptest.NewRequest(fiber.MethodPost, "/client/list", strings.NewReader(`{}`))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return req
	}

	resp, err := app.Test(listRequest())
	require.Nil(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	t.Run(`administrators pass`, func(t *testing.T) {
		role = models.UserRoleAdministrator
		resp, err := app.Test(listRequest())
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}
