package validate

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"travel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countryApp() *fiber.App {
	app := fiber.New()
	app.Post("/countries", CreateCountry(), func(c *fiber.Ctx) error {
		input := c.Locals("inputCreateCountry").(model.CreateCountryInput)
		return c.JSON(input)
	})
	return app
}

func doPost(t *testing.T, app *fiber.App, path string, body any) int {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestCreateCountryCodeLength(t *testing.T) {
	app := countryApp()

	assert.Equal(t, 400, doPost(t, app, "/countries", fiber.Map{"name": "France", "code": "F"}))
	assert.Equal(t, 400, doPost(t, app, "/countries", fiber.Map{"name": "France", "code": "FRAN"}))
	assert.Equal(t, 200, doPost(t, app, "/countries", fiber.Map{"name": "France", "code": "FR"}))
	assert.Equal(t, 200, doPost(t, app, "/countries", fiber.Map{"name": "France", "code": "FRA"}))
}

func TestCreateCountryCodeNormalized(t *testing.T) {
	app := fiber.New()
	app.Post("/countries", CreateCountry(), func(c *fiber.Ctx) error {
		input := c.Locals("inputCreateCountry").(model.CreateCountryInput)
		return c.SendString(input.Code)
	})

	b, _ := json.Marshal(fiber.Map{"name": "France", "code": " fr "})
	req := httptest.NewRequest("POST", "/countries", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "FR", buf.String())
}

func TestCreateCountryMissingName(t *testing.T) {
	app := countryApp()
	assert.Equal(t, 400, doPost(t, app, "/countries", fiber.Map{"code": "FR"}))
}
