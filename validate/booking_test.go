package validate

import (
	"testing"

	"travel_manager/model"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func inquiryApp() *fiber.App {
	app := fiber.New()
	app.Post("/inquiry", CreateInquiry(), func(c *fiber.Ctx) error {
		input := c.Locals("inputCreateInquiry").(model.CreateInquiryInput)
		return c.JSON(input)
	})
	return app
}

func TestCreateInquiryValidation(t *testing.T) {
	app := inquiryApp()

	assert.Equal(t, 200, doPost(t, app, "/inquiry", fiber.Map{
		"packageId": 1, "name": "Jane Doe", "email": "jane@example.com",
	}))
	assert.Equal(t, 400, doPost(t, app, "/inquiry", fiber.Map{
		"packageId": 1, "name": "Jane Doe", "email": "not-an-email",
	}))
	assert.Equal(t, 400, doPost(t, app, "/inquiry", fiber.Map{
		"name": "Jane Doe", "email": "jane@example.com",
	}))
	assert.Equal(t, 400, doPost(t, app, "/inquiry", fiber.Map{
		"packageId": 1, "name": "Jane Doe", "email": "jane@example.com", "travelDate": "next week",
	}))
	assert.Equal(t, 200, doPost(t, app, "/inquiry", fiber.Map{
		"packageId": 1, "name": "Jane Doe", "email": "jane@example.com", "travelDate": "2026-10-01",
	}))
}
