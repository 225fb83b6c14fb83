package validate

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func packageApp() *fiber.App {
	app := fiber.New()
	app.Post("/packages", CreatePackage(), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func validPackageBody() fiber.Map {
	return fiber.Map{
		"title":         "Rome Getaway",
		"basePrice":     125000,
		"destinationId": 1,
		"categoryId":    1,
		"hotels": []fiber.Map{
			{
				"hotelId": 1,
				"name":    "Grand Palace Hotel",
				"stars":   5,
				"rooms": []fiber.Map{
					{"type": "Deluxe", "pricePerNight": 12000, "maxOccupancy": 2},
				},
			},
		},
		"inclusions": []string{"Breakfast"},
	}
}

func TestCreatePackageValid(t *testing.T) {
	app := packageApp()
	assert.Equal(t, 200, doPost(t, app, "/packages", validPackageBody()))
}

func TestCreatePackageNoHotels(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["hotels"] = []fiber.Map{}
	assert.Equal(t, 400, doPost(t, app, "/packages", body))

	delete(body, "hotels")
	assert.Equal(t, 400, doPost(t, app, "/packages", body))
}

func TestCreatePackageHotelWithoutRooms(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["hotels"] = []fiber.Map{
		{"hotelId": 1, "name": "Grand Palace Hotel", "stars": 5, "rooms": []fiber.Map{}},
	}
	assert.Equal(t, 400, doPost(t, app, "/packages", body))
}

func TestCreatePackageNoInclusions(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["inclusions"] = []string{}
	assert.Equal(t, 400, doPost(t, app, "/packages", body))
}

func TestCreatePackageNegativePrice(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["basePrice"] = -5
	assert.Equal(t, 400, doPost(t, app, "/packages", body))
}

func TestCreatePackageBadTravelDates(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["travelStartDate"] = "12/05/2026"
	assert.Equal(t, 400, doPost(t, app, "/packages", body))

	body = validPackageBody()
	body["travelStartDate"] = "2026-05-12"
	body["travelEndDate"] = "2026-05-01"
	assert.Equal(t, 400, doPost(t, app, "/packages", body))

	body = validPackageBody()
	body["travelStartDate"] = "2026-05-12"
	body["travelEndDate"] = "2026-05-19"
	assert.Equal(t, 200, doPost(t, app, "/packages", body))
}

func TestCreatePackageInvalidStars(t *testing.T) {
	app := packageApp()

	body := validPackageBody()
	body["hotels"] = []fiber.Map{
		{
			"hotelId": 1,
			"name":    "Grand Palace Hotel",
			"stars":   6,
			"rooms": []fiber.Map{
				{"type": "Deluxe", "pricePerNight": 12000, "maxOccupancy": 2},
			},
		},
	}
	assert.Equal(t, 400, doPost(t, app, "/packages", body))
}
