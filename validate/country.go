package validate

import (
	"strconv"
	"strings"

	"travel_manager/constants"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateCountry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCountryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateCountry", input)
		return c.Next()
	}
}

func EditCountry(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditCountryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if input.Code != nil {
			code := strings.ToUpper(strings.TrimSpace(*input.Code))
			input.Code = &code
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputEditCountry", input)
		c.Locals("countryId", uint(id))
		return c.Next()
	}
}

func CreateCity() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateCity", input)
		return c.Next()
	}
}

func EditCity(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditCityInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputEditCity", input)
		c.Locals("cityId", uint(id))
		return c.Next()
	}
}

func CreateAirport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateAirportInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		input.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateAirport", input)
		return c.Next()
	}
}

func EditAirport(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditAirportInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if input.Code != nil {
			code := strings.ToUpper(strings.TrimSpace(*input.Code))
			input.Code = &code
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputEditAirport", input)
		c.Locals("airportId", uint(id))
		return c.Next()
	}
}

// GenerateCountryCities validates the AI generation request body.
func GenerateCountryCities() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input struct {
			CountryName string `json:"countryName" validate:"required,min=2"`
		}
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("countryName", strings.TrimSpace(input.CountryName))
		return c.Next()
	}
}
