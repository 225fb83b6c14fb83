package validate

import (
	"errors"
	"strconv"
	"time"

	"travel_manager/constants"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func parseTravelDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreatePackage rejects empty hotel or inclusion lists before any storage call,
// mirroring what the admin form enforces client-side.
func CreatePackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePackageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		for _, hotel := range input.Hotels {
			if len(hotel.Rooms) == 0 {
				return utils.ErrorResponseHaveKey(c, 400, "Each hotel needs at least one room", errors.New("hotel without rooms"), "hotels")
			}
		}

		start, err := parseTravelDate(input.TravelStartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, 400, "travelStartDate must be YYYY-MM-DD", err, "travelStartDate")
		}
		end, err := parseTravelDate(input.TravelEndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, 400, "travelEndDate must be YYYY-MM-DD", err, "travelEndDate")
		}
		if start != nil && end != nil && end.Before(*start) {
			return utils.ErrorResponseHaveKey(c, 400, "travelEndDate must not be before travelStartDate", nil, "travelEndDate")
		}

		c.Locals("inputCreatePackage", input)
		c.Locals("travelStart", start)
		c.Locals("travelEnd", end)
		return c.Next()
	}
}

func EditPackage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditPackageInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.Hotels != nil {
			for _, hotel := range *input.Hotels {
				if len(hotel.Rooms) == 0 {
					return utils.ErrorResponseHaveKey(c, 400, "Each hotel needs at least one room", errors.New("hotel without rooms"), "hotels")
				}
			}
		}

		start, err := parseTravelDate(input.TravelStartDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, 400, "travelStartDate must be YYYY-MM-DD", err, "travelStartDate")
		}
		end, err := parseTravelDate(input.TravelEndDate)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, 400, "travelEndDate must be YYYY-MM-DD", err, "travelEndDate")
		}

		c.Locals("inputEditPackage", input)
		c.Locals("packageId", uint(id))
		c.Locals("travelStart", start)
		c.Locals("travelEnd", end)
		return c.Next()
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateCategory", input)
		return c.Next()
	}
}

func EditCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputEditCategory", input)
		c.Locals("categoryId", uint(id))
		return c.Next()
	}
}
