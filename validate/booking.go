package validate

import (
	"time"

	"travel_manager/constants"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateInquiry() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateInquiryInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		if input.TravelDate != nil && *input.TravelDate != "" {
			if _, err := time.Parse("2006-01-02", *input.TravelDate); err != nil {
				return utils.ErrorResponseHaveKey(c, 400, "travelDate must be YYYY-MM-DD", err, "travelDate")
			}
		}
		if input.Travelers == 0 {
			input.Travelers = 1
		}

		c.Locals("inputCreateInquiry", input)
		return c.Next()
	}
}
