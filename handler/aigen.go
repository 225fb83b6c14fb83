package handler

import (
	"errors"

	"travel_manager/constants"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// GenerateCountryCities proxies the external generation service. The response is
// a candidate set only; nothing is persisted here, the admin reviews and saves
// through the normal country/city endpoints.
func GenerateCountryCities(c *fiber.Ctx) error {
	countryName, ok := c.Locals("countryName").(string)
	if !ok || countryName == "" {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse country name failed"))
	}

	result, err := utils.GenerateCountryCities(c.Context(), countryName)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadGateway, "Generation service unavailable", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
