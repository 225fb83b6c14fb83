package validate

import (
	"strconv"
	"strings"

	"travel_manager/constants"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateTranslation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateTranslationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		input.Language = strings.ToLower(strings.TrimSpace(input.Language))
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}

		c.Locals("inputCreateTranslation", input)
		return c.Next()
	}
}

func EditTranslation(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, 400, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}
		var input model.EditTranslationInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if input.Value == nil || *input.Value == "" {
			return utils.ErrorResponseHaveKey(c, 400, "Value must not be empty", nil, "value")
		}

		c.Locals("inputEditTranslation", input)
		c.Locals("translationId", uint(id))
		return c.Next()
	}
}

func EditLanguageSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.EditLanguageSettingInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, 400, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, 400, "Validation failed", err)
		}
		// default language must stay inside the enabled set when both change
		if input.DefaultLanguage != nil && input.EnabledLanguages != nil {
			found := false
			for _, lang := range *input.EnabledLanguages {
				if lang == *input.DefaultLanguage {
					found = true
					break
				}
			}
			if !found {
				return utils.ErrorResponseHaveKey(c, 400, "defaultLanguage must be one of enabledLanguages", nil, "defaultLanguage")
			}
		}

		c.Locals("inputEditLanguageSetting", input)
		return c.Next()
	}
}
