package handler

import (
	"errors"
	"strconv"
	"strings"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetTranslations(c *fiber.Ctx) error {
	filter := new(model.FilterTranslation)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Translation{})
	if filter.SearchKey != "" {
		search := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where(database.DB.
			Where("LOWER(key) LIKE ?", search).
			Or("LOWER(value) LIKE ?", search))
	}
	if filter.Language != "" {
		db = db.Where("language = ?", strings.ToLower(filter.Language))
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var translations []model.Translation
	if err := db.Order("key ASC, language ASC").Find(&translations).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       translations,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateTranslation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTranslation").(model.CreateTranslationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse translation input failed"))
	}

	db := database.DB
	var existing model.Translation
	err := db.Where("key = ? AND language = ?", input.Key, input.Language).First(&existing).Error
	if err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Translation already exists for this key and language", nil, "key")
	}

	newTranslation := model.Translation{
		Key:      input.Key,
		Language: input.Language,
		Value:    input.Value,
	}
	if err := db.Create(&newTranslation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newTranslation)
}

func EditTranslation(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditTranslation").(model.EditTranslationInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse translation input failed"))
	}
	translationId := c.Locals("translationId").(uint)

	db := database.DB
	var translation model.Translation
	if err := db.First(&translation, translationId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Model(&translation).Update("value", *input.Value).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, translation)
}

func DeleteTranslation(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("translationId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var translation model.Translation
	if err := db.First(&translation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&translation).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, translation)
}

func GetLanguageSettings(c *fiber.Ctx) error {
	var setting model.LanguageSetting
	err := database.DB.Where("site_key = ?", "default").First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

func EditLanguageSettings(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditLanguageSetting").(model.EditLanguageSettingInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse language setting input failed"))
	}

	var setting model.LanguageSetting
	if err := database.DB.Where("site_key = ?", "default").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.DefaultLanguage != nil {
		setting.DefaultLanguage = *input.DefaultLanguage
	}
	if input.EnabledLanguages != nil {
		setting.EnabledLanguages = *input.EnabledLanguages
	}
	if input.RtlLanguages != nil {
		setting.RtlLanguages = *input.RtlLanguages
	}

	// keep the invariant when only one side changed
	found := false
	for _, lang := range setting.EnabledLanguages {
		if lang == setting.DefaultLanguage {
			found = true
			break
		}
	}
	if !found {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "defaultLanguage must be one of enabledLanguages", nil, "defaultLanguage")
	}

	if err := database.DB.Save(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}
