package handler

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func countryCacheKey(filter *model.FilterCountry) string {
	limit, page := 0, 0
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if filter.Page != nil {
		page = *filter.Page
	}
	active := "all"
	if filter.Active != nil {
		active = strconv.FormatBool(*filter.Active)
	}
	return fmt.Sprintf("countries:%s:%s:%d:%d", strings.ToLower(filter.SearchKey), active, limit, page)
}

func GetCountries(c *fiber.Ctx) error {
	filter := new(model.FilterCountry)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	key := countryCacheKey(filter)
	var cached model.ResponseCustom
	if helper.CacheGetList(c.Context(), key, &cached) {
		return utils.SuccessResponse(c, fiber.StatusOK, &cached)
	}

	db := database.DB.Model(&model.Country{})
	if filter.SearchKey != "" {
		search := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where(database.DB.
			Where("LOWER(name) LIKE ?", search).
			Or("LOWER(code) LIKE ?", search))
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var countries []model.Country
	if err := db.Order("name ASC").Find(&countries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       countries,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	helper.CacheSetList(c.Context(), key, &response)

	return utils.SuccessResponse(c, fiber.StatusOK, &response)
}

func GetCountryById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("countryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var country model.Country
	if err := database.DB.Preload("Cities").First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, country)
}

func CreateCountry(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCountry").(model.CreateCountryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse country input failed"))
	}

	db := database.DB

	var existing model.Country
	if err := db.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country code already exists", nil, "code")
	}

	newCountry := new(model.Country)
	copier.Copy(&newCountry, input)
	if newCountry.Active == nil {
		active := true
		newCountry.Active = &active
	}

	if err := db.Create(&newCountry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	helper.CacheInvalidate(c.Context(), "countries")
	return utils.SuccessResponse(c, fiber.StatusOK, newCountry)
}

func EditCountry(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCountry").(model.EditCountryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse country input failed"))
	}
	countryId := c.Locals("countryId").(uint)

	db := database.DB
	var country model.Country
	if err := db.First(&country, countryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Code != nil && *input.Code != country.Code {
		var existing model.Country
		if err := db.Where("code = ? AND id != ?", *input.Code, countryId).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country code already exists", nil, "code")
		}
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Code != nil {
		updateData["code"] = *input.Code
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.ImageUrl != nil {
		updateData["image_url"] = *input.ImageUrl
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := db.Model(&country).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	if err := db.First(&country, countryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	helper.CacheInvalidate(c.Context(), "countries")
	return utils.SuccessResponse(c, fiber.StatusOK, country)
}

// DeleteCountry refuses while cities still reference the country, mirroring the
// RESTRICT constraint with a readable message instead of a driver error.
func DeleteCountry(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("countryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var country model.Country
	if err := db.First(&country, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var cityCount int64
	db.Model(&model.City{}).Where("country_id = ?", id).Count(&cityCount)
	if cityCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.COUNTRY_HAS_CITIES, errors.New("country has cities"))
	}

	if err := db.Delete(&country).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.CacheInvalidate(c.Context(), "countries")
	return utils.SuccessResponse(c, fiber.StatusOK, country)
}

func BulkCountries(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkInput").(model.BulkActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse bulk input failed"))
	}

	result := applyBulkAction(&model.Country{}, input, func(id uint) error {
		var cityCount int64
		database.DB.Model(&model.City{}).Where("country_id = ?", id).Count(&cityCount)
		if cityCount > 0 {
			return errors.New(constants.COUNTRY_HAS_CITIES)
		}
		return nil
	})

	helper.CacheInvalidate(c.Context(), "countries")
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
