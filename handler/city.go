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

func GetCities(c *fiber.Ctx) error {
	filter := new(model.FilterCity)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	limit, page := 0, 0
	if filter.Limit != nil {
		limit = *filter.Limit
	}
	if filter.Page != nil {
		page = *filter.Page
	}
	key := fmt.Sprintf("cities:%s:%d:%d:%d", strings.ToLower(filter.SearchKey), filter.CountryId, limit, page)
	if filter.Active != nil {
		key += ":" + strconv.FormatBool(*filter.Active)
	}

	var cached model.ResponseCustom
	if helper.CacheGetList(c.Context(), key, &cached) {
		return utils.SuccessResponse(c, fiber.StatusOK, &cached)
	}

	db := database.DB.Model(&model.City{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.CountryId != 0 {
		db = db.Where("country_id = ?", filter.CountryId)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var cities []model.City
	if err := db.Preload("Country").Order("name ASC").Find(&cities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       cities,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	helper.CacheSetList(c.Context(), key, &response)

	return utils.SuccessResponse(c, fiber.StatusOK, &response)
}

func GetCityById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("cityId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var city model.City
	if err := database.DB.Preload("Country").Preload("Airports").First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func CreateCity(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCity").(model.CreateCityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse city input failed"))
	}

	db := database.DB

	var country model.Country
	if err := db.First(&country, input.CountryId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country does not exist", err, "countryId")
	}

	newCity := new(model.City)
	copier.Copy(&newCity, input)
	if newCity.Active == nil {
		active := true
		newCity.Active = &active
	}

	if err := db.Create(&newCity).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Country").First(&newCity, newCity.ID)
	helper.CacheInvalidate(c.Context(), "cities")
	return utils.SuccessResponse(c, fiber.StatusOK, newCity)
}

func EditCity(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCity").(model.EditCityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse city input failed"))
	}
	cityId := c.Locals("cityId").(uint)

	db := database.DB
	var city model.City
	if err := db.First(&city, cityId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.CountryId != nil {
		var country model.Country
		if err := db.First(&country, *input.CountryId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country does not exist", err, "countryId")
		}
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.CountryId != nil {
		updateData["country_id"] = *input.CountryId
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

	if err := db.Model(&city).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Preload("Country").First(&city, cityId)

	helper.CacheInvalidate(c.Context(), "cities")
	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func DeleteCity(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("cityId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var city model.City
	if err := db.First(&city, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var airportCount int64
	db.Model(&model.Airport{}).Where("city_id = ?", id).Count(&airportCount)
	if airportCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.CITY_HAS_AIRPORTS, errors.New("city has airports"))
	}

	if err := db.Delete(&city).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.CacheInvalidate(c.Context(), "cities")
	return utils.SuccessResponse(c, fiber.StatusOK, city)
}

func BulkCities(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkInput").(model.BulkActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse bulk input failed"))
	}

	result := applyBulkAction(&model.City{}, input, func(id uint) error {
		var airportCount int64
		database.DB.Model(&model.Airport{}).Where("city_id = ?", id).Count(&airportCount)
		if airportCount > 0 {
			return errors.New(constants.CITY_HAS_AIRPORTS)
		}
		return nil
	})

	helper.CacheInvalidate(c.Context(), "cities")
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
