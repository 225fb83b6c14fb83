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

func GetAirports(c *fiber.Ctx) error {
	filter := new(model.FilterAirport)
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
	key := fmt.Sprintf("airports:%s:%d:%d:%d", strings.ToLower(filter.SearchKey), filter.CityId, limit, page)
	if filter.Active != nil {
		key += ":" + strconv.FormatBool(*filter.Active)
	}

	var cached model.ResponseCustom
	if helper.CacheGetList(c.Context(), key, &cached) {
		return utils.SuccessResponse(c, fiber.StatusOK, &cached)
	}

	db := database.DB.Model(&model.Airport{})
	if filter.SearchKey != "" {
		search := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where(database.DB.
			Where("LOWER(name) LIKE ?", search).
			Or("LOWER(code) LIKE ?", search))
	}
	if filter.CityId != 0 {
		db = db.Where("city_id = ?", filter.CityId)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var airports []model.Airport
	if err := db.Preload("City").Preload("City.Country").Order("code ASC").Find(&airports).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := model.ResponseCustom{
		Rows:       airports,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	}
	helper.CacheSetList(c.Context(), key, &response)

	return utils.SuccessResponse(c, fiber.StatusOK, &response)
}

func GetAirportById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("airportId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var airport model.Airport
	if err := database.DB.Preload("City").First(&airport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, airport)
}

func CreateAirport(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAirport").(model.CreateAirportInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse airport input failed"))
	}

	db := database.DB

	var city model.City
	if err := db.First(&city, input.CityId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "City does not exist", err, "cityId")
	}

	var existing model.Airport
	if err := db.Where("code = ?", input.Code).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Airport code already exists", nil, "code")
	}

	newAirport := new(model.Airport)
	copier.Copy(&newAirport, input)
	if newAirport.Active == nil {
		active := true
		newAirport.Active = &active
	}

	if err := db.Create(&newAirport).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("City").First(&newAirport, newAirport.ID)
	helper.CacheInvalidate(c.Context(), "airports")
	return utils.SuccessResponse(c, fiber.StatusOK, newAirport)
}

func EditAirport(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditAirport").(model.EditAirportInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse airport input failed"))
	}
	airportId := c.Locals("airportId").(uint)

	db := database.DB
	var airport model.Airport
	if err := db.First(&airport, airportId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.CityId != nil {
		var city model.City
		if err := db.First(&city, *input.CityId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "City does not exist", err, "cityId")
		}
	}
	if input.Code != nil && *input.Code != airport.Code {
		var existing model.Airport
		if err := db.Where("code = ? AND id != ?", *input.Code, airportId).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Airport code already exists", nil, "code")
		}
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Code != nil {
		updateData["code"] = *input.Code
	}
	if input.CityId != nil {
		updateData["city_id"] = *input.CityId
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

	if err := db.Model(&airport).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Preload("City").First(&airport, airportId)

	helper.CacheInvalidate(c.Context(), "airports")
	return utils.SuccessResponse(c, fiber.StatusOK, airport)
}

func DeleteAirport(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("airportId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var airport model.Airport
	if err := db.First(&airport, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&airport).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	helper.CacheInvalidate(c.Context(), "airports")
	return utils.SuccessResponse(c, fiber.StatusOK, airport)
}

func BulkAirports(c *fiber.Ctx) error {
	input, ok := c.Locals("bulkInput").(model.BulkActionInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse bulk input failed"))
	}

	result := applyBulkAction(&model.Airport{}, input, nil)

	helper.CacheInvalidate(c.Context(), "airports")
	return utils.SuccessResponse(c, fiber.StatusOK, result)
}
