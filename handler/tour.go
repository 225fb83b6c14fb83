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
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetTours(c *fiber.Ctx) error {
	filter := new(model.FilterTour)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Tour{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
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

	var tours []model.Tour
	if err := db.Preload("City").Order("name ASC").Find(&tours).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       tours,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetTourById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("tourId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var tour model.Tour
	if err := database.DB.Preload("City").Preload("City.Country").First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func CreateTour(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTour").(model.CreateTourInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse tour input failed"))
	}

	db := database.DB

	var city model.City
	if err := db.First(&city, input.CityId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "City does not exist", err, "cityId")
	}

	newTour := new(model.Tour)
	copier.Copy(&newTour, input)
	if newTour.Active == nil {
		active := true
		newTour.Active = &active
	}

	if err := db.Create(&newTour).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("City").First(&newTour, newTour.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, newTour)
}

func EditTour(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditTour").(model.EditTourInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse tour input failed"))
	}
	tourId := c.Locals("tourId").(uint)

	db := database.DB
	var tour model.Tour
	if err := db.First(&tour, tourId).Error; err != nil {
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

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.CityId != nil {
		updateData["city_id"] = *input.CityId
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.DurationHours != nil {
		updateData["duration_hours"] = *input.DurationHours
	}
	if input.Price != nil {
		updateData["price"] = *input.Price
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

	if err := db.Model(&tour).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Preload("City").First(&tour, tourId)

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}

func DeleteTour(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("tourId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var tour model.Tour
	if err := db.First(&tour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&tour).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, tour)
}
