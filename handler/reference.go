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

// The three hotel feature tables share one shape, so their CRUD is generated
// from a single generic set keyed by the redis cache collection name.

func listReference[T any](cachePrefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := new(model.FilterReference)
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
		active := "all"
		if filter.Active != nil {
			active = strconv.FormatBool(*filter.Active)
		}
		key := fmt.Sprintf("%s:%s:%s:%d:%d", cachePrefix, strings.ToLower(filter.SearchKey), active, limit, page)

		var cached model.ResponseCustom
		if helper.CacheGetList(c.Context(), key, &cached) {
			return utils.SuccessResponse(c, fiber.StatusOK, &cached)
		}

		db := database.DB.Model(new(T))
		if filter.SearchKey != "" {
			db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
		}
		if filter.Active != nil {
			db = db.Where("active = ?", *filter.Active)
		}

		var totalCount int64
		db.Count(&totalCount)

		db = utils.ApplyPagination(db, filter.Limit, filter.Page)

		var rows []T
		if err := db.Order("name ASC").Find(&rows).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		response := model.ResponseCustom{
			Rows:       rows,
			Limit:      filter.Limit,
			Page:       filter.Page,
			TotalCount: totalCount,
		}
		helper.CacheSetList(c.Context(), key, &response)

		return utils.SuccessResponse(c, fiber.StatusOK, &response)
	}
}

func getReferenceById[T any](paramKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(paramKey))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		row := new(T)
		if err := database.DB.First(row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		return utils.SuccessResponse(c, fiber.StatusOK, row)
	}
}

func createReference[T any](cachePrefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputCreateReference").(model.CreateReferenceInput)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse reference input failed"))
		}

		db := database.DB

		var nameCount int64
		db.Model(new(T)).Where("name = ?", input.Name).Count(&nameCount)
		if nameCount > 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Name already exists", nil, "name")
		}

		row := new(T)
		copier.Copy(row, input)

		if err := db.Create(row).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}

		helper.CacheInvalidate(c.Context(), cachePrefix)
		return utils.SuccessResponse(c, fiber.StatusOK, row)
	}
}

func editReference[T any](cachePrefix string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := c.Locals("inputEditReference").(model.EditReferenceInput)
		if !ok {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse reference input failed"))
		}
		referenceId := c.Locals("referenceId").(uint)

		db := database.DB
		row := new(T)
		if err := db.First(row, referenceId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		updateData := map[string]interface{}{}
		if input.Name != nil {
			updateData["name"] = *input.Name
		}
		if input.Icon != nil {
			updateData["icon"] = *input.Icon
		}
		if input.Active != nil {
			updateData["active"] = *input.Active
		}
		if len(updateData) == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
		}

		if err := db.Model(row).Updates(updateData).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
		db.First(row, referenceId)

		helper.CacheInvalidate(c.Context(), cachePrefix)
		return utils.SuccessResponse(c, fiber.StatusOK, row)
	}
}

func deleteReference[T any](cachePrefix, paramKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(paramKey))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		db := database.DB
		row := new(T)
		if err := db.First(row, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if err := db.Delete(row).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
		}

		helper.CacheInvalidate(c.Context(), cachePrefix)
		return utils.SuccessResponse(c, fiber.StatusOK, row)
	}
}

var (
	GetHotelFacilities  = listReference[model.HotelFacility]("hotel-facilities")
	GetHotelFacility    = getReferenceById[model.HotelFacility]("facilityId")
	CreateHotelFacility = createReference[model.HotelFacility]("hotel-facilities")
	EditHotelFacility   = editReference[model.HotelFacility]("hotel-facilities")
	DeleteHotelFacility = deleteReference[model.HotelFacility]("hotel-facilities", "facilityId")

	GetHotelHighlights   = listReference[model.HotelHighlight]("hotel-highlights")
	GetHotelHighlight    = getReferenceById[model.HotelHighlight]("highlightId")
	CreateHotelHighlight = createReference[model.HotelHighlight]("hotel-highlights")
	EditHotelHighlight   = editReference[model.HotelHighlight]("hotel-highlights")
	DeleteHotelHighlight = deleteReference[model.HotelHighlight]("hotel-highlights", "highlightId")

	GetCleanlinessFeatures   = listReference[model.CleanlinessFeature]("cleanliness-features")
	GetCleanlinessFeature    = getReferenceById[model.CleanlinessFeature]("featureId")
	CreateCleanlinessFeature = createReference[model.CleanlinessFeature]("cleanliness-features")
	EditCleanlinessFeature   = editReference[model.CleanlinessFeature]("cleanliness-features")
	DeleteCleanlinessFeature = deleteReference[model.CleanlinessFeature]("cleanliness-features", "featureId")
)

// Package categories carry a description instead of an icon, so they keep
// dedicated handlers.

func GetCategories(c *fiber.Ctx) error {
	filter := new(model.FilterReference)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.PackageCategory{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var categories []model.PackageCategory
	if err := db.Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       categories,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetCategoryById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var category model.PackageCategory
	if err := database.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func CreateCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateCategory").(model.CreateCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse category input failed"))
	}

	db := database.DB
	var existing model.PackageCategory
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category already exists", nil, "name")
	}

	newCategory := new(model.PackageCategory)
	copier.Copy(&newCategory, input)
	if newCategory.Active == nil {
		active := true
		newCategory.Active = &active
	}

	if err := db.Create(&newCategory).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newCategory)
}

func EditCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditCategory").(model.EditCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse category input failed"))
	}
	categoryId := c.Locals("categoryId").(uint)

	db := database.DB
	var category model.PackageCategory
	if err := db.First(&category, categoryId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := db.Model(&category).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.First(&category, categoryId)

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategory(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("categoryId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var category model.PackageCategory
	if err := db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var packageCount int64
	db.Model(&model.Package{}).Where("category_id = ?", id).Count(&packageCount)
	if packageCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Category is still used by packages and cannot be deleted", errors.New("category in use"))
	}

	if err := db.Delete(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}
