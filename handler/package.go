package handler

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// resolveTours fills tour names and base prices from the tours table so the
// stored snapshot stays meaningful even if a tour is later deleted.
func resolveTours(db *gorm.DB, selections []model.PackageTour) ([]model.PackageTour, error) {
	resolved := make([]model.PackageTour, 0, len(selections))
	for _, sel := range selections {
		var tour model.Tour
		if err := db.First(&tour, sel.TourId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, errors.New("tour " + strconv.Itoa(int(sel.TourId)) + " does not exist")
			}
			return nil, err
		}
		sel.Name = tour.Name
		if sel.Price == 0 {
			sel.Price = tour.Price
		}
		resolved = append(resolved, sel)
	}
	return resolved, nil
}

func GetPackages(c *fiber.Ctx) error {
	filter := new(model.FilterPackage)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Package{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.DestinationId != 0 {
		db = db.Where("destination_id = ?", filter.DestinationId)
	}
	if filter.CategoryId != 0 {
		db = db.Where("category_id = ?", filter.CategoryId)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var packages []model.Package
	err := db.
		Preload("Destination").
		Preload("Category").
		Order("id DESC").
		Find(&packages).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       packages,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

// GetPublicPackages serves the booking widget: active packages only.
func GetPublicPackages(c *fiber.Ctx) error {
	filter := new(model.FilterPackage)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Package{}).Where("active = ?", true)
	if filter.SearchKey != "" {
		db = db.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.DestinationId != 0 {
		db = db.Where("destination_id = ?", filter.DestinationId)
	}
	if filter.CategoryId != 0 {
		db = db.Where("category_id = ?", filter.CategoryId)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var packages []model.Package
	if err := db.Preload("Destination").Preload("Category").Order("id DESC").Find(&packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       packages,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetPackageById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("packageId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var pkg model.Package
	err = database.DB.
		Preload("Destination").
		Preload("Destination.Country").
		Preload("Category").
		First(&pkg, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

func GetPackageDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, 400, "slug is required", nil)
	}

	var pkg model.Package
	err := database.DB.
		Preload("Destination").
		Preload("Category").
		Where("slug = ? AND active = ?", slug, true).
		First(&pkg).Error
	if err != nil {
		return utils.ErrorResponse(c, 404, "Package not found", err)
	}

	return utils.SuccessResponse(c, 200, pkg)
}

func CreatePackage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePackage").(model.CreatePackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse package input failed"))
	}
	travelStart, _ := c.Locals("travelStart").(*time.Time)
	travelEnd, _ := c.Locals("travelEnd").(*time.Time)

	db := database.DB

	var destination model.City
	if err := db.First(&destination, input.DestinationId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Destination does not exist", err, "destinationId")
	}
	var category model.PackageCategory
	if err := db.First(&category, input.CategoryId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
	}

	tours, err := resolveTours(db, input.Tours)
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid tour selection", err, "tours")
	}

	tx := db.Begin()

	newPackage := model.Package{
		Title:              input.Title,
		Description:        input.Description,
		BasePrice:          input.BasePrice,
		DiscountPrice:      input.DiscountPrice,
		Currency:           input.Currency,
		DestinationId:      input.DestinationId,
		CategoryId:         input.CategoryId,
		Hotels:             input.Hotels,
		Tours:              tours,
		Transportation:     input.Transportation,
		Inclusions:         input.Inclusions,
		Exclusions:         input.Exclusions,
		Images:             helper.NormalizeMainImage(input.Images),
		CancellationPolicy: input.CancellationPolicy,
		PaymentPolicy:      input.PaymentPolicy,
		TravelStartDate:    travelStart,
		TravelEndDate:      travelEnd,
		Active:             input.Active,
	}
	newPackage.Slug = helper.GenerateUniquePackageSlug(tx, input.Title)
	if newPackage.Currency == "" {
		newPackage.Currency = "USD"
	}
	if newPackage.Active == nil {
		active := true
		newPackage.Active = &active
	}

	if err := tx.Create(&newPackage).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	db.Preload("Destination").Preload("Category").First(&newPackage, newPackage.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, newPackage)
}

func EditPackage(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditPackage").(model.EditPackageInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse package input failed"))
	}
	packageId := c.Locals("packageId").(uint)
	travelStart, _ := c.Locals("travelStart").(*time.Time)
	travelEnd, _ := c.Locals("travelEnd").(*time.Time)

	db := database.DB
	var pkg model.Package
	if err := db.First(&pkg, packageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.DestinationId != nil {
		var destination model.City
		if err := db.First(&destination, *input.DestinationId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Destination does not exist", err, "destinationId")
		}
		pkg.DestinationId = *input.DestinationId
	}
	if input.CategoryId != nil {
		var category model.PackageCategory
		if err := db.First(&category, *input.CategoryId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category does not exist", err, "categoryId")
		}
		pkg.CategoryId = *input.CategoryId
	}
	if input.Tours != nil {
		tours, err := resolveTours(db, *input.Tours)
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Invalid tour selection", err, "tours")
		}
		pkg.Tours = tours
	}

	tx := db.Begin()

	if input.Title != nil && *input.Title != pkg.Title {
		pkg.Title = *input.Title
		pkg.Slug = helper.GenerateUniquePackageSlug(tx, *input.Title)
	}
	if input.Description != nil {
		pkg.Description = input.Description
	}
	if input.BasePrice != nil {
		pkg.BasePrice = *input.BasePrice
	}
	if input.DiscountPrice != nil {
		pkg.DiscountPrice = input.DiscountPrice
	}
	if input.Currency != nil {
		pkg.Currency = *input.Currency
	}
	if input.Hotels != nil {
		pkg.Hotels = *input.Hotels
	}
	if input.Transportation != nil {
		pkg.Transportation = *input.Transportation
	}
	if input.Inclusions != nil {
		pkg.Inclusions = *input.Inclusions
	}
	if input.Exclusions != nil {
		pkg.Exclusions = *input.Exclusions
	}
	if input.Images != nil {
		pkg.Images = helper.NormalizeMainImage(*input.Images)
	}
	if input.CancellationPolicy != nil {
		pkg.CancellationPolicy = *input.CancellationPolicy
	}
	if input.PaymentPolicy != nil {
		pkg.PaymentPolicy = *input.PaymentPolicy
	}
	if input.TravelStartDate != nil {
		pkg.TravelStartDate = travelStart
	}
	if input.TravelEndDate != nil {
		pkg.TravelEndDate = travelEnd
	}
	if input.Active != nil {
		pkg.Active = input.Active
	}

	if err := tx.Save(&pkg).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	var updated model.Package
	db.Preload("Destination").Preload("Category").First(&updated, packageId)
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func DeletePackage(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("packageId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var pkg model.Package
	if err := db.First(&pkg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&pkg).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}
