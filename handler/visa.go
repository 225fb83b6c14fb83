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

func GetNationalities(c *fiber.Ctx) error {
	filter := new(model.FilterReference)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Nationality{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var nationalities []model.Nationality
	if err := db.Order("name ASC").Find(&nationalities).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       nationalities,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateNationality(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateNationality").(model.CreateNationalityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse nationality input failed"))
	}

	db := database.DB
	var existing model.Nationality
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Nationality already exists", nil, "name")
	}

	newNationality := new(model.Nationality)
	copier.Copy(&newNationality, input)

	if err := db.Create(&newNationality).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newNationality)
}

func EditNationality(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditNationality").(model.EditNationalityInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse nationality input failed"))
	}
	nationalityId := c.Locals("nationalityId").(uint)

	db := database.DB
	var nationality model.Nationality
	if err := db.First(&nationality, nationalityId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Code != nil {
		updateData["code"] = *input.Code
	}
	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := db.Model(&nationality).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.First(&nationality, nationalityId)

	return utils.SuccessResponse(c, fiber.StatusOK, nationality)
}

func DeleteNationality(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("nationalityId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var nationality model.Nationality
	if err := db.First(&nationality, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Requirements referencing the nationality go with it.
	if err := db.Where("nationality_id = ?", id).Delete(&model.NationalityVisaRequirement{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := db.Delete(&nationality).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, nationality)
}

func GetVisas(c *fiber.Ctx) error {
	filter := new(model.FilterReference)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Visa{})
	if filter.SearchKey != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.SearchKey)+"%")
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var visas []model.Visa
	if err := db.Order("name ASC").Find(&visas).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       visas,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateVisa(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateVisa").(model.CreateVisaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse visa input failed"))
	}

	db := database.DB
	var existing model.Visa
	if err := db.Where("name = ?", input.Name).First(&existing).Error; err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Visa already exists", nil, "name")
	}

	newVisa := new(model.Visa)
	copier.Copy(&newVisa, input)
	if newVisa.Active == nil {
		active := true
		newVisa.Active = &active
	}

	if err := db.Create(&newVisa).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, newVisa)
}

func EditVisa(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditVisa").(model.EditVisaInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse visa input failed"))
	}
	visaId := c.Locals("visaId").(uint)

	db := database.DB
	var visa model.Visa
	if err := db.First(&visa, visaId).Error; err != nil {
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
	if input.ProcessingDays != nil {
		updateData["processing_days"] = *input.ProcessingDays
	}
	if input.Fee != nil {
		updateData["fee"] = *input.Fee
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := db.Model(&visa).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.First(&visa, visaId)

	return utils.SuccessResponse(c, fiber.StatusOK, visa)
}

func DeleteVisa(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("visaId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var visa model.Visa
	if err := db.First(&visa, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Requirements keep their row but lose the visa reference.
	if err := db.Model(&model.NationalityVisaRequirement{}).
		Where("visa_id = ?", id).
		Update("visa_id", nil).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := db.Delete(&visa).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, visa)
}

func GetRequirements(c *fiber.Ctx) error {
	filter := new(model.FilterRequirement)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.NationalityVisaRequirement{})
	if filter.NationalityId != 0 {
		db = db.Where("nationality_id = ?", filter.NationalityId)
	}
	if filter.CountryId != 0 {
		db = db.Where("country_id = ?", filter.CountryId)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var requirements []model.NationalityVisaRequirement
	err := db.
		Preload("Nationality").
		Preload("Country").
		Preload("Visa").
		Order("id ASC").
		Find(&requirements).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       requirements,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func CreateRequirement(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateRequirement").(model.CreateRequirementInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse requirement input failed"))
	}

	db := database.DB

	var nationality model.Nationality
	if err := db.First(&nationality, input.NationalityId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Nationality does not exist", err, "nationalityId")
	}
	var country model.Country
	if err := db.First(&country, input.CountryId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Country does not exist", err, "countryId")
	}
	if input.VisaId != nil {
		var visa model.Visa
		if err := db.First(&visa, *input.VisaId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Visa does not exist", err, "visaId")
		}
	}

	var existing model.NationalityVisaRequirement
	err := db.Where("nationality_id = ? AND country_id = ?", input.NationalityId, input.CountryId).
		First(&existing).Error
	if err == nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Requirement already exists for this nationality and country", nil, "countryId")
	}

	required := true
	if input.Required != nil {
		required = *input.Required
	}
	newRequirement := model.NationalityVisaRequirement{
		NationalityId: input.NationalityId,
		CountryId:     input.CountryId,
		VisaId:        input.VisaId,
		Required:      required,
		Notes:         input.Notes,
	}

	if err := db.Create(&newRequirement).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Nationality").Preload("Country").Preload("Visa").First(&newRequirement, newRequirement.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, newRequirement)
}

func EditRequirement(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditRequirement").(model.EditRequirementInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse requirement input failed"))
	}
	requirementId := c.Locals("requirementId").(uint)

	db := database.DB
	var requirement model.NationalityVisaRequirement
	if err := db.First(&requirement, requirementId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.VisaId != nil {
		var visa model.Visa
		if err := db.First(&visa, *input.VisaId).Error; err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Visa does not exist", err, "visaId")
		}
	}

	updateData := map[string]interface{}{}
	if input.VisaId != nil {
		updateData["visa_id"] = *input.VisaId
	}
	if input.Required != nil {
		updateData["required"] = *input.Required
	}
	if input.Notes != nil {
		updateData["notes"] = *input.Notes
	}
	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Nothing to update", nil)
	}

	if err := db.Model(&requirement).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	db.Preload("Nationality").Preload("Country").Preload("Visa").First(&requirement, requirementId)

	return utils.SuccessResponse(c, fiber.StatusOK, requirement)
}

func DeleteRequirement(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("requirementId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var requirement model.NationalityVisaRequirement
	if err := db.First(&requirement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := db.Delete(&requirement).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, requirement)
}
