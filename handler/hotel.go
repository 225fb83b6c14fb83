package handler

import (
	"errors"
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

func GetHotels(c *fiber.Ctx) error {
	filter := new(model.FilterHotel)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Hotel{})
	if filter.SearchKey != "" {
		search := "%" + strings.ToLower(filter.SearchKey) + "%"
		db = db.Where(database.DB.
			Where("LOWER(name) LIKE ?", search).
			Or("LOWER(address) LIKE ?", search))
	}
	if filter.CountryId != 0 {
		db = db.Where("country_id = ?", filter.CountryId)
	}
	if filter.CityId != 0 {
		db = db.Where("city_id = ?", filter.CityId)
	}
	if filter.Stars != 0 {
		db = db.Where("stars = ?", filter.Stars)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Active != nil {
		db = db.Where("active = ?", *filter.Active)
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var hotels []model.Hotel
	err := db.
		Preload("Country").
		Preload("City").
		Preload("Rooms").
		Order("id DESC").
		Find(&hotels).Error
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       hotels,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetHotelById(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("hotelId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	var hotel model.Hotel
	err = database.DB.
		Preload("Country").
		Preload("City").
		Preload("Rooms").
		Preload("Facilities").
		Preload("Highlights").
		Preload("Cleanliness").
		First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}

// GetHotelDetail is the public booking-widget read, addressed by slug.
func GetHotelDetail(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, 400, "slug is required", nil)
	}

	var hotel model.Hotel
	err := database.DB.
		Preload("Country").
		Preload("City").
		Preload("Rooms").
		Preload("Facilities").
		Preload("Highlights").
		Where("slug = ? AND active = ?", slug, true).
		First(&hotel).Error
	if err != nil {
		return utils.ErrorResponse(c, 404, "Hotel not found", err)
	}

	return utils.SuccessResponse(c, 200, hotel)
}

func loadFeatureLinks(tx *gorm.DB, hotel *model.Hotel, facilityIds, highlightIds, cleanlinessIds []uint) error {
	if facilityIds != nil {
		var facilities []model.HotelFacility
		if err := tx.Find(&facilities, facilityIds).Error; err != nil {
			return err
		}
		if err := tx.Model(hotel).Association("Facilities").Replace(facilities); err != nil {
			return err
		}
	}
	if highlightIds != nil {
		var highlights []model.HotelHighlight
		if err := tx.Find(&highlights, highlightIds).Error; err != nil {
			return err
		}
		if err := tx.Model(hotel).Association("Highlights").Replace(highlights); err != nil {
			return err
		}
	}
	if cleanlinessIds != nil {
		var cleanliness []model.CleanlinessFeature
		if err := tx.Find(&cleanliness, cleanlinessIds).Error; err != nil {
			return err
		}
		if err := tx.Model(hotel).Association("Cleanliness").Replace(cleanliness); err != nil {
			return err
		}
	}
	return nil
}

func CreateHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateHotel").(model.CreateHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse hotel input failed"))
	}

	db := database.DB

	var city model.City
	if err := db.First(&city, input.CityId).Error; err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "City does not exist", err, "cityId")
	}
	if city.CountryId != input.CountryId {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "City does not belong to country", nil, "cityId")
	}

	tx := db.Begin()

	newHotel := new(model.Hotel)
	copier.Copy(&newHotel, input)
	newHotel.Images = helper.NormalizeMainImage(input.Images)
	newHotel.Slug = helper.GenerateUniqueHotelSlug(tx, input.Name)
	if newHotel.Status == "" {
		newHotel.Status = constants.HOTEL_STATUS_OPEN
	}
	if newHotel.Currency == "" {
		newHotel.Currency = "USD"
	}
	if newHotel.Active == nil {
		active := true
		newHotel.Active = &active
	}

	if err := tx.Create(&newHotel).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	if err := loadFeatureLinks(tx, newHotel, input.FacilityIds, input.HighlightIds, input.CleanlinessIds); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}
	tx.Commit()

	db.Preload("Country").Preload("City").Preload("Facilities").Preload("Highlights").Preload("Cleanliness").First(&newHotel, newHotel.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, newHotel)
}

func EditHotel(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditHotel").(model.EditHotelInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse hotel input failed"))
	}
	hotelId := c.Locals("hotelId").(uint)

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, hotelId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	tx := db.Begin()

	if input.Name != nil && *input.Name != hotel.Name {
		hotel.Name = *input.Name
		hotel.Slug = helper.GenerateUniqueHotelSlug(tx, *input.Name)
	}
	if input.Address != nil {
		hotel.Address = *input.Address
	}
	if input.Stars != nil {
		hotel.Stars = *input.Stars
	}
	if input.Status != nil {
		hotel.Status = *input.Status
	}
	if input.Amenities != nil {
		hotel.Amenities = *input.Amenities
	}
	if input.Images != nil {
		hotel.Images = helper.NormalizeMainImage(*input.Images)
	}
	if input.CountryId != nil {
		hotel.CountryId = *input.CountryId
	}
	if input.CityId != nil {
		hotel.CityId = *input.CityId
	}
	if input.PricePerNight != nil {
		hotel.PricePerNight = *input.PricePerNight
	}
	if input.Currency != nil {
		hotel.Currency = *input.Currency
	}
	if input.Active != nil {
		hotel.Active = input.Active
	}

	if err := tx.Save(&hotel).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	var facilityIds, highlightIds, cleanlinessIds []uint
	if input.FacilityIds != nil {
		facilityIds = *input.FacilityIds
	}
	if input.HighlightIds != nil {
		highlightIds = *input.HighlightIds
	}
	if input.CleanlinessIds != nil {
		cleanlinessIds = *input.CleanlinessIds
	}
	if err := loadFeatureLinks(tx, &hotel, facilityIds, highlightIds, cleanlinessIds); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tx.Commit()

	var updated model.Hotel
	db.Preload("Country").Preload("City").Preload("Rooms").Preload("Facilities").Preload("Highlights").Preload("Cleanliness").First(&updated, hotelId)
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func DeleteHotel(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("hotelId"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
	}

	db := database.DB
	var hotel model.Hotel
	if err := db.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var roomCount int64
	db.Model(&model.Room{}).Where("hotel_id = ?", id).Count(&roomCount)
	if roomCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.HOTEL_HAS_ROOMS, errors.New("hotel has rooms"))
	}

	if err := db.Delete(&hotel).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, hotel)
}
