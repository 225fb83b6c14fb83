package handler

import (
	"errors"
	"strings"

	"travel_manager/constants"
	"travel_manager/database"
	"travel_manager/model"
	"travel_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newReferenceCode() string {
	return "INQ-" + strings.ToUpper(uuid.NewString()[:8])
}

// CreateInquiry is the public booking-widget endpoint. The sales inbox is
// notified asynchronously so a slow SMTP server never delays the response.
func CreateInquiry(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateInquiry").(model.CreateInquiryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("parse inquiry input failed"))
	}

	db := database.DB

	var pkg model.Package
	err := db.Where("id = ? AND active = ?", input.PackageId, true).First(&pkg).Error
	if err != nil {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Package is not available", err, "packageId")
	}

	inquiry := model.BookingInquiry{
		PackageId:     input.PackageId,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Travelers:     input.Travelers,
		TravelDate:    input.TravelDate,
		Message:       input.Message,
		ReferenceCode: newReferenceCode(),
		Status:        constants.INQUIRY_STATUS_NEW,
	}
	if err := db.Create(&inquiry).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	notification := utils.InquiryNotificationData{
		ReferenceCode: inquiry.ReferenceCode,
		PackageTitle:  pkg.Title,
		Name:          inquiry.Name,
		Email:         inquiry.Email,
		Phone:         inquiry.Phone,
		Travelers:     inquiry.Travelers,
	}
	if inquiry.TravelDate != nil {
		notification.TravelDate = *inquiry.TravelDate
	}
	if inquiry.Message != nil {
		notification.Message = *inquiry.Message
	}
	utils.SendInquiryNotification(notification)

	return utils.SuccessResponse(c, fiber.StatusOK, inquiry)
}

// GetInquiryQR returns a PNG encoding the inquiry reference, shown on the
// widget confirmation screen.
func GetInquiryQR(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "reference is required", nil)
	}

	var inquiry model.BookingInquiry
	if err := database.DB.Where("reference_code = ?", reference).First(&inquiry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	image, err := utils.GenerateQRCode(inquiry.ReferenceCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(image)
}

func GetInquiries(c *fiber.Ctx) error {
	filter := new(model.FilterInquiry)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.BookingInquiry{})
	if filter.PackageId != 0 {
		db = db.Where("package_id = ?", filter.PackageId)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", strings.ToUpper(filter.Status))
	}

	var totalCount int64
	db.Count(&totalCount)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var inquiries []model.BookingInquiry
	if err := db.Preload("Package").Order("id DESC").Find(&inquiries).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       inquiries,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}
