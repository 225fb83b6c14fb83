package handler

import (
	"path/filepath"
	"strings"

	"travel_manager/constants"
	"travel_manager/helper"
	"travel_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

// UploadImage accepts one multipart file under "image" and returns the
// Cloudinary secure URL.
func UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "image file is required", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only png, jpg, jpeg and webp files are accepted", nil, "image")
	}

	f, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	defer f.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(c.Context(), f, uploader.UploadParams{
		Folder:       "travel/images",
		PublicID:     uuid.NewString(),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"url":      result.SecureURL,
		"publicId": result.PublicID,
	})
}
