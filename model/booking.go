package model

type BookingInquiry struct {
	DTO
	PackageId     uint    `gorm:"not null;index" json:"packageId"`
	Package       Package `gorm:"foreignKey:PackageId;references:ID" json:"package,omitempty"`
	Name          string  `gorm:"not null" validate:"required" json:"name"`
	Email         string  `gorm:"not null" validate:"required,email" json:"email"`
	Phone         string  `json:"phone"`
	Travelers     int     `gorm:"not null;default:1" json:"travelers"`
	TravelDate    *string `json:"travelDate"`
	Message       *string `json:"message"`
	ReferenceCode string  `gorm:"uniqueIndex;not null" json:"referenceCode"`
	Status        string  `gorm:"not null;default:NEW" json:"status"`
}

type CreateInquiryInput struct {
	PackageId  uint    `json:"packageId" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Phone      string  `json:"phone"`
	Travelers  int     `json:"travelers" validate:"omitempty,min=1"`
	TravelDate *string `json:"travelDate"` // YYYY-MM-DD
	Message    *string `json:"message"`
}

type FilterInquiry struct {
	Pagination
	PackageId uint   `json:"packageId"`
	Status    string `json:"status"`
}
