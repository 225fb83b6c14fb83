package model

type Tour struct {
	DTO
	Name          string  `gorm:"not null" validate:"required" json:"name"`
	CityId        uint    `gorm:"index" json:"cityId"`
	City          City    `gorm:"foreignKey:CityId;references:ID" json:"city,omitempty"`
	Description   *string `json:"description"`
	DurationHours int     `json:"durationHours"`
	Price         int64   `gorm:"not null" json:"price"` // minor currency units
	ImageUrl      string  `json:"imageUrl"`
	Active        *bool   `gorm:"not null;default:true" json:"isActive"`
}

type CreateTourInput struct {
	Name          string  `json:"name" validate:"required"`
	CityId        uint    `json:"cityId" validate:"required"`
	Description   *string `json:"description"`
	DurationHours int     `json:"durationHours" validate:"omitempty,min=1"`
	Price         int64   `json:"price" validate:"min=0"`
	ImageUrl      string  `json:"imageUrl" validate:"omitempty,url"`
	Active        *bool   `json:"isActive"`
}

type EditTourInput struct {
	Name          *string `json:"name"`
	CityId        *uint   `json:"cityId"`
	Description   *string `json:"description"`
	DurationHours *int    `json:"durationHours" validate:"omitempty,min=1"`
	Price         *int64  `json:"price" validate:"omitempty,min=0"`
	ImageUrl      *string `json:"imageUrl" validate:"omitempty,url"`
	Active        *bool   `json:"isActive"`
}

type FilterTour struct {
	Pagination
	SearchKey string `json:"searchKey"`
	CityId    uint   `json:"cityId"`
	Active    *bool  `json:"active"`
}
