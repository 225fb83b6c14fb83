package model

// Reference lists feeding hotel feature pickers in the admin UI.

type HotelFacility struct {
	DTO
	Name   string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Icon   string `json:"icon"`
	Active *bool  `gorm:"not null;default:true" json:"isActive"`
}

type HotelHighlight struct {
	DTO
	Name   string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Icon   string `json:"icon"`
	Active *bool  `gorm:"not null;default:true" json:"isActive"`
}

type CleanlinessFeature struct {
	DTO
	Name   string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Icon   string `json:"icon"`
	Active *bool  `gorm:"not null;default:true" json:"isActive"`
}

type PackageCategory struct {
	DTO
	Name        string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Description *string `json:"description"`
	Active      *bool   `gorm:"not null;default:true" json:"isActive"`
}

type CreateReferenceInput struct {
	Name   string `json:"name" validate:"required"`
	Icon   string `json:"icon"`
	Active *bool  `json:"isActive"`
}

type EditReferenceInput struct {
	Name   *string `json:"name"`
	Icon   *string `json:"icon"`
	Active *bool   `json:"isActive"`
}

type CreateCategoryInput struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Active      *bool   `json:"isActive"`
}

type EditCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Active      *bool   `json:"isActive"`
}

type FilterReference struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}
