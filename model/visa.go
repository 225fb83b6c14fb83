package model

type Nationality struct {
	DTO
	Name string `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Code string `gorm:"size:3" validate:"omitempty,min=2,max=3" json:"code"`
}

type CreateNationalityInput struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"omitempty,min=2,max=3"`
}

type EditNationalityInput struct {
	Name *string `json:"name"`
	Code *string `json:"code" validate:"omitempty,min=2,max=3"`
}

type Visa struct {
	DTO
	Name           string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Description    *string `json:"description"`
	ProcessingDays int     `json:"processingDays"`
	Fee            int64   `json:"fee"` // minor currency units
	Active         *bool   `gorm:"not null;default:true" json:"isActive"`
}

type CreateVisaInput struct {
	Name           string  `json:"name" validate:"required"`
	Description    *string `json:"description"`
	ProcessingDays int     `json:"processingDays" validate:"omitempty,min=0"`
	Fee            int64   `json:"fee" validate:"min=0"`
	Active         *bool   `json:"isActive"`
}

type EditVisaInput struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	ProcessingDays *int    `json:"processingDays" validate:"omitempty,min=0"`
	Fee            *int64  `json:"fee" validate:"omitempty,min=0"`
	Active         *bool   `json:"isActive"`
}

// NationalityVisaRequirement is one cell of the eligibility matrix: does a holder
// of this nationality need this visa to enter this country.
type NationalityVisaRequirement struct {
	DTO
	NationalityId uint        `gorm:"not null;uniqueIndex:idx_nationality_country" json:"nationalityId"`
	Nationality   Nationality `gorm:"foreignKey:NationalityId;references:ID" json:"nationality,omitempty"`
	CountryId     uint        `gorm:"not null;uniqueIndex:idx_nationality_country" json:"countryId"`
	Country       Country     `gorm:"foreignKey:CountryId;references:ID" json:"country,omitempty"`
	VisaId        *uint       `json:"visaId"`
	Visa          *Visa       `gorm:"foreignKey:VisaId;references:ID" json:"visa,omitempty"`
	Required      bool        `gorm:"not null;default:true" json:"required"`
	Notes         *string     `json:"notes"`
}

type CreateRequirementInput struct {
	NationalityId uint    `json:"nationalityId" validate:"required"`
	CountryId     uint    `json:"countryId" validate:"required"`
	VisaId        *uint   `json:"visaId"`
	Required      *bool   `json:"required"`
	Notes         *string `json:"notes"`
}

type EditRequirementInput struct {
	VisaId   *uint   `json:"visaId"`
	Required *bool   `json:"required"`
	Notes    *string `json:"notes"`
}

type FilterRequirement struct {
	Pagination
	NationalityId uint `json:"nationalityId"`
	CountryId     uint `json:"countryId"`
}
