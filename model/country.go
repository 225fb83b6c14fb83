package model

type Country struct {
	DTO
	Name        string  `gorm:"uniqueIndex;not null" validate:"required" json:"name"`
	Code        string  `gorm:"uniqueIndex;not null;size:3" validate:"required,min=2,max=3" json:"code"`
	Description *string `json:"description"`
	ImageUrl    string  `json:"imageUrl"`
	Active      *bool   `gorm:"not null;default:true" json:"isActive"`
	Cities      []City  `gorm:"foreignKey:CountryId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"cities,omitempty"`
}

type CreateCountryInput struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required,min=2,max=3"`
	Description *string `json:"description"`
	ImageUrl    string  `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type EditCountryInput struct {
	Name        *string `json:"name"`
	Code        *string `json:"code" validate:"omitempty,min=2,max=3"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type FilterCountry struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Active    *bool  `json:"active"`
}

type City struct {
	DTO
	Name        string    `gorm:"not null" validate:"required" json:"name"`
	CountryId   uint      `gorm:"not null;index" json:"countryId"`
	Country     Country   `gorm:"foreignKey:CountryId;references:ID" json:"country,omitempty"`
	Description *string   `json:"description"`
	ImageUrl    string    `json:"imageUrl"`
	Active      *bool     `gorm:"not null;default:true" json:"isActive"`
	Airports    []Airport `gorm:"foreignKey:CityId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"airports,omitempty"`
}

type CreateCityInput struct {
	Name        string  `json:"name" validate:"required"`
	CountryId   uint    `json:"countryId" validate:"required"`
	Description *string `json:"description"`
	ImageUrl    string  `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type EditCityInput struct {
	Name        *string `json:"name"`
	CountryId   *uint   `json:"countryId"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type FilterCity struct {
	Pagination
	SearchKey string `json:"searchKey"`
	CountryId uint   `json:"countryId"`
	Active    *bool  `json:"active"`
}

type Airport struct {
	DTO
	Name        string  `gorm:"not null" validate:"required" json:"name"`
	Code        string  `gorm:"uniqueIndex;not null;size:4" validate:"required,min=3,max=4" json:"code"`
	CityId      uint    `gorm:"not null;index" json:"cityId"`
	City        City    `gorm:"foreignKey:CityId;references:ID" json:"city,omitempty"`
	Description *string `json:"description"`
	ImageUrl    string  `json:"imageUrl"`
	Active      *bool   `gorm:"not null;default:true" json:"isActive"`
}

type CreateAirportInput struct {
	Name        string  `json:"name" validate:"required"`
	Code        string  `json:"code" validate:"required,min=3,max=4"`
	CityId      uint    `json:"cityId" validate:"required"`
	Description *string `json:"description"`
	ImageUrl    string  `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type EditAirportInput struct {
	Name        *string `json:"name"`
	Code        *string `json:"code" validate:"omitempty,min=3,max=4"`
	CityId      *uint   `json:"cityId"`
	Description *string `json:"description"`
	ImageUrl    *string `json:"imageUrl" validate:"omitempty,url"`
	Active      *bool   `json:"isActive"`
}

type FilterAirport struct {
	Pagination
	SearchKey string `json:"searchKey"`
	CityId    uint   `json:"cityId"`
	Active    *bool  `json:"active"`
}
