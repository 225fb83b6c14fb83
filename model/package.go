package model

import "time"

// PackageRoom and PackageHotel form the denormalized snapshot a package stores.
// The snapshot is written as one JSON column instead of cross-table rows, so a
// package keeps selling at the composed price even when the source hotel changes.
type PackageRoom struct {
	Type          string `json:"type" validate:"required"`
	PricePerNight int64  `json:"pricePerNight" validate:"min=0"`
	MaxOccupancy  int    `json:"maxOccupancy" validate:"required,min=1"`
}

type PackageHotel struct {
	HotelId uint          `json:"hotelId"`
	Name    string        `json:"name" validate:"required"`
	Stars   int           `json:"stars" validate:"required,min=1,max=5"`
	Rooms   []PackageRoom `json:"rooms" validate:"required,min=1,dive"`
}

// PackageTour is a selected tour with an optional admin price override.
type PackageTour struct {
	TourId        uint   `json:"tourId" validate:"required"`
	Name          string `json:"name"`
	Price         int64  `json:"price" validate:"min=0"`
	PriceOverride *int64 `json:"priceOverride" validate:"omitempty,min=0"`
}

type Package struct {
	DTO
	Slug            string          `gorm:"uniqueIndex" json:"slug"`
	Title           string          `gorm:"not null" validate:"required" json:"title"`
	Description     *string         `json:"description"`
	BasePrice       int64           `gorm:"not null" json:"basePrice"` // minor currency units
	DiscountPrice   *int64          `json:"discountPrice"`
	Currency        string          `gorm:"size:3;default:USD" json:"currency"`
	DestinationId   uint            `gorm:"index" json:"destinationId"`
	Destination     City            `gorm:"foreignKey:DestinationId;references:ID" json:"destination,omitempty"`
	CategoryId      uint            `gorm:"index" json:"categoryId"`
	Category        PackageCategory `gorm:"foreignKey:CategoryId;references:ID" json:"category,omitempty"`
	Hotels          []PackageHotel  `gorm:"type:json;serializer:json" json:"hotels"`
	Tours           []PackageTour   `gorm:"type:json;serializer:json" json:"tours"`
	Transportation  string          `json:"transportation"`
	Inclusions      []string        `gorm:"type:json;serializer:json" json:"inclusions"`
	Exclusions      []string        `gorm:"type:json;serializer:json" json:"exclusions"`
	Images          []Image         `gorm:"type:json;serializer:json" json:"images"`
	CancellationPolicy string       `json:"cancellationPolicy"`
	PaymentPolicy   string          `json:"paymentPolicy"`
	TravelStartDate *time.Time      `json:"travelStartDate"`
	TravelEndDate   *time.Time      `json:"travelEndDate"`
	Active          *bool           `gorm:"not null;default:true" json:"isActive"`
}

type CreatePackageInput struct {
	Title           string         `json:"title" validate:"required"`
	Description     *string        `json:"description"`
	BasePrice       int64          `json:"basePrice" validate:"min=0"`
	DiscountPrice   *int64         `json:"discountPrice" validate:"omitempty,min=0"`
	Currency        string         `json:"currency" validate:"omitempty,len=3"`
	DestinationId   uint           `json:"destinationId" validate:"required"`
	CategoryId      uint           `json:"categoryId" validate:"required"`
	Hotels          []PackageHotel `json:"hotels" validate:"required,min=1,dive"`
	Tours           []PackageTour  `json:"tours" validate:"omitempty,dive"`
	Transportation  string         `json:"transportation"`
	Inclusions      []string       `json:"inclusions" validate:"required,min=1,dive,required"`
	Exclusions      []string       `json:"exclusions"`
	Images          []Image        `json:"images" validate:"omitempty,dive"`
	CancellationPolicy string      `json:"cancellationPolicy"`
	PaymentPolicy   string         `json:"paymentPolicy"`
	TravelStartDate *string        `json:"travelStartDate"` // YYYY-MM-DD
	TravelEndDate   *string        `json:"travelEndDate"`
	Active          *bool          `json:"isActive"`
}

type EditPackageInput struct {
	Title           *string         `json:"title"`
	Description     *string         `json:"description"`
	BasePrice       *int64          `json:"basePrice" validate:"omitempty,min=0"`
	DiscountPrice   *int64          `json:"discountPrice" validate:"omitempty,min=0"`
	Currency        *string         `json:"currency" validate:"omitempty,len=3"`
	DestinationId   *uint           `json:"destinationId"`
	CategoryId      *uint           `json:"categoryId"`
	Hotels          *[]PackageHotel `json:"hotels" validate:"omitempty,min=1,dive"`
	Tours           *[]PackageTour  `json:"tours" validate:"omitempty,dive"`
	Transportation  *string         `json:"transportation"`
	Inclusions      *[]string       `json:"inclusions" validate:"omitempty,min=1,dive,required"`
	Exclusions      *[]string       `json:"exclusions"`
	Images          *[]Image        `json:"images" validate:"omitempty,dive"`
	CancellationPolicy *string      `json:"cancellationPolicy"`
	PaymentPolicy   *string         `json:"paymentPolicy"`
	TravelStartDate *string         `json:"travelStartDate"`
	TravelEndDate   *string         `json:"travelEndDate"`
	Active          *bool           `json:"isActive"`
}

type FilterPackage struct {
	Pagination
	SearchKey     string `json:"searchKey"`
	DestinationId uint   `json:"destinationId"`
	CategoryId    uint   `json:"categoryId"`
	Active        *bool  `json:"active"`
}
