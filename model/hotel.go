package model

type Hotel struct {
	DTO
	Slug          string               `gorm:"uniqueIndex" json:"slug"`
	Name          string               `gorm:"not null" validate:"required" json:"name"`
	Address       string               `json:"address"`
	Stars         int                  `gorm:"not null" validate:"required,min=1,max=5" json:"stars"`
	Status        string               `gorm:"not null;default:OPEN" json:"status"`
	Amenities     []string             `gorm:"type:json;serializer:json" json:"amenities"`
	Images        []Image              `gorm:"type:json;serializer:json" json:"images"`
	CountryId     uint                 `gorm:"index" json:"countryId"`
	Country       Country              `gorm:"foreignKey:CountryId;references:ID" json:"country,omitempty"`
	CityId        uint                 `gorm:"index" json:"cityId"`
	City          City                 `gorm:"foreignKey:CityId;references:ID" json:"city,omitempty"`
	PricePerNight int64                `json:"pricePerNight"` // minor currency units
	Currency      string               `gorm:"size:3;default:USD" json:"currency"`
	Active        *bool                `gorm:"not null;default:true" json:"isActive"`
	Rooms         []Room               `gorm:"foreignKey:HotelId;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"rooms,omitempty"`
	Facilities    []HotelFacility      `gorm:"many2many:hotel_facility_links" json:"facilities,omitempty"`
	Highlights    []HotelHighlight     `gorm:"many2many:hotel_highlight_links" json:"highlights,omitempty"`
	Cleanliness   []CleanlinessFeature `gorm:"many2many:hotel_cleanliness_links" json:"cleanlinessFeatures,omitempty"`
}

type CreateHotelInput struct {
	Name           string   `json:"name" validate:"required"`
	Address        string   `json:"address"`
	Stars          int      `json:"stars" validate:"required,min=1,max=5"`
	Status         string   `json:"status" validate:"omitempty,oneof=OPEN MAINTENANCE CLOSED"`
	Amenities      []string `json:"amenities"`
	Images         []Image  `json:"images" validate:"omitempty,dive"`
	CountryId      uint     `json:"countryId" validate:"required"`
	CityId         uint     `json:"cityId" validate:"required"`
	PricePerNight  int64    `json:"pricePerNight" validate:"omitempty,min=0"`
	Currency       string   `json:"currency" validate:"omitempty,len=3"`
	FacilityIds    []uint   `json:"facilityIds"`
	HighlightIds   []uint   `json:"highlightIds"`
	CleanlinessIds []uint   `json:"cleanlinessIds"`
	Active         *bool    `json:"isActive"`
}

type EditHotelInput struct {
	Name           *string   `json:"name"`
	Address        *string   `json:"address"`
	Stars          *int      `json:"stars" validate:"omitempty,min=1,max=5"`
	Status         *string   `json:"status" validate:"omitempty,oneof=OPEN MAINTENANCE CLOSED"`
	Amenities      *[]string `json:"amenities"`
	Images         *[]Image  `json:"images" validate:"omitempty,dive"`
	CountryId      *uint     `json:"countryId"`
	CityId         *uint     `json:"cityId"`
	PricePerNight  *int64    `json:"pricePerNight" validate:"omitempty,min=0"`
	Currency       *string   `json:"currency" validate:"omitempty,len=3"`
	FacilityIds    *[]uint   `json:"facilityIds"`
	HighlightIds   *[]uint   `json:"highlightIds"`
	CleanlinessIds *[]uint   `json:"cleanlinessIds"`
	Active         *bool     `json:"isActive"`
}

type FilterHotel struct {
	Pagination
	SearchKey string `json:"searchKey"`
	CountryId uint   `json:"countryId"`
	CityId    uint   `json:"cityId"`
	Stars     int    `json:"stars"`
	Status    string `json:"status"`
	Active    *bool  `json:"active"`
}

type Room struct {
	DTO
	HotelId       uint     `gorm:"not null;index" json:"hotelId"`
	Hotel         Hotel    `gorm:"foreignKey:HotelId;references:ID" json:"-"`
	Type          string   `gorm:"not null" validate:"required" json:"type"`
	PricePerNight int64    `gorm:"not null" validate:"required,min=0" json:"pricePerNight"` // minor currency units
	MaxOccupancy  int      `gorm:"not null" validate:"required,min=1" json:"maxOccupancy"`
	Amenities     []string `gorm:"type:json;serializer:json" json:"amenities"`
}

type CreateRoomInput struct {
	HotelId       uint     `json:"hotelId" validate:"required"`
	Type          string   `json:"type" validate:"required"`
	PricePerNight int64    `json:"pricePerNight" validate:"min=0"`
	MaxOccupancy  int      `json:"maxOccupancy" validate:"required,min=1"`
	Amenities     []string `json:"amenities"`
}

type EditRoomInput struct {
	Type          *string   `json:"type"`
	PricePerNight *int64    `json:"pricePerNight" validate:"omitempty,min=0"`
	MaxOccupancy  *int      `json:"maxOccupancy" validate:"omitempty,min=1"`
	Amenities     *[]string `json:"amenities"`
}

type FilterRoom struct {
	Pagination
	HotelId uint   `json:"hotelId"`
	Type    string `json:"type"`
}
