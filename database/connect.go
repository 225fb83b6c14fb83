package database

import (
	"fmt"
	"strconv"

	"travel_manager/config"
	"travel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// DSN builds the connection string. DATABASE_URL wins; the discrete DB_* variables
// are the fallback for local setups.
func DSN() string {
	if url := config.Config("DATABASE_URL"); url != "" {
		return url
	}
	p := config.ConfigDefault("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"),
		config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
}

func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Country{},
		&model.City{},
		&model.Airport{},
		&model.HotelFacility{},
		&model.HotelHighlight{},
		&model.CleanlinessFeature{},
		&model.Hotel{},
		&model.Room{},
		&model.PackageCategory{},
		&model.Tour{},
		&model.Package{},
		&model.Nationality{},
		&model.Visa{},
		&model.NationalityVisaRequirement{},
		&model.Translation{},
		&model.LanguageSetting{},
		&model.BookingInquiry{},
	)
	fmt.Println("Database Migrated")

	SeedData(DB)
}
