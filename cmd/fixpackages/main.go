package main

import (
	"log"
	"os"

	"travel_manager/database"
	"travel_manager/helper"
	"travel_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// One-off backfill: recover the structured hotel/tour selection of legacy
// packages from their generated description text. Rows that cannot be parsed
// are logged and left untouched.
func main() {
	db, err := gorm.Open(postgres.Open(database.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("cannot connect to database: %v", err)
	}

	var packages []model.Package
	err = db.
		Where("(hotels IS NULL OR hotels::text IN ('', 'null', '[]'))").
		Where("description IS NOT NULL AND description <> ''").
		Find(&packages).Error
	if err != nil {
		log.Fatalf("cannot load packages: %v", err)
	}

	log.Printf("found %d packages with empty hotel data", len(packages))

	var fixed, skipped int
	for _, pkg := range packages {
		data, ok := helper.ParseLegacyDescription(*pkg.Description)
		if !ok {
			log.Printf("package %d (%s): description does not match the generated format, skipping", pkg.ID, pkg.Slug)
			skipped++
			continue
		}

		updates := map[string]interface{}{"hotels": data.Hotels}
		if len(data.Tours) > 0 {
			updates["tours"] = data.Tours
		}

		if err := db.Model(&model.Package{}).Where("id = ?", pkg.ID).Updates(updates).Error; err != nil {
			log.Printf("package %d: update failed: %v", pkg.ID, err)
			os.Exit(1)
		}
		fixed++
	}

	log.Printf("done: %d fixed, %d skipped", fixed, skipped)
}
