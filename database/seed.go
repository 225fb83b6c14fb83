package database

import (
	"log"

	"travel_manager/constants"
	"travel_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// SeedData fills the reference tables used by the admin dropdowns. Everything goes
// through FirstOrCreate so restarting the server never duplicates rows.
func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("admin123!"), 10)
	hashPassword := string(bytes)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	accounts := []model.Account{
		{Username: "Administration", Password: hashPassword, Active: true, Role: constants.ROLE_ADMIN},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	countries := []model.Country{
		{Name: "United Arab Emirates", Code: "AE", Description: strPtr("Gulf destination hub")},
		{Name: "Turkey", Code: "TR"},
		{Name: "Egypt", Code: "EG"},
		{Name: "Thailand", Code: "TH"},
		{Name: "Georgia", Code: "GE"},
	}
	countryIds := map[string]uint{}
	for _, country := range countries {
		if err := db.Where(model.Country{Code: country.Code}).FirstOrCreate(&country).Error; err != nil {
			log.Println("failed to seed country:", country.Name, "error:", err)
			continue
		}
		countryIds[country.Code] = country.ID
	}

	cities := []struct {
		Name        string
		CountryCode string
	}{
		{"Dubai", "AE"},
		{"Abu Dhabi", "AE"},
		{"Istanbul", "TR"},
		{"Antalya", "TR"},
		{"Cairo", "EG"},
		{"Bangkok", "TH"},
		{"Phuket", "TH"},
		{"Tbilisi", "GE"},
	}
	cityIds := map[string]uint{}
	for _, c := range cities {
		countryId, ok := countryIds[c.CountryCode]
		if !ok {
			continue
		}
		city := model.City{Name: c.Name, CountryId: countryId}
		if err := db.Where(model.City{Name: c.Name, CountryId: countryId}).FirstOrCreate(&city).Error; err != nil {
			log.Println("failed to seed city:", c.Name, "error:", err)
			continue
		}
		cityIds[c.Name] = city.ID
	}

	airports := []struct {
		Name string
		Code string
		City string
	}{
		{"Dubai International", "DXB", "Dubai"},
		{"Istanbul Airport", "IST", "Istanbul"},
		{"Cairo International", "CAI", "Cairo"},
		{"Suvarnabhumi", "BKK", "Bangkok"},
		{"Tbilisi International", "TBS", "Tbilisi"},
	}
	for _, a := range airports {
		cityId, ok := cityIds[a.City]
		if !ok {
			continue
		}
		airport := model.Airport{Name: a.Name, Code: a.Code, CityId: cityId}
		if err := db.Where(model.Airport{Code: a.Code}).FirstOrCreate(&airport).Error; err != nil {
			log.Println("failed to seed airport:", a.Code, "error:", err)
		}
	}

	categories := []model.PackageCategory{
		{Name: "Honeymoon"},
		{Name: "Family"},
		{Name: "Adventure"},
		{Name: "City Break"},
		{Name: "Luxury"},
	}
	for _, category := range categories {
		if err := db.Where(model.PackageCategory{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", category.Name, "error:", err)
		}
	}

	facilities := []model.HotelFacility{
		{Name: "Free WiFi"}, {Name: "Swimming Pool"}, {Name: "Spa"},
		{Name: "Gym"}, {Name: "Airport Shuttle"}, {Name: "Restaurant"},
	}
	for _, f := range facilities {
		if err := db.Where(model.HotelFacility{Name: f.Name}).FirstOrCreate(&f).Error; err != nil {
			log.Println("failed to seed facility:", f.Name, "error:", err)
		}
	}
	highlights := []model.HotelHighlight{
		{Name: "Sea View"}, {Name: "City Center"}, {Name: "Near Metro"}, {Name: "Private Beach"},
	}
	for _, h := range highlights {
		if err := db.Where(model.HotelHighlight{Name: h.Name}).FirstOrCreate(&h).Error; err != nil {
			log.Println("failed to seed highlight:", h.Name, "error:", err)
		}
	}
	cleanliness := []model.CleanlinessFeature{
		{Name: "Daily Housekeeping"}, {Name: "Sanitized Rooms"}, {Name: "Contactless Check-in"},
	}
	for _, f := range cleanliness {
		if err := db.Where(model.CleanlinessFeature{Name: f.Name}).FirstOrCreate(&f).Error; err != nil {
			log.Println("failed to seed cleanliness feature:", f.Name, "error:", err)
		}
	}

	nationalities := []model.Nationality{
		{Name: "Emirati", Code: "AE"},
		{Name: "Turkish", Code: "TR"},
		{Name: "Egyptian", Code: "EG"},
		{Name: "Thai", Code: "TH"},
		{Name: "Georgian", Code: "GE"},
	}
	for _, n := range nationalities {
		if err := db.Where(model.Nationality{Name: n.Name}).FirstOrCreate(&n).Error; err != nil {
			log.Println("failed to seed nationality:", n.Name, "error:", err)
		}
	}

	translations := []model.Translation{
		{Key: "home.title", Language: "en", Value: "Find your next trip"},
		{Key: "home.title", Language: "ar", Value: "اعثر على رحلتك القادمة"},
		{Key: "booking.submit", Language: "en", Value: "Request booking"},
		{Key: "booking.submit", Language: "ar", Value: "اطلب الحجز"},
	}
	for _, t := range translations {
		if err := db.Where(model.Translation{Key: t.Key, Language: t.Language}).FirstOrCreate(&t).Error; err != nil {
			log.Println("failed to seed translation:", t.Key, t.Language, "error:", err)
		}
	}

	setting := model.LanguageSetting{
		SiteKey:          "default",
		DefaultLanguage:  "en",
		EnabledLanguages: []string{"en", "ar", "tr"},
		RtlLanguages:     []string{"ar"},
	}
	if err := db.Where(model.LanguageSetting{SiteKey: "default"}).FirstOrCreate(&setting).Error; err != nil {
		log.Println("failed to seed language settings:", err)
	}
}
