package router

import (
	"travel_manager/handler"
	"travel_manager/middleware"
	"travel_manager/validate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())

	auth := api.Group("/v1/auth")
	auth.Post("/login", validate.Login(), handler.Login)
	auth.Post("/refresh-token", validate.RefreshToken(), handler.RefreshToken)

	admin := api.Group("/admin", logger.New())
	admin.Get("/me", middleware.Protected(), handler.Me)

	country := admin.Group("/countries")
	country.Get("/", handler.GetCountries)
	country.Get("/:countryId", validate.GetById("countryId"), handler.GetCountryById)
	country.Post("/", middleware.Protected(), validate.CreateCountry(), handler.CreateCountry)
	country.Put("/:countryId", middleware.Protected(), validate.EditCountry("countryId"), handler.EditCountry)
	country.Delete("/:countryId", middleware.Protected(), handler.DeleteCountry)
	country.Post("/bulk", middleware.Protected(), validate.BulkAction(), handler.BulkCountries)

	city := admin.Group("/cities")
	city.Get("/", handler.GetCities)
	city.Get("/:cityId", validate.GetById("cityId"), handler.GetCityById)
	city.Post("/", middleware.Protected(), validate.CreateCity(), handler.CreateCity)
	city.Put("/:cityId", middleware.Protected(), validate.EditCity("cityId"), handler.EditCity)
	city.Delete("/:cityId", middleware.Protected(), handler.DeleteCity)
	city.Post("/bulk", middleware.Protected(), validate.BulkAction(), handler.BulkCities)

	airport := admin.Group("/airports")
	airport.Get("/", handler.GetAirports)
	airport.Get("/:airportId", validate.GetById("airportId"), handler.GetAirportById)
	airport.Post("/", middleware.Protected(), validate.CreateAirport(), handler.CreateAirport)
	airport.Put("/:airportId", middleware.Protected(), validate.EditAirport("airportId"), handler.EditAirport)
	airport.Delete("/:airportId", middleware.Protected(), handler.DeleteAirport)
	airport.Post("/bulk", middleware.Protected(), validate.BulkAction(), handler.BulkAirports)

	hotel := admin.Group("/hotels")
	hotel.Get("/", handler.GetHotels)
	hotel.Get("/:hotelId", validate.GetById("hotelId"), handler.GetHotelById)
	hotel.Post("/", middleware.Protected(), validate.CreateHotel(), handler.CreateHotel)
	hotel.Put("/:hotelId", middleware.Protected(), validate.EditHotel("hotelId"), handler.EditHotel)
	hotel.Delete("/:hotelId", middleware.Protected(), handler.DeleteHotel)

	room := admin.Group("/rooms")
	room.Get("/", handler.GetRooms)
	room.Get("/:roomId", validate.GetById("roomId"), handler.GetRoomById)
	room.Post("/", middleware.Protected(), validate.CreateRoom(), handler.CreateRoom)
	room.Put("/:roomId", middleware.Protected(), validate.EditRoom("roomId"), handler.EditRoom)
	room.Delete("/:roomId", middleware.Protected(), handler.DeleteRoom)

	facility := admin.Group("/hotel-facilities")
	facility.Get("/", handler.GetHotelFacilities)
	facility.Get("/:facilityId", validate.GetById("facilityId"), handler.GetHotelFacility)
	facility.Post("/", middleware.Protected(), validate.CreateReference(), handler.CreateHotelFacility)
	facility.Put("/:facilityId", middleware.Protected(), validate.EditReference("facilityId"), handler.EditHotelFacility)
	facility.Delete("/:facilityId", middleware.Protected(), handler.DeleteHotelFacility)

	highlight := admin.Group("/hotel-highlights")
	highlight.Get("/", handler.GetHotelHighlights)
	highlight.Get("/:highlightId", validate.GetById("highlightId"), handler.GetHotelHighlight)
	highlight.Post("/", middleware.Protected(), validate.CreateReference(), handler.CreateHotelHighlight)
	highlight.Put("/:highlightId", middleware.Protected(), validate.EditReference("highlightId"), handler.EditHotelHighlight)
	highlight.Delete("/:highlightId", middleware.Protected(), handler.DeleteHotelHighlight)

	cleanliness := admin.Group("/cleanliness-features")
	cleanliness.Get("/", handler.GetCleanlinessFeatures)
	cleanliness.Get("/:featureId", validate.GetById("featureId"), handler.GetCleanlinessFeature)
	cleanliness.Post("/", middleware.Protected(), validate.CreateReference(), handler.CreateCleanlinessFeature)
	cleanliness.Put("/:featureId", middleware.Protected(), validate.EditReference("featureId"), handler.EditCleanlinessFeature)
	cleanliness.Delete("/:featureId", middleware.Protected(), handler.DeleteCleanlinessFeature)

	pkg := admin.Group("/packages")
	pkg.Get("/", handler.GetPackages)
	pkg.Get("/:packageId", validate.GetById("packageId"), handler.GetPackageById)
	pkg.Post("/", middleware.Protected(), validate.CreatePackage(), handler.CreatePackage)
	pkg.Put("/:packageId", middleware.Protected(), validate.EditPackage("packageId"), handler.EditPackage)
	pkg.Delete("/:packageId", middleware.Protected(), handler.DeletePackage)

	category := admin.Group("/package-categories")
	category.Get("/", handler.GetCategories)
	category.Get("/:categoryId", validate.GetById("categoryId"), handler.GetCategoryById)
	category.Post("/", middleware.Protected(), validate.CreateCategory(), handler.CreateCategory)
	category.Put("/:categoryId", middleware.Protected(), validate.EditCategory("categoryId"), handler.EditCategory)
	category.Delete("/:categoryId", middleware.Protected(), handler.DeleteCategory)

	tour := admin.Group("/tours")
	tour.Get("/", handler.GetTours)
	tour.Get("/:tourId", validate.GetById("tourId"), handler.GetTourById)
	tour.Post("/", middleware.Protected(), validate.CreateTour(), handler.CreateTour)
	tour.Put("/:tourId", middleware.Protected(), validate.EditTour("tourId"), handler.EditTour)
	tour.Delete("/:tourId", middleware.Protected(), handler.DeleteTour)

	translation := admin.Group("/translations")
	translation.Get("/", handler.GetTranslations)
	translation.Post("/", middleware.Protected(), validate.CreateTranslation(), handler.CreateTranslation)
	translation.Put("/:translationId", middleware.Protected(), validate.EditTranslation("translationId"), handler.EditTranslation)
	translation.Delete("/:translationId", middleware.Protected(), handler.DeleteTranslation)

	admin.Get("/language-settings", handler.GetLanguageSettings)
	admin.Put("/language-settings", middleware.Protected(), validate.EditLanguageSetting(), handler.EditLanguageSettings)

	admin.Post("/ai-generate-country-cities", middleware.Protected(), validate.GenerateCountryCities(), handler.GenerateCountryCities)
	admin.Get("/booking-inquiries", middleware.Protected(), handler.GetInquiries)

	// Visa data is read by the public site, managed by admins.
	nationality := api.Group("/nationalities", logger.New())
	nationality.Get("/", handler.GetNationalities)
	nationality.Post("/", middleware.Protected(), validate.CreateNationality(), handler.CreateNationality)
	nationality.Put("/:nationalityId", middleware.Protected(), validate.EditNationality("nationalityId"), handler.EditNationality)
	nationality.Delete("/:nationalityId", middleware.Protected(), handler.DeleteNationality)

	visa := api.Group("/visas", logger.New())
	visa.Get("/", handler.GetVisas)
	visa.Post("/", middleware.Protected(), validate.CreateVisa(), handler.CreateVisa)
	visa.Put("/:visaId", middleware.Protected(), validate.EditVisa("visaId"), handler.EditVisa)
	visa.Delete("/:visaId", middleware.Protected(), handler.DeleteVisa)

	requirement := api.Group("/nationality-visa-requirements", logger.New())
	requirement.Get("/", handler.GetRequirements)
	requirement.Post("/", middleware.Protected(), validate.CreateRequirement(), handler.CreateRequirement)
	requirement.Put("/:requirementId", middleware.Protected(), validate.EditRequirement("requirementId"), handler.EditRequirement)
	requirement.Delete("/:requirementId", middleware.Protected(), handler.DeleteRequirement)

	api.Post("/upload-image", middleware.Protected(), handler.UploadImage)

	// Public booking widget surface.
	booking := api.Group("/bookings")
	booking.Post("/inquiry", validate.CreateInquiry(), handler.CreateInquiry)
	booking.Get("/inquiry/:reference/qr", handler.GetInquiryQR)

	api.Get("/packages", middleware.OptionalJWT(), handler.GetPublicPackages)
	api.Get("/packages/:slug", middleware.OptionalJWT(), handler.GetPackageDetail)
	api.Get("/hotels/:slug", middleware.OptionalJWT(), handler.GetHotelDetail)
}
