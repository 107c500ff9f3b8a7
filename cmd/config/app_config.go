package config

import (
	"StyleMate-Server/internal/api/handlers"
	"StyleMate-Server/internal/api/routes"
	"StyleMate-Server/internal/middleware"
	"StyleMate-Server/internal/utils"
	"StyleMate-Server/internal/utils/storage"
	"StyleMate-Server/pkg/catalog"
	"StyleMate-Server/pkg/jwt"
	"StyleMate-Server/pkg/midtrans"
	"StyleMate-Server/pkg/outfit"
	"StyleMate-Server/pkg/preference"
	"StyleMate-Server/pkg/user"
	"StyleMate-Server/pkg/wardrobe"
	"StyleMate-Server/pkg/weather"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Australia/Sydney",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)
	wardrobeRepository := wardrobe.NewWardrobeRepository(db)
	catalogRepository := catalog.NewCatalogRepository(db)
	swipeRepository := outfit.NewSwipeRepository(db)
	preferenceRepository := preference.NewPreferenceRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		userRepository,
	)
	wardrobeService := wardrobe.NewWardrobeService(wardrobeRepository, s3)
	catalogService := catalog.NewCatalogService(catalogRepository)
	weatherService := weather.NewWeatherService()
	preferenceService := preference.NewPreferenceService(preferenceRepository, swipeRepository)
	outfitService := outfit.NewOutfitService(
		swipeRepository,
		wardrobeRepository,
		catalogRepository,
		userRepository,
		preferenceService,
		weatherService,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)
	wardrobeHandler := handlers.NewWardrobeHandler(wardrobeService, validator)
	catalogHandler := handlers.NewCatalogHandler(catalogService, validator)
	outfitHandler := handlers.NewOutfitHandler(outfitService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		WardrobeHandler: wardrobeHandler,
		OutfitHandler:   outfitHandler,
		CatalogHandler:  catalogHandler,
		MidtransHandler: midtransHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
