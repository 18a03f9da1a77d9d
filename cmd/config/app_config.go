package config

import (
	"os"
	"time"

	"Campus-Inventory-System/internal/api/handlers"
	"Campus-Inventory-System/internal/api/routes"
	"Campus-Inventory-System/internal/middleware"
	"Campus-Inventory-System/internal/utils"
	"Campus-Inventory-System/internal/utils/storage"
	"Campus-Inventory-System/pkg/item"
	"Campus-Inventory-System/pkg/jwt"
	"Campus-Inventory-System/pkg/report"
	"Campus-Inventory-System/pkg/request"
	"Campus-Inventory-System/pkg/scanner"
	"Campus-Inventory-System/pkg/user"

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
		TimeZone:   "Asia/Manila",
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
	itemRepository := item.NewItemRepository(db)
	requestRepository := request.NewRequestRepository(db)
	deletionLogRepository := scanner.NewDeletionLogRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	itemService := item.NewItemService(itemRepository, s3)
	requestService := request.NewRequestService(requestRepository, request.NewMailNotifier())
	scannerService := scanner.NewScannerService(itemService, deletionLogRepository)
	reportService := report.NewReportService(itemService, requestService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	scannerHandler := handlers.NewScannerHandler(scannerService, validator)
	reportHandler := handlers.NewReportHandler(reportService)
	taxonomyHandler := handlers.NewTaxonomyHandler()

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		ItemHandler:     itemHandler,
		RequestHandler:  requestHandler,
		ScannerHandler:  scannerHandler,
		ReportHandler:   reportHandler,
		TaxonomyHandler: taxonomyHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
