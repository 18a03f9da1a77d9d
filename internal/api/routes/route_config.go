package routes

import (
	"Campus-Inventory-System/internal/api/handlers"
	"Campus-Inventory-System/internal/middleware"
	"Campus-Inventory-System/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	ItemHandler     handlers.ItemHandler
	RequestHandler  handlers.RequestHandler
	ScannerHandler  handlers.ScannerHandler
	ReportHandler   handlers.ReportHandler
	TaxonomyHandler handlers.TaxonomyHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Items()
	c.Requests()
	c.Scanner()
	c.Reports()
	c.Taxonomy()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/api/v1/items", c.Middleware.AuthMiddleware(c.JWTService))

	items.Post("", c.ItemHandler.AddItem)
	items.Get("", c.ItemHandler.GetItems)
	items.Get("/barcode/:barcode", c.ItemHandler.FindByBarcode)
	items.Get("/:id", c.ItemHandler.GetItemDetails)
	items.Put("/:id", c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.ItemHandler.DeleteItem)

	items.Post("/:id/decrement", c.ItemHandler.DecrementQuantity)
	items.Post("/image", c.ItemHandler.UploadItemImage)
}

func (c *Config) Requests() {
	requests := c.App.Group("/api/v1/requests", c.Middleware.AuthMiddleware(c.JWTService))

	requests.Post("", c.RequestHandler.CreateRequest)
	requests.Get("", c.RequestHandler.GetRequests)
	requests.Get("/:id", c.RequestHandler.GetRequestDetails)
	requests.Put("/:id", c.RequestHandler.UpdateRequest)
	requests.Delete("/:id", c.RequestHandler.DeleteRequest)

	requests.Post("/:id/outcomes", c.RequestHandler.MarkItemOutcome)
}

func (c *Config) Scanner() {
	scanner := c.App.Group("/api/v1/scanner", c.Middleware.AuthMiddleware(c.JWTService))

	scanner.Post("/session", c.ScannerHandler.StartSession)
	scanner.Delete("/session", c.ScannerHandler.Cancel)
	scanner.Post("/decode", c.ScannerHandler.Decode)
	scanner.Get("/deletion-logs", c.ScannerHandler.GetDeletionLogs)
	scanner.Get("/label", c.ScannerHandler.BarcodeLabel)
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports", c.Middleware.AuthMiddleware(c.JWTService))

	reports.Get("/items", c.ReportHandler.GetGroupedItems)
	reports.Get("/requests", c.ReportHandler.GetGroupedRequests)
	reports.Get("/summary", c.ReportHandler.GetReport)
	reports.Get("/export", c.ReportHandler.ExportReport)
	reports.Get("/dashboard", c.ReportHandler.GetDashboard)
}

func (c *Config) Taxonomy() {
	taxonomy := c.App.Group("/api/v1/taxonomy", c.Middleware.AuthMiddleware(c.JWTService))

	taxonomy.Get("", c.TaxonomyHandler.GetTaxonomy)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
