package routes

import (
	"StyleMate-Server/internal/api/handlers"
	"StyleMate-Server/internal/middleware"
	"StyleMate-Server/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	WardrobeHandler handlers.WardrobeHandler
	OutfitHandler   handlers.OutfitHandler
	CatalogHandler  handlers.CatalogHandler
	MidtransHandler handlers.MidtransHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Wardrobe()
	c.Outfits()
	c.Catalog()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Post("/subscribe", c.Middleware.AuthMiddleware(c.JWTService), c.MidtransHandler.CreateTransaction)
	}
}

func (c *Config) Wardrobe() {
	wardrobe := c.App.Group("/api/v1/wardrobe", c.Middleware.AuthMiddleware(c.JWTService))

	wardrobe.Post("", c.WardrobeHandler.AddItem)
	wardrobe.Get("", c.WardrobeHandler.GetItems)
	wardrobe.Put("/:id", c.WardrobeHandler.UpdateItem)
	wardrobe.Delete("/:id", c.WardrobeHandler.DeleteItem)
	wardrobe.Post("/image", c.WardrobeHandler.UploadItemImage)
}

func (c *Config) Outfits() {
	outfits := c.App.Group("/api/v1/outfits", c.Middleware.AuthMiddleware(c.JWTService))

	outfits.Post("/recommend", c.OutfitHandler.RecommendOutfits)
	outfits.Post("/swipe", c.OutfitHandler.RecordSwipe)
	outfits.Get("/history", c.OutfitHandler.GetSwipeHistory)
	outfits.Get("/profile", c.OutfitHandler.GetStyleProfile)
}

func (c *Config) Catalog() {
	catalog := c.App.Group("/api/v1/catalog")

	catalog.Post("/ingest", c.CatalogHandler.IngestProducts)
	catalog.Get("/products", c.Middleware.AuthMiddleware(c.JWTService), c.CatalogHandler.GetProducts)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
