package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/varsitymarket/varsity-market-backend/internal/config"
	"github.com/varsitymarket/varsity-market-backend/internal/handlers"
	"github.com/varsitymarket/varsity-market-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	productHandler *handlers.ProductHandler,
	messageHandler *handlers.MessageHandler,
	adminHandler *handlers.AdminHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected auth routes get JWT middleware individually so the public
	// ones above stay public.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Get("/auth/me", middleware.JWTProtected(cfg), authHandler.Me)
	api.Put("/auth/profile", middleware.JWTProtected(cfg), authHandler.UpdateProfile)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Products — browsing is public, mutations require auth
	api.Get("/products", productHandler.List)
	api.Get("/products/my/list", middleware.JWTProtected(cfg), productHandler.ListMine)
	api.Get("/products/:id", productHandler.Get)
	api.Post("/products", middleware.JWTProtected(cfg), productHandler.Create)
	api.Put("/products/:id", middleware.JWTProtected(cfg), productHandler.Update)
	api.Delete("/products/:id", middleware.JWTProtected(cfg), productHandler.Delete)
	api.Patch("/products/:id/sold", middleware.JWTProtected(cfg), productHandler.ToggleSold)

	// Messaging — all protected
	messages := api.Group("/messages", middleware.JWTProtected(cfg))
	messages.Get("/conversations", messageHandler.ListConversations)
	messages.Post("/conversations", messageHandler.CreateConversation)
	messages.Get("/conversations/:id/messages", messageHandler.GetMessages)
	messages.Post("/messages", messageHandler.SendMessage)

	// Admin panel
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/users", adminHandler.ListUsers)
	admin.Put("/users/:id/role", adminHandler.UpdateUserRole)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/products", adminHandler.ListProducts)
	admin.Delete("/products/:id", adminHandler.DeleteProduct)
	admin.Get("/statistics", adminHandler.Statistics)
}
