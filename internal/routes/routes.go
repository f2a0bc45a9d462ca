package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/dienstly/dienstly-backend/internal/config"
	"github.com/dienstly/dienstly-backend/internal/handlers"
	"github.com/dienstly/dienstly-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	categoryHandler *handlers.CategoryHandler,
	providerHandler *handlers.ProviderHandler,
	requestHandler *handlers.RequestHandler,
	quoteHandler *handlers.QuoteHandler,
	bookingHandler *handlers.BookingHandler,
	reviewHandler *handlers.ReviewHandler,
	adminHandler *handlers.AdminHandler,
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

	// Auth-specific rate limit: 10 req/min per IP (stricter)
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

	// Protected auth routes get the JWT middleware per route so the
	// public ones above stay public.
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Put("/auth/password", middleware.JWTProtected(cfg), authHandler.ChangePassword)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)

	// Profile
	api.Get("/users/me", middleware.JWTProtected(cfg), userHandler.Me)
	api.Put("/users/me", middleware.JWTProtected(cfg), userHandler.UpdateProfile)

	// Categories (public read)
	api.Get("/categories", categoryHandler.List)
	api.Get("/categories/:idOrSlug", categoryHandler.Get)

	// Provider directory (public read)
	api.Get("/providers", providerHandler.List)
	api.Get("/providers/:id/reviews", reviewHandler.ListForProvider)

	// Provider self-service. Static segments must be registered before
	// the :id wildcard or fiber matches "me" as an id.
	protected := api.Group("", middleware.JWTProtected(cfg))
	protected.Post("/providers", providerHandler.Create)
	protected.Get("/providers/me", providerHandler.Me)
	protected.Put("/providers/me", providerHandler.UpdateMe)
	protected.Get("/providers/me/stats", providerHandler.Stats)
	protected.Get("/providers/me/dashboard", providerHandler.Dashboard)
	protected.Get("/providers/me/requests", providerHandler.Requests)
	protected.Get("/providers/me/bookings", providerHandler.Bookings)
	protected.Get("/providers/me/reviews", reviewHandler.Mine)
	api.Get("/providers/:id", providerHandler.Get)

	// Service offerings
	protected.Post("/services", providerHandler.CreateService)
	protected.Put("/services/:id", providerHandler.UpdateService)
	protected.Delete("/services/:id", providerHandler.DeleteService)

	// Service requests (browse is public, the rest is not)
	api.Get("/requests", requestHandler.List)
	protected.Post("/requests", requestHandler.Create)
	protected.Get("/requests/mine", requestHandler.Mine)
	protected.Put("/requests/:id", requestHandler.Update)
	protected.Post("/requests/:id/cancel", requestHandler.Cancel)
	api.Get("/requests/:id", requestHandler.Get)

	// Quotes
	protected.Post("/quotes", quoteHandler.Create)
	protected.Get("/quotes/mine", quoteHandler.Mine)
	protected.Post("/quotes/:id/accept", quoteHandler.Accept)
	protected.Post("/quotes/:id/reject", quoteHandler.Reject)

	// Bookings
	protected.Get("/bookings/mine", bookingHandler.Mine)
	protected.Get("/bookings/:id", bookingHandler.Get)
	protected.Post("/bookings/:id/confirm", bookingHandler.Confirm)
	protected.Post("/bookings/:id/start", bookingHandler.Start)
	protected.Post("/bookings/:id/complete", bookingHandler.Complete)
	protected.Post("/bookings/:id/cancel", bookingHandler.Cancel)

	// Reviews
	protected.Post("/reviews", reviewHandler.Create)
	protected.Post("/reviews/:id/reply", reviewHandler.Reply)

	// Admin panel (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Get("/dashboard", adminHandler.Dashboard)
	admin.Get("/users", adminHandler.ListUsers)
	admin.Get("/users/:id", adminHandler.GetUser)
	admin.Put("/users/:id", adminHandler.UpdateUser)
	admin.Delete("/users/:id", adminHandler.DeleteUser)
	admin.Get("/providers/pending", adminHandler.PendingProviders)
	admin.Put("/providers/:id/approve", providerHandler.Approve)
	admin.Get("/categories", categoryHandler.ListAll)
	admin.Post("/categories", categoryHandler.Create)
	admin.Put("/categories/:id", categoryHandler.Update)
	admin.Delete("/categories/:id", categoryHandler.Delete)
	admin.Put("/bookings/:id/payment", bookingHandler.SetPaymentStatus)
	admin.Get("/reports/revenue", adminHandler.RevenueReport)
}
