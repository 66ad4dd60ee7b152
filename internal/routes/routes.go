package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/rentpal/admin-backend/internal/config"
	"github.com/rentpal/admin-backend/internal/handlers"
	"github.com/rentpal/admin-backend/internal/metrics"
	"github.com/rentpal/admin-backend/internal/middleware"
)

// Handlers bundles everything Setup wires into the route table.
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Property    *handlers.PropertyHandler
	Profile     *handlers.ProfileHandler
	Booking     *handlers.BookingHandler
	Transaction *handlers.TransactionHandler
	Account     *handlers.AccountHandler
	Dispute     *handlers.DisputeHandler
	Terms       *handlers.TermsHandler
	Health      *handlers.HealthHandler
}

// Setup registers the full route table. Paths mirror the dashboard's
// existing API contract under /admin.
func Setup(app *fiber.App, cfg *config.Config, h *Handlers) {
	app.Get("/health", h.Health.Check)
	app.Get("/metrics", metrics.Handler())

	admin := app.Group("/admin")

	// The dashboard polls several endpoints on timers; keep headroom above
	// the auth limiter below.
	admin.Use(limiter.New(limiter.Config{
		Max:               300,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Sign-in is the only public admin route; stricter rate limit.
	admin.Post("/signIn", limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), h.Auth.SignIn)

	// Everything registered below requires the bearer token.
	admin.Use(middleware.JWTProtected(cfg))

	// Listings
	admin.Get("/properties/active", h.Property.Active)
	admin.Get("/properties/pending", h.Property.Pending)
	admin.Put("/properties/accept/:id", h.Property.Accept)
	admin.Put("/properties/reject/:id", h.Property.Reject)
	admin.Get("/properties/verified", h.Property.PendingList)
	admin.Get("/properties/verified/count", h.Property.PendingCount)

	// Users and profiles
	admin.Get("/users/both", h.User.ListBoth)
	admin.Get("/users/landlord", h.User.ListLandlords)
	admin.Get("/users/tenant", h.User.ListTenants)
	admin.Get("/profiles", h.Profile.Pending)
	admin.Put("/profiles/verify/:userId", h.Profile.Verify)
	admin.Put("/profiles/reject/:userId", h.Profile.Reject)
	admin.Get("/profiles/verified", h.Profile.PendingList)
	admin.Get("/profiles/verified/count", h.Profile.PendingCount)
	admin.Get("/profile", h.Auth.Profile)

	// Dashboard counters
	admin.Get("/total-users", h.User.TotalUsers)
	admin.Get("/total-properties", h.Property.TotalProperties)
	admin.Get("/total-transactions", h.Transaction.Total)
	admin.Get("/total-rents", h.Booking.TotalRents)

	// Finance
	admin.Get("/balance", h.Account.Balance)
	admin.Get("/transactions", h.Transaction.List)
	admin.Get("/transactions-per-day", h.Transaction.PerWeekday)

	// Rentals and disputes
	admin.Get("/rented", h.Booking.Rented)
	admin.Get("/bookings/count-per-day-of-week", h.Booking.CountPerWeekday)
	admin.Get("/disputes", h.Dispute.List)

	// Terms documents
	admin.Post("/terms", h.Terms.Create)
	admin.Get("/terms", h.Terms.List)
	admin.Get("/terms/:id", h.Terms.Get)
	admin.Put("/terms/:id", h.Terms.Update)
	admin.Delete("/terms/:id", h.Terms.Delete)
}
