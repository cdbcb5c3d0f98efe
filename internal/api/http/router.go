package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/fooddelivery-service/internal/api/http/handlers"
	"github.com/spec-kit/fooddelivery-service/internal/auth"
	"github.com/spec-kit/fooddelivery-service/internal/domain"
)

// AuthRouteConfig bundles dependencies for the issuer's routes.
type AuthRouteConfig struct {
	Health *handlers.HealthHandler
	Auth   *handlers.AuthHandler
}

// RegisterAuthRoutes wires the issuer's HTTP routes. Registration and login
// are public.
func RegisterAuthRoutes(app *fiber.App, cfg AuthRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/registration", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)
}

// ProfileRouteConfig bundles dependencies for the verifier's routes.
type ProfileRouteConfig struct {
	Health         *handlers.HealthHandler
	Profile        *handlers.ProfileHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterProfileRoutes wires the verifier's HTTP routes. The authenticator
// runs on every request; health probes stay public, everything under
// /profile requires an identity.
func RegisterProfileRoutes(app *fiber.App, cfg ProfileRouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	profile := app.Group("/profile", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())
	profile.Put("/basic", cfg.Profile.UpsertBasicData)
	profile.Get("/basic", cfg.Profile.GetBasicData)
	profile.Put("/address", cfg.Profile.UpdateAddress)
	profile.Get("/address", cfg.Profile.GetAddress)
	profile.Put("/location", auth.RequireRole(domain.RoleRestaurant), cfg.Profile.UpdateLocation)
	profile.Put("/image", cfg.Profile.UpdateImage)
	profile.Get("/image", cfg.Profile.GetImage)
}
