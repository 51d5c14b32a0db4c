package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/nrivas/marketscope/api-gateway/config"
	"github.com/nrivas/marketscope/api-gateway/health"
	"github.com/nrivas/marketscope/api-gateway/middleware"
	"github.com/nrivas/marketscope/api-gateway/proxy"
)

// RouteDefinition defines a route mapping
type RouteDefinition struct {
	Prefix      string
	ServiceName string
	Description string
}

// Routes holds all route definitions. Every surface is public; the
// dashboard has no user accounts.
var Routes = []RouteDefinition{
	{
		Prefix:      "/api/catalog",
		ServiceName: "dashboard",
		Description: "Resolved catalog and comparison rows",
	},
	{
		Prefix:      "/api/listings",
		ServiceName: "dashboard",
		Description: "Marketplace listings with price and stock history",
	},
	{
		Prefix:      "/api/categories",
		ServiceName: "dashboard",
		Description: "Categories and characteristic facets",
	},
	{
		Prefix:      "/api/reports",
		ServiceName: "dashboard",
		Description: "Saved comparison reports",
	},
	{
		Prefix:      "/api/alerts",
		ServiceName: "dashboard",
		Description: "Price and stock alerts",
	},
	{
		Prefix:      "/api/notifications",
		ServiceName: "dashboard",
		Description: "Alert notifications",
	},
	{
		Prefix:      "/api/sellers",
		ServiceName: "dashboard",
		Description: "Seller analysis and comparison",
	},
}

// SetupRoutes configures all routes in the gateway
func SetupRoutes(app *fiber.App, cfg *config.GatewayConfig, redisClient *redis.Client) {
	reverseProxy := proxy.NewReverseProxy(cfg)
	healthChecker := health.NewHealthChecker(cfg)

	// Gateway quick health check (no downstream checks)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(healthChecker.QuickCheck())
	})

	// Liveness probe (for Kubernetes)
	app.Get("/health/live", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "alive",
		})
	})

	// Readiness probe (checks dashboard instances)
	app.Get("/health/ready", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
		defer cancel()

		healthStatus := healthChecker.CheckAllInstances(ctx)

		statusCode := fiber.StatusOK
		if healthStatus.Status == "unhealthy" {
			statusCode = fiber.StatusServiceUnavailable
		}

		return c.Status(statusCode).JSON(healthStatus)
	})

	// Detailed instance health checks
	app.Get("/health/services", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
		defer cancel()

		return c.JSON(healthChecker.CheckAllInstances(ctx))
	})

	// API routes overview
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Dashboard API Gateway",
			"version": "1.0.0",
			"routes":  Routes,
		})
	})

	// Saved-report writes must drop cached list responses
	invalidate := middleware.InvalidateOnWrite(redisClient)

	for _, route := range Routes {
		registerServiceRoutes(app, route, reverseProxy, invalidate)
	}
}

// registerServiceRoutes registers all HTTP methods for a service prefix
func registerServiceRoutes(app *fiber.App, route RouteDefinition, proxyHandler *proxy.ReverseProxy, invalidate fiber.Handler) {
	handler := func(c *fiber.Ctx) error {
		return proxyHandler.ProxyRequest(c, route.ServiceName)
	}

	group := app.Group(route.Prefix, invalidate)
	group.All("/*", handler)

	app.All(route.Prefix, invalidate, handler)
}
