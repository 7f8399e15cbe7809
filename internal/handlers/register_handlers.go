package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/storekhata/storekhata_backend/internal/core/ports/services"
	"github.com/storekhata/storekhata_backend/internal/middleware"
	"github.com/storekhata/storekhata_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service facades.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Public authentication routes
	registerAuthRoutes(r, cfg, services.User)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// per-entity route registrations. Everything under the group requires a
// valid bearer token.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", apiRateLimit(cfg), middleware.AuthMiddleware(cfg.JWTSecret))

	registerCustomerRoutes(v1, services.Customer, services.Credit)
	registerProductRoutes(v1, services.Product)
	registerSaleRoutes(v1, services.Sale)
	registerDashboardRoutes(v1, services.Reporting)
}

// apiRateLimit builds the per-IP limiter for the API group from config.
func apiRateLimit(cfg *config.Config) gin.HandlerFunc {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		// Misconfigured limits fall back to a generous default rather than
		// refusing to start.
		rate, _ = limiter.NewRateFromFormatted("300-M")
	}
	store := memory.NewStore()
	return middleware.RateLimit(limiter.New(store, rate))
}
