package routes

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"supermarket-admin/internal/cache"
	"supermarket-admin/internal/handlers"
	"supermarket-admin/internal/middleware"
	"supermarket-admin/internal/stores"
)

const healthTimeout = 2 * time.Second

// Dependencies es lo que necesita el router.
type Dependencies struct {
	Stores      *stores.Set
	Cache       *cache.Cache
	Logger      *logrus.Entry
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

// NewRouter crea el engine con el middleware común y todas las rutas.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.WithRequestID(),
		middleware.WithLogging(deps.Logger.WithField("component", "http")),
		cors.New(corsConfig(deps.CORSOrigins)),
	)
	RegisterRoutes(router, deps)
	return router
}

func RegisterRoutes(router *gin.Engine, deps Dependencies) {
	log := deps.Logger.WithField("component", "handlers")

	api := router.Group("/api")
	{
		handlers.NewEntityHandler(deps.Stores.Clients, deps.Cache, log).Register(api, "/clients")
		handlers.NewEntityHandler(deps.Stores.Providers, deps.Cache, log).Register(api, "/providers")
		handlers.NewEntityHandler(deps.Stores.Products, deps.Cache, log).Register(api, "/products")
		handlers.NewEntityHandler(deps.Stores.Employees, deps.Cache, log).Register(api, "/employees")
	}

	router.GET("/healthz", health(deps.Stores, log))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}
	router.NoRoute(handlers.NotFound)
}

func health(set *stores.Set, log *logrus.Entry) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		if err := set.Ping(ctx); err != nil {
			log.WithError(err).Warn("health check failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.HeaderRequestID)
	cfg.ExposeHeaders = []string{middleware.HeaderRequestID}

	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
