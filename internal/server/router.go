package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/uni-verse/universe-backend/internal/handlers"
	"github.com/uni-verse/universe-backend/internal/middleware"
	"github.com/uni-verse/universe-backend/internal/observability"
)

type RouterConfig struct {
	MatchHandler   *handlers.MatchHandler
	CatalogHandler *handlers.CatalogHandler
	AllowOrigins   []string
	Tracing        bool
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))
	router.Use(middleware.RequestID())
	if cfg.Tracing {
		router.Use(otelgin.Middleware(observability.ServiceName))
	}

	router.GET("/", handlers.Index)
	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/match-programs", cfg.MatchHandler.MatchPrograms)
		api.GET("/universities", cfg.CatalogHandler.ListUniversities)
		api.GET("/programs", cfg.CatalogHandler.ListPrograms)
		api.GET("/campuses", cfg.CatalogHandler.ListCampuses)
		api.GET("/program-offerings", cfg.CatalogHandler.ListOfferings)
		api.GET("/program/:id", cfg.CatalogHandler.GetProgramDetail)
		api.GET("/university/:id", cfg.CatalogHandler.GetUniversityDetail)
		api.GET("/search-programs", cfg.CatalogHandler.SearchPrograms)
		api.GET("/stats", cfg.CatalogHandler.GetStats)
	}

	return router
}
