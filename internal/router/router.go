package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"irpfdecl/internal/handler"
	"irpfdecl/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	declH *handler.DeclarationHandler,
	healthH *handler.HealthHandler,
	corsOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	api := r.Group("/api")
	api.GET("/declaracao", declH.Get)
	api.POST("/declaracao", declH.Post)

	r.NoMethod(func(c *gin.Context) {
		handler.RespondError(c, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "Método não permitido")
	})
	r.NoRoute(func(c *gin.Context) {
		handler.RespondError(c, http.StatusNotFound, "NOT_FOUND", "Rota não encontrada")
	})

	return r
}
