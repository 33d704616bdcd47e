package testutils

import (
	"github.com/gin-gonic/gin"

	"github.com/improvemycity/portal-go/internal/api/handlers"
	"github.com/improvemycity/portal-go/internal/api/routes"
)

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.RegisterRoutes(r, h)
	return r
}
