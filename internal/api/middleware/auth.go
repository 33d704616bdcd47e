package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/config"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/types"
	"github.com/improvemycity/portal-go/pkg/utils"
)

// Auth provides role guards layered on top of JWTAuthMiddleware.
// Guards only check the role carried in the token; category approval
// is re-read from the database inside the services so revocation
// applies on the very next action.
type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

func claimsFrom(c *gin.Context) (*types.Claims, bool) {
	claims, ok := c.MustGet(utils.ClaimsContextKey).(*types.Claims)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
		return nil, false
	}
	return claims, true
}

// Admin allows only admin users through.
func (a *Auth) Admin() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		if claims.Role != models.UserRoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "admin only"})
			return
		}
		c.Next()
	}
}

// Role allows any of the given roles through.
func (a *Auth) Role(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFrom(c)
		if !ok {
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, response.ErrorResponse{Error: "Forbidden"})
	}
}

// Staff allows employees and sub-employees through.
func (a *Auth) Staff() gin.HandlerFunc {
	return a.Role(models.UserRoleEmployee, models.UserRoleSubEmployee)
}

// Employee allows only employees through.
func (a *Auth) Employee() gin.HandlerFunc {
	return a.Role(models.UserRoleEmployee)
}

// CORSMiddleware allows the configured frontend origins.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
