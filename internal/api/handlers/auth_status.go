package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/pkg/response"
	"github.com/improvemycity/portal-go/pkg/utils"
)

// AuthStatusHandler lets the frontend probe whether its stored token is
// still usable without triggering a full request.
func AuthStatusHandler(c *gin.Context) {
	claims, err := utils.GetClaimsFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "valid",
		"user_id": claims.UserID,
		"role":    claims.Role,
	})
}
