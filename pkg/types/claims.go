package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/improvemycity/portal-go/models"
)

// Claims is the decoded identity carried with every request. Category
// approval is deliberately absent: it is re-read from the database on
// each scoped action so that a disapproval takes effect immediately.
type Claims struct {
	UserID uint            `json:"user_id"`
	Name   string          `json:"name"`
	Role   models.UserRole `json:"role"`
	jwt.RegisteredClaims
}
