package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/improvemycity/portal-go/pkg/types"
)

// ClaimsContextKey is where the JWT middleware stores the decoded identity.
const ClaimsContextKey = "claims"

var errNoClaims = errors.New("no authenticated identity in request context")

// GetClaimsFromContext extracts the identity set by the JWT middleware.
// A package variable so handler tests can stub it out.
var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	v, ok := c.Get(ClaimsContextKey)
	if !ok {
		return nil, errNoClaims
	}
	claims, ok := v.(*types.Claims)
	if !ok {
		return nil, errNoClaims
	}
	return claims, nil
}

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}
