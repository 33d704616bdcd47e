package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/improvemycity/portal-go/config"
	"github.com/improvemycity/portal-go/models"
	"github.com/improvemycity/portal-go/pkg/types"
	"github.com/improvemycity/portal-go/pkg/utils"
)

var (
	jwtKey []byte

	errMalformedHeader = errors.New("authorization header format must be Bearer {token}")
	errNoToken         = errors.New("authorization required")
)

// Init sets the JWT signing key from config. Must run before any token
// is issued or parsed.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed HS256 bearer token. Variable so service
// tests can stub it.
var GenerateToken = func(userID uint, name string, role models.UserRole, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID: userID,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtKey)
}

// ParseToken validates the signature and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// extractToken pulls the bearer token from the Authorization header, or
// falls back to the token cookie used by the web frontend.
func extractToken(c *gin.Context) (string, error) {
	header := c.GetHeader("Authorization")
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", errMalformedHeader
		}
		return parts[1], nil
	}
	if cookie, err := c.Cookie("token"); err == nil {
		return cookie, nil
	}
	return "", errNoToken
}

// JWTAuthMiddleware authenticates the request and stores the decoded
// claims in the gin context.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := extractToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		// The parser is lax about exp when the claim is absent.
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token expired"})
			return
		}

		c.Set(utils.ClaimsContextKey, claims)
		c.Next()
	}
}
