package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sarnali3515/query-nest-server/auth"
)

// EmailKey is the context key the guard stores the caller's email under.
const EmailKey = "userEmail"

// ValidateToken reads the session cookie and verifies it. Missing, expired,
// tampered and malformed tokens all answer 401 before any handler runs.
func ValidateToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := c.Cookie(auth.CookieName)
		if err != nil || tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("invalid token signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			c.Abort()
			return
		}
		email, _ := claims["email"].(string)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireOwnerEmail rejects requests whose :email path param differs from the
// authenticated email. Runs after ValidateToken, so a missing context email
// means the route was wired without the guard.
func RequireOwnerEmail(c *gin.Context) {
	tokenEmail := c.GetString(EmailKey)
	if tokenEmail == "" || tokenEmail != c.Param("email") {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden Access"})
		c.Abort()
		return
	}
	c.Next()
}
