package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/sarnali3515/query-nest-server/config"
)

// CookieName is the cookie that carries the session token.
const CookieName = "token"

// TokenTTL bounds how long an issued session stays valid.
const TokenTTL = 24 * time.Hour

// IssueToken signs the identity claims with HS256. Every key of the payload
// is carried into the token; "exp" is always overwritten with the TTL.
func IssueToken(secret string, identity map[string]interface{}) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range identity {
		claims[k] = v
	}
	claims["exp"] = time.Now().Add(TokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// setSessionCookie writes the http-only session cookie. Outside production
// the cookie stays non-secure with SameSite=Strict so local frontends on
// plain http can carry it; production pairs Secure with SameSite=None for
// the cross-site hosted frontend.
func setSessionCookie(c *gin.Context, cfg *config.Config, token string, maxAge int) {
	sameSite := http.SameSiteStrictMode
	if cfg.IsProduction() {
		sameSite = http.SameSiteNoneMode
	}
	c.SetSameSite(sameSite)
	c.SetCookie(CookieName, token, maxAge, "/", "", cfg.IsProduction(), true)
}
