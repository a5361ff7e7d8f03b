package cookie

import (
	"net/http"
	"strings"
	"time"

	"shelter-scheduler/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName = "access_token"

	// the token is only ever read by the API routes
	cookiePath = "/api"
)

func SetAccessToken(c *gin.Context, cfg config.CookieConfig, accessToken string, expiry time.Duration) {
	write(c, cfg, accessToken, int(expiry.Seconds()))
}

// ClearAccessToken overwrites the cookie with an already expired one.
func ClearAccessToken(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, err := c.Cookie(AccessTokenCookieName)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(token)
}

func write(c *gin.Context, cfg config.CookieConfig, value string, maxAge int) {
	mode := parseSameSite(cfg.SameSite)
	c.SetSameSite(mode)
	// browsers drop SameSite=None cookies that are not Secure
	secure := cfg.Secure || mode == http.SameSiteNoneMode
	c.SetCookie(AccessTokenCookieName, value, maxAge, cookiePath, cfg.Domain, secure, true)
}

func parseSameSite(v string) http.SameSite {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
