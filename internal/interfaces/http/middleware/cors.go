package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS returns the cross-origin middleware for origins. "*" allows every
// origin. With no origins the middleware adds no headers, so browsers refuse
// cross-origin calls; listed origins must carry an http(s) scheme.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	cfg := cors.DefaultConfig()
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AddAllowHeaders(RequestIDHeader, "Accept")
	cfg.AddExposeHeaders(RequestIDHeader)
	cfg.MaxAge = 12 * time.Hour

	return cors.New(cfg)
}
