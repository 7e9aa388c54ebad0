package middleware

import (
	"log"
	"time"

	"khata-ledger/internal/models"

	"github.com/gin-gonic/gin"
)

// RequestLog writes one line per authenticated request with the acting
// user id, complementing gin.Logger on the public routes.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		var userID uint
		if v, ok := c.Get(CtxUserKey); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}
		if userID == 0 {
			return
		}

		log.Printf("user=%d %s %s status=%d took=%s",
			userID, c.Request.Method, c.Request.URL.Path,
			c.Writer.Status(), time.Since(start))
	}
}
