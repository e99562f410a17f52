package middleware

import (
	"bytes"
	"io"
	"strings"

	"github.com/mariaed-2103/Dashboard-Financeiro/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// sensitivePath reports whether a request body may carry credentials.
// Bodies on these routes are never recorded.
func sensitivePath(path string) bool {
	return strings.HasSuffix(path, "/password") || strings.Contains(path, "/auth/")
}

// AuditMiddleware records every authenticated request. Runs after
// AuthMiddleware; anonymous requests are skipped, and bodies of
// credential-bearing routes are not captured.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userEmail string
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userEmail = user.Email
			}
		}

		var bodyBytes []byte
		if c.Request.Body != nil && !sensitivePath(c.Request.URL.Path) {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		if userEmail == "" {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			action += " " + string(bodyBytes)
		}

		log := models.AuditLog{
			UserEmail: userEmail,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&log).Error
	}
}
