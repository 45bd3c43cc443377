package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"note-task-planner/internal/model"
	"note-task-planner/pkg/datemath"
	pkgErrors "note-task-planner/pkg/errors"
	"note-task-planner/pkg/response"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderUsername = "X-Username"
	HeaderTimezone = "X-Timezone"
	QueryTimezone  = "tz"
)

var errInvalidTimezone = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid timezone")

// Auth trusts the owner identity forwarded by the upstream gateway and
// stores it, with the viewer's timezone, as the request scope.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(HeaderUserID))
		if userID == "" {
			response.Unauthorized(c)
			return
		}

		loc := m.defaultTZ
		tz := c.Query(QueryTimezone)
		if tz == "" {
			tz = c.GetHeader(HeaderTimezone)
		}
		if tz != "" {
			parsed, err := datemath.LoadLocation(tz)
			if err != nil {
				response.Error(c, errInvalidTimezone, nil)
				c.Abort()
				return
			}
			loc = parsed
		}

		sc := model.Scope{
			UserID:   userID,
			Username: c.GetHeader(HeaderUsername),
			Timezone: loc,
		}
		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}
