package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker receives one usage event per successful authenticated request.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}

// pathsToSkip contains paths that are never tracked.
var pathsToSkip = map[string]bool{
	"/health":  true,
	"/metrics": true,
}

// AnalyticsMiddleware reports successful requests of signed in users. Events are
// named after the route template ("/api/v1/sales/:uuid" -> "api_v1_sales_:uuid")
// and never carry path values, which identify patients and payments.
func AnalyticsMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		session, ok := GetSessionFromContext(c)
		if !ok {
			return
		}
		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			return
		}

		tracker.Enqueue(strconv.Itoa(session.UserID), eventName, map[string]any{
			"method":        c.Request.Method,
			"status_code":   c.Writer.Status(),
			"project_id":    session.ProjectID,
			"enterprise_id": session.EnterpriseID,
		})
	}
}
