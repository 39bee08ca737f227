package api

import (
	"errors"

	"marketintel/internal/app"

	"github.com/gin-gonic/gin"
)

// dashboard runs the full fetch -> compute pipeline and returns the
// page's data payload. A total fetch failure surfaces as 503 with the
// single no-data notice.
func (m ApiHandler) dashboard(c *gin.Context) {
	result, err := m.DashboardHandler.GetDashboard(c)
	if errors.Is(err, app.ErrNoData) {
		returnErrorJsonCode(err, c, 503)
		return
	}
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, result)
}
