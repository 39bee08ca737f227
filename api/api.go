package api

import (
	"fmt"
	"time"

	"marketintel/internal/app"
	"marketintel/internal/logger"
	"marketintel/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ApiHandler struct {
	DashboardHandler  app.DashboardHandler
	MarketDataService service.MarketDataService
	// HTMLTemplatesGlob points at the dashboard templates; empty in
	// tests, where only the JSON surface is exercised.
	HTMLTemplatesGlob string
}

func (m ApiHandler) StartApi(port int) error {
	return m.router().Run(fmt.Sprintf(":%d", port))
}

func (m ApiHandler) router() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	if m.HTMLTemplatesGlob != "" {
		router.LoadHTMLGlob(m.HTMLTemplatesGlob)
	}

	router.GET("/", m.index)
	router.GET("/api/dashboard", m.dashboard)
	router.GET("/api/dashboard/export", m.exportTable)

	return router
}

func (m ApiHandler) index(c *gin.Context) {
	if m.HTMLTemplatesGlob == "" {
		c.JSON(200, map[string]string{"message": "welcome to marketintel"})
		return
	}
	c.HTML(200, "dashboard.html", gin.H{
		"title": "Market Intelligence",
	})
}

func returnErrorJson(err error, c *gin.Context) {
	zap.S().Error(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	zap.S().Warn(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func (m ApiHandler) logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	log := zap.S().With(
		"requestId", uuid.NewString(),
		"method", ctx.Request.Method,
		"route", ctx.Request.URL.Path,
	)
	ctx.Set(logger.ContextKey, log)

	ctx.Next()

	log.Infow("request completed",
		"status", ctx.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
