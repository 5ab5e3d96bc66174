package handler

import (
	"net/http"

	"natal-api/internal/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups the route handlers wired into the router
type Handlers struct {
	Places   *PlaceHandler
	Timezone *TimezoneHandler
	Charts   *ChartHandler
	Sessions *SessionHandler
	Accounts *AccountHandler
}

// NewRouter registers all routes
func NewRouter(h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(), Metrics())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/places/resolve", h.Places.Resolve)
	r.GET("/timezone/offset", h.Timezone.Offset)
	r.GET("/charts/lilith", h.Charts.Lilith)
	r.GET("/charts/nodes", h.Charts.Nodes)

	r.POST("/sessions", h.Sessions.Start)
	r.POST("/sessions/:id/messages", h.Sessions.Message)

	r.GET("/accounts/:uid", h.Accounts.Account)
	r.POST("/accounts/:uid/readings", h.Accounts.Reading)

	payments := r.Group("/payments")
	payments.POST("/invoices", h.Accounts.Invoice)
	payments.POST("/precheckout", h.Accounts.PreCheckout)
	payments.POST("/confirm", h.Accounts.Confirm)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
