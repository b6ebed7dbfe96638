package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/configs"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/adapter/http/middleware"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/logging"
)

func NewRouter(cfg configs.Config, ph *PaymentHandler, pages *PageHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	logging.Init(cfg.App.Name, cfg.App.LogFile, cfg.App.LogLevel)
	l := logging.New("http")
	r.Use(middleware.Logging(l))

	r.LoadHTMLGlob(cfg.Web.TemplatesGlob)
	r.Static("/static", cfg.Web.StaticDir)

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/", pages.Home)
	r.GET("/checkout", pages.Checkout)
	r.GET("/success", pages.Success)

	r.POST("/create-payment-intent", ph.CreatePaymentIntent)

	return r
}
