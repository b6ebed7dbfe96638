package app

import (
	"net/http"
	"time"

	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/configs"
	adapterhttp "github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/adapter/http"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/adapter/stripe"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/internal/usecase"
)

// InitWithConfig wires the gateway, use case, handlers and router into a
// ready-to-run HTTP server. No connections are opened here: the Stripe
// client is lazy and a missing key fails on the first payment call.
func InitWithConfig(cfg configs.Config) (*http.Server, error) {
	gw := stripe.NewGateway(cfg.Stripe.SecretKey, 30*time.Second)

	createUC := usecase.NewCreatePaymentIntent(gw)
	ph := adapterhttp.NewPaymentHandler(createUC)
	pages := adapterhttp.NewPageHandler(cfg.Stripe.PublishableKey)
	router := adapterhttp.NewRouter(cfg, ph, pages)

	srv := &http.Server{
		Addr:         cfg.App.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}
	return srv, nil
}
