package main

import (
	"log"
	"os"

	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/cmd/checkout-api/app"
	"github.com/Yifan-Van/Demo-Book-Store-Payment-Integration/configs"
)

func main() {
	env := os.Getenv("APP_ENV") // dev | staging | prod
	if env == "" {
		env = "dev"
	}

	cfg, err := configs.Load("configs", env)
	if err != nil {
		log.Fatal(err)
	}

	srv, err := app.InitWithConfig(cfg)
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("checkout-api (%s) getting served on %s", env, cfg.App.HTTPAddr)
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}
