package main

import (
	"log"

	"github.com/tuananhtran-web/orderbanhmi/configs"
	"github.com/tuananhtran-web/orderbanhmi/routes"
	"github.com/tuananhtran-web/orderbanhmi/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// Realtime hub
	hub := ws.NewHub()
	go hub.Run()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, cfg, hub)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
