package main

import (
	"fmt"
	"log"

	"backend/configs"
	"backend/middlewares"
	"backend/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedOperator(); err != nil {
		log.Fatalf("seed operator failed: %v", err)
	}
	if err := configs.SeedCatalog(); err != nil {
		log.Fatalf("seed catalog failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	hub, err := routes.RegisterRoutes(r, db, cfg)
	if err != nil {
		log.Fatalf("load catalog failed: %v", err)
	}
	go hub.Run()

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("POS server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
