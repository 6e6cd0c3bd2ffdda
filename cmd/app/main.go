package main

import (
	"log"
	"os"
	_ "signage/docs"
	"signage/internal/adapters/http"
	"signage/internal/adapters/repository/fs"
	"signage/internal/core/services"
	"signage/internal/deck"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// Package main Digital Signage Slideshow Server.
//
// @title Digital Signage Slideshow Server
// @version 1.0
// @description Manages per-screen slideshow playlists: upload images or slide decks, edit the playlist, and let each display poll its configuration.
//
// @BasePath /api/v1
func main() {

	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Error loading .env file")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	slidesDir := os.Getenv("SLIDES_DIR")
	if slidesDir == "" {
		slidesDir = "slides"
	}

	store, err := fs.NewStore(slidesDir)
	if err != nil {
		log.Fatalf("failed to open slides directory %s: %v", slidesDir, err)
	}

	signageSvc := services.NewSignageService(store, store, store, deck.New(), logger)

	r := gin.Default()
	http.RegisterRoutes(r, signageSvc)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Starting server on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Could not start server: %v", err)
	}
}
