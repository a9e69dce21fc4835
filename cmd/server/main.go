package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lumenlabs/lumen/internal/api"
	"github.com/lumenlabs/lumen/internal/config"
	"github.com/lumenlabs/lumen/internal/content"
	"github.com/lumenlabs/lumen/internal/gen"
	"github.com/lumenlabs/lumen/internal/page"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Setup logging
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if config.AppConfig.LogLevel == "DEBUG" {
		log.Println("Service starting in DEBUG mode")
	}

	// Load the static page content
	sections, err := content.Load()
	if err != nil {
		log.Fatalf("Failed to load page content: %v", err)
	}

	// Initialize the generation service
	genService := gen.NewService()
	defer genService.Close()

	// Wire the page controllers
	sectionCtrl := page.NewSections(genService, sections)
	visionCtrl := page.NewVision(genService, sectionCtrl.Titles)
	chatCtrl := page.NewChat(func() gen.Replier { return genService.StartChat() })
	iconCtrl := page.NewIcons(genService, content.Phases())

	// Kick off icon generation in the background, the page-load equivalent
	// of resolving the placeholders. Failures resolve to the fallback glyph.
	go iconCtrl.ResolveAll(context.Background())

	// Initialize API Handler and Router
	apiHandler := api.NewAPIHandler(sectionCtrl, visionCtrl, chatCtrl, iconCtrl)
	router := api.NewRouter(apiHandler)

	// Start HTTP server
	serverAddr := fmt.Sprintf(":%s", config.AppConfig.HTTPPort)

	srv := &http.Server{
		Addr:        serverAddr,
		Handler:     router,
		ReadTimeout: 15 * time.Second, // Adjusted for potentially slower LLM handshakes
		// No WriteTimeout: generation streams have no deadline and run to
		// their own completion or failure.
		IdleTimeout: 120 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		log.Printf("Starting server on %s. Press Ctrl+C to quit.", serverAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", serverAddr, err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received
	log.Println("Shutting down server...")

	// Create a context with a timeout for the shutdown.
	// This gives active connections time to finish.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel() // Release resources if srv.Shutdown completes before timeout

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting gracefully")
}
