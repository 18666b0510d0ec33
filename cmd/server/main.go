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

	"banter-backend/internal/config"
	"banter-backend/internal/handlers"
	"banter-backend/internal/router"
	"banter-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Banter debate relay...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize LLM Backend ────
	completer, err := services.NewCompleter(context.Background(), cfg)
	if err != nil {
		log.Fatalf("✗ LLM client initialization failed: %v", err)
	}
	if gemini, ok := completer.(*services.GeminiService); ok {
		defer gemini.Close()
	}
	log.Printf("✓ LLM backend initialized (%s)", cfg.LLMProvider)

	// ──── Step 3: Initialize Services & Handlers ────
	debateService := services.NewDebateService(completer, cfg.MaxTokens, cfg.UpstreamTimeout)
	scoringService := services.NewScoringService(completer)

	debateHandler := handlers.NewDebateHandler(debateService)
	scoreHandler := handlers.NewScoreHandler(scoringService)

	// ──── Step 4: Start HTTP Server ────
	r := router.New(debateHandler, scoreHandler, cfg.AllowedOrigins)

	// No WriteTimeout: a debate reply waits on the upstream model for as long as it takes.
	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			log.Printf("✗ Graceful shutdown failed: %v", err)
		}
	}()

	log.Printf("✓ Server running on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
