// Package server provides the HTTP REST API for the opportunity engine.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/magician360/opportunity-engine/internal/ai"
	"github.com/magician360/opportunity-engine/internal/catalog"
	"github.com/magician360/opportunity-engine/internal/feasibility"
	"github.com/magician360/opportunity-engine/internal/ideas"
	"github.com/magician360/opportunity-engine/internal/matching"
	"github.com/magician360/opportunity-engine/internal/report"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	catalog    *catalog.Catalog
	matcher    *matching.Matcher
	listGen    *ideas.ListGenerator
	templGen   *ideas.TemplatedGenerator
	engine     *feasibility.Engine
	reports    *report.Generator
	aiService  *ai.Service
}

// Config holds server configuration
type Config struct {
	Addr     string
	Seed     int64
	AIConfig *ai.Config
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	cat := catalog.Default()
	if err := cat.Verify(); err != nil {
		return nil, fmt.Errorf("catalog integrity check failed: %w", err)
	}

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}

	s := &Server{
		catalog:   cat,
		matcher:   matching.NewMatcher(cat, rng),
		listGen:   ideas.NewListGenerator(rng),
		templGen:  ideas.NewTemplatedGenerator(rng),
		engine:    feasibility.NewEngine(),
		reports:   report.NewGenerator(nil),
		aiService: ai.NewService(cfg.AIConfig),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /ideas", s.handleGenerateIdea)
	mux.HandleFunc("POST /match", s.handleMatch)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("POST /reports", s.handleGenerateReport)
	mux.HandleFunc("GET /regions", s.handleListRegions)
	mux.HandleFunc("GET /regions/{region}/resources", s.handleRegionResources)
	mux.HandleFunc("GET /health", s.handleHealth)

	addr := cfg.Addr
	if addr == "" {
		addr = ":8080"
	}

	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
