package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"

	"github.com/VpkDevs/Tax-Filing-Tool/calc"
	"github.com/VpkDevs/Tax-Filing-Tool/history"
	"github.com/VpkDevs/Tax-Filing-Tool/internal/logger"
)

type Server struct {
	db        *sql.DB // nil when running with the in-memory store
	evaluator *calc.Evaluator
	recorder  *history.Recorder
	store     history.Store
	router    *chi.Mux
}

// NewServer wires the evaluator and history store. When databaseURL is
// empty the server runs with an in-memory history store, which is also
// the fallback when the database cannot be reached.
func NewServer(databaseURL string) (*Server, error) {
	var db *sql.DB
	var store history.Store

	if databaseURL != "" {
		conn, err := sql.Open("postgres", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := conn.Ping(); err != nil {
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		db = conn
		store = history.NewPostgresStore(conn)
		logger.Info("using postgres history store")
	} else {
		store = history.NewInMemoryStore()
		logger.Info("DATABASE_URL not set, using in-memory history store")
	}

	s := &Server{
		db:        db,
		evaluator: calc.New(),
		recorder:  history.NewRecorder(store),
		store:     store,
	}

	s.setupRoutes()

	return s, nil
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	// Health check
	r.Get("/api/v1/health", s.handleHealth)

	// Calculator API
	r.Post("/api/calculate", s.handleCalculate)
	r.Get("/api/history", s.handleHistory)

	// Pages
	r.Get("/", s.handleHome)
	r.Get("/tools", s.handleTools)
	r.Get("/tools/calculator", s.handleCalculatorPage)
	r.Get("/games", s.handleGames)
	r.NotFound(s.handleNotFound)

	s.router = r
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Health check handler
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
	})
}

// Calculation handler. Errors from the evaluator map to 400 with the
// error's kind; history persistence failures never affect the response.
func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondCalcError(w, &calc.Error{Kind: calc.KindValidation, Message: "Invalid request body"})
		return
	}

	memory := 0.0
	if req.Memory != nil {
		memory = *req.Memory
	}

	// Memory pseudo-operations are handled before evaluation and are
	// never recorded in history.
	if calc.IsMemoryOp(req.Expression) {
		result, updated := calc.ApplyMemoryOp(req.Expression, memory)
		respondJSON(w, http.StatusOK, CalculateResponse{Result: result, Memory: &updated})
		return
	}

	value, err := s.evaluator.Evaluate(req.Expression)
	if err != nil {
		var calcErr *calc.Error
		if errors.As(err, &calcErr) {
			logger.Warn("calculation failed", "expression", req.Expression, "kind", calcErr.Kind, "error", calcErr.Message)
			respondCalcError(w, calcErr)
			return
		}
		logger.Error("unexpected evaluation error", "expression", req.Expression, "error", err)
		respondCalcError(w, &calc.Error{Kind: calc.KindGeneral, Message: err.Error()})
		return
	}

	formatted := calc.FormatValue(value)
	s.recorder.Record(r.Context(), req.Expression, calc.FormatHistory(formatted))

	respondJSON(w, http.StatusOK, CalculateResponse{Result: formatted, Memory: req.Memory})
}

// History handler
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	category := history.Category(r.URL.Query().Get("category"))

	// DefaultLimit is a hard cap, not just a default: a larger requested
	// limit is clamped rather than honored.
	limit := history.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer", nil)
			return
		}
		if n > history.DefaultLimit {
			n = history.DefaultLimit
		}
		limit = n
	}

	records, err := s.store.List(r.Context(), category, limit)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load history", err)
		return
	}
	if records == nil {
		records = []*history.Record{}
	}

	respondJSON(w, http.StatusOK, HistoryResponse{History: records})
}

// Helper functions
func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]string{
		"error": message,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	respondJSON(w, status, response)
}

func respondCalcError(w http.ResponseWriter, calcErr *calc.Error) {
	respondJSON(w, http.StatusBadRequest, CalcErrorResponse{
		Error: calcErr.Message,
		Type:  string(calcErr.Kind),
	})
}

func main() {
	databaseURL := os.Getenv("DATABASE_URL")

	server, err := NewServer(databaseURL)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}
	if server.db != nil {
		defer server.db.Close()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         ":" + port,
		Handler:      server,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	go func() {
		logger.Info("server starting", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
