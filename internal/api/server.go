// Package api exposes the drafting pipeline over HTTP
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/legalmate/legalmate/internal/clauses"
	"github.com/legalmate/legalmate/internal/model"
	"github.com/legalmate/legalmate/internal/pipeline"
)

// Server serves the drafting API
type Server struct {
	pipeline *pipeline.Pipeline
	config   *model.Config
	router   *mux.Router
}

// NewServer creates a new API server around a pipeline
func NewServer(p *pipeline.Pipeline, cfg *model.Config) *Server {
	s := &Server{
		pipeline: p,
		config:   cfg,
		router:   mux.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.router.Use(Logger)
	s.router.Use(Recoverer)

	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")
	s.router.HandleFunc("/api/draft", s.handleDraft).Methods("POST")
	s.router.HandleFunc("/api/review", s.handleReview).Methods("POST")
	s.router.HandleFunc("/api/clauses", s.handleClauses).Methods("GET")
	s.router.HandleFunc("/api/contracts", s.handleListContracts).Methods("GET")
	s.router.HandleFunc("/api/contracts/{id:[0-9]+}", s.handleGetContract).Methods("GET")
	s.router.HandleFunc("/api/contracts/{id:[0-9]+}", s.handleDeleteContract).Methods("DELETE")
}

// Handler returns the HTTP handler for testing and embedding
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts down
// gracefully
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Server.Addr,
		Handler:      s.router,
		ReadTimeout:  s.config.Server.ReadTimeout,
		WriteTimeout: s.config.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting legalmate API on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"generator": s.pipeline.Provider().Name(),
	})
}

// draftRequest is the POST /api/draft body
type draftRequest struct {
	Type     string         `json:"type"`
	Language string         `json:"language"`
	Notes    string         `json:"notes"`
	HTML     bool           `json:"html"`
	Clauses  []string       `json:"clauses"`
	Custom   []model.Clause `json:"custom_clauses"`
	Save     bool           `json:"save"`
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	var req draftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	contractType, ok := model.ParseContractType(req.Type)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown contract type: %q (supported: nda, service, lease)", req.Type))
		return
	}
	language, ok := model.ParseLanguage(req.Language)
	if !ok {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown language: %q (supported: english, hindi)", req.Language))
		return
	}

	record, err := s.pipeline.Draft(r.Context(), pipeline.DraftRequest{
		Type:      contractType,
		Language:  language,
		Notes:     req.Notes,
		HTML:      req.HTML,
		ClauseIDs: req.Clauses,
		Custom:    req.Custom,
		Save:      req.Save,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// reviewRequest is the POST /api/review body
type reviewRequest struct {
	Text string `json:"text"`
	HTML bool   `json:"html"`
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	writeJSON(w, http.StatusOK, s.pipeline.Review(req.Text, req.HTML))
}

func (s *Server) handleClauses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"clauses": clauses.Builtin(),
	})
}

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "contract store is disabled")
		return
	}

	contracts, err := store.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if contracts == nil {
		contracts = []model.SavedContract{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"contracts": contracts,
	})
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "contract store is disabled")
		return
	}

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	contract, err := store.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, contract)
}

func (s *Server) handleDeleteContract(w http.ResponseWriter, r *http.Request) {
	store := s.pipeline.Store()
	if store == nil {
		writeError(w, http.StatusServiceUnavailable, "contract store is disabled")
		return
	}

	id, _ := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err := store.Delete(id); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
