// Package api - Thin, deterministic API layer
// The API is ONLY responsible for: input ingestion, engine orchestration,
// output serialization. The API NEVER performs sizing logic.
package api

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"cablesizer/core/catalog"
	"cablesizer/core/compare"
	"cablesizer/core/report"
	"cablesizer/core/sizing"
	"cablesizer/db"
	"cablesizer/internal/logging"
)

// Server is the API server
type Server struct {
	engine  *sizing.Engine
	mux     *http.ServeMux
	version string
	store   db.CalculationStore
}

// NewServer creates a new API server (without persistence)
func NewServer(version string) *Server {
	return NewServerWithStore(version, nil)
}

// NewServerWithStore creates a new API server with a calculation store
func NewServerWithStore(version string, store db.CalculationStore) *Server {
	s := &Server{
		engine:  sizing.NewDefault(),
		mux:     http.NewServeMux(),
		version: version,
		store:   store,
	}

	s.registerRoutes()
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Core endpoints
	s.mux.HandleFunc("POST /size", s.handleSize)
	s.mux.HandleFunc("POST /report", s.handleReport)
	s.mux.HandleFunc("POST /compare", s.handleCompare)

	// Reference data
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /sizes/{size}", s.handleSizeProperties)
	s.mux.HandleFunc("GET /voltage-levels", s.handleVoltageLevels)

	// Calculation history (requires a store)
	s.mux.HandleFunc("POST /calculations", s.handleSaveCalculation)
	s.mux.HandleFunc("GET /calculations", s.handleListCalculations)

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /version", s.handleVersion)
}

// handleSize handles POST /size
func (s *Server) handleSize(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req SizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	validation := sizing.Validate(req.Input)
	if !validation.OK() {
		s.writeError(w, "VALIDATION_ERROR", validation.Message(), validation.Errors, http.StatusBadRequest)
		return
	}

	result := s.engine.Size(req.Input)

	resp := &SizeResponse{
		RequestID: generateRequestID(),
		Timestamp: time.Now().UTC(),
		Result:    result,
		Warnings:  validation.Warnings,
		Metadata: &ResponseMetadata{
			InputHash:     computeInputHash(&req),
			EngineVersion: s.version,
			DurationMs:    time.Since(start).Milliseconds(),
		},
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// handleReport handles POST /report
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var req SizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	validation := sizing.Validate(req.Input)
	if !validation.OK() {
		s.writeError(w, "VALIDATION_ERROR", validation.Message(), validation.Errors, http.StatusBadRequest)
		return
	}

	s.writeJSON(w, report.Generate(s.engine, req.Input), http.StatusOK)
}

// handleCompare handles POST /compare
func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	// Validate every scenario before running any; the caller sees all
	// problems at once.
	for i, sc := range req.Scenarios {
		if validation := sizing.Validate(sc.Input); !validation.OK() {
			s.writeError(w, "VALIDATION_ERROR",
				fmt.Sprintf("Scenario %d errors: %s", i+1, validation.Message()),
				validation.Errors, http.StatusBadRequest)
			return
		}
	}

	s.writeJSON(w, compare.Run(s.engine, req.Scenarios), http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.engine.Catalog()
	der := s.engine.Derating()

	s.writeJSON(w, map[string]interface{}{
		"cable_sizes":          cat.Sizes(),
		"cable_properties":     cat.Entries(),
		"installation_methods": der.InstallationMethods(),
		"installation_factors": der.InstallationFactors(),
		"temperature_factors":  der.TemperatureFactors(),
	}, http.StatusOK)
}

// handleSizeProperties handles GET /sizes/{size}
func (s *Server) handleSizeProperties(w http.ResponseWriter, r *http.Request) {
	size := r.PathValue("size")
	entry, ok := s.engine.Catalog().Lookup(size)
	if !ok {
		s.writeError(w, "NOT_FOUND", fmt.Sprintf("cable size not found: %s", size), nil, http.StatusNotFound)
		return
	}
	s.writeJSON(w, entry, http.StatusOK)
}

// handleVoltageLevels handles GET /voltage-levels
func (s *Server) handleVoltageLevels(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, catalog.StandardVoltageLevels(), http.StatusOK)
}

// handleSaveCalculation handles POST /calculations
func (s *Server) handleSaveCalculation(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "Database not connected", nil, http.StatusServiceUnavailable)
		return
	}

	var req CalculationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), nil, http.StatusBadRequest)
		return
	}

	validation := sizing.Validate(req.Input)
	if !validation.OK() {
		s.writeError(w, "VALIDATION_ERROR", validation.Message(), validation.Errors, http.StatusBadRequest)
		return
	}

	result := s.engine.Size(req.Input)

	rec := &db.CalculationRecord{
		ProjectID:          req.ProjectID,
		Name:               req.Name,
		Voltage:            req.Voltage,
		LoadKW:             req.PowerKW,
		PowerFactor:        req.PowerFactor,
		Distance:           req.Distance,
		RecommendedSize:    result.RecommendedSize,
		VoltageDropPercent: result.VoltageDropPercent,
		PowerLossWatts:     result.PowerLossWatts,
	}

	if err := s.store.Save(r.Context(), rec); err != nil {
		logging.Error("failed to save calculation", zap.Error(err))
		s.writeError(w, "STORAGE_ERROR", err.Error(), nil, http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, rec, http.StatusCreated)
}

// handleListCalculations handles GET /calculations?project_id=N
func (s *Server) handleListCalculations(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		s.writeError(w, "STORE_UNAVAILABLE", "Database not connected", nil, http.StatusServiceUnavailable)
		return
	}

	projectID, err := strconv.ParseInt(r.URL.Query().Get("project_id"), 10, 64)
	if err != nil {
		s.writeError(w, "INVALID_REQUEST", "project_id query parameter is required", nil, http.StatusBadRequest)
		return
	}

	records, err := s.store.ListByProject(r.Context(), projectID)
	if err != nil {
		logging.Error("failed to list calculations", zap.Error(err))
		s.writeError(w, "STORAGE_ERROR", err.Error(), nil, http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, map[string]interface{}{
		"calculations": records,
		"count":        len(records),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "cablesizer",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) writeError(w http.ResponseWriter, code, message string, details []string, status int) {
	s.writeJSON(w, &ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}, status)
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// ListenAndServe starts the server
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}

// Helper functions

func computeInputHash(req *SizeRequest) string {
	data, _ := json.Marshal(req)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func generateRequestID() string {
	return fmt.Sprintf("calc-%d", time.Now().UnixNano())
}
