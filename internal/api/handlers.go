// Package api provides HTTP API handlers.
package api

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/scamtrap/mantis/internal/authority"
	"github.com/scamtrap/mantis/internal/database"
	"github.com/scamtrap/mantis/internal/detect"
	"github.com/scamtrap/mantis/internal/models"
)

// Canned replies keep the scammer engaged without a persona layer.
const (
	replyEngage  = "I can share the details. What information do you need from my account?"
	replyNeutral = "Thanks for your message - can you tell me more?"
)

// Handler contains all HTTP handlers.
type Handler struct {
	engine    *detect.Engine
	catalogue *authority.Catalogue
	store     database.Store
}

// NewHandler creates a new handler.
func NewHandler(engine *detect.Engine, catalogue *authority.Catalogue, store database.Store) *Handler {
	return &Handler{
		engine:    engine,
		catalogue: catalogue,
		store:     store,
	}
}

// HealthCheck returns the service health status.
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

// ProcessMessage classifies an inbound message and returns the verdict with
// extracted intelligence. Conversation history and metadata are accepted but
// only the message text feeds the engine.
func (h *Handler) ProcessMessage(w http.ResponseWriter, r *http.Request) {
	var req models.MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if strings.TrimSpace(req.Message.Text) == "" {
		writeError(w, http.StatusBadRequest, "Message text is required")
		return
	}

	verdict := h.engine.Detect(r.Context(), req.Message.Text)

	reply := replyNeutral
	if verdict.IsScam {
		reply = replyEngage
	}

	var scamType *string
	if verdict.IsScam && verdict.Category != "" {
		scamType = &verdict.Category
	}

	writeJSON(w, http.StatusOK, models.MessageResponse{
		Status:                "success",
		Reply:                 reply,
		ScamDetected:          verdict.IsScam,
		ScamType:              scamType,
		ScamScore:             verdict.Score,
		ExtractedIntelligence: verdict.Intelligence,
	})
}

// ListAuthorities returns the seeded authority names.
func (h *Handler) ListAuthorities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"authorities": h.catalogue.SeededNames(),
	})
}

// GetAuthority returns the profile for a single authority, triggering
// discovery for unknown names.
func (h *Handler) GetAuthority(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := h.catalogue.Lookup(r.Context(), name)
	if profile == nil {
		writeError(w, http.StatusNotFound, "Authority not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// RefreshAuthority evicts and re-fetches an authority profile.
func (h *Handler) RefreshAuthority(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	profile := h.catalogue.ForceRefresh(r.Context(), name)
	if profile == nil {
		writeError(w, http.StatusNotFound, "Authority not found")
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GetAuditLogs returns paginated audit logs.
func (h *Handler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if offset < 0 {
		offset = 0
	}

	logs, err := h.store.GetAuditLogs(r.Context(), limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("Failed to get audit logs")
		writeError(w, http.StatusInternalServerError, "Failed to get audit logs")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"logs":   logs,
		"limit":  limit,
		"offset": offset,
	})
}

// CreateAPIKey creates a new API key.
func (h *Handler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name              string `json:"name"`
		RequestsPerMinute int    `json:"requests_per_minute"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "Name is required")
		return
	}

	// Generate random API key
	keyBytes := make([]byte, 32)
	if _, err := rand.Read(keyBytes); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to generate key")
		return
	}
	rawKey := "mts_" + base64.URLEncoding.EncodeToString(keyBytes)

	// Hash for storage
	hash := sha256.Sum256([]byte(rawKey))
	keyHash := hex.EncodeToString(hash[:])

	if req.RequestsPerMinute <= 0 {
		req.RequestsPerMinute = 60
	}

	apiKey := &models.APIKey{
		ID:                uuid.New().String(),
		KeyHash:           keyHash,
		Name:              req.Name,
		RequestsPerMinute: req.RequestsPerMinute,
		CreatedAt:         time.Now(),
	}

	if err := h.store.CreateAPIKey(r.Context(), apiKey); err != nil {
		log.Error().Err(err).Msg("Failed to create API key")
		writeError(w, http.StatusInternalServerError, "Failed to create API key")
		return
	}

	// Return the raw key only once
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":                  apiKey.ID,
		"key":                 rawKey, // Only returned on creation
		"name":                apiKey.Name,
		"requests_per_minute": apiKey.RequestsPerMinute,
		"created_at":          apiKey.CreatedAt,
	})
}

// ListAPIKeys lists all API keys (without the actual keys).
func (h *Handler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.store.ListAPIKeys(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to list API keys")
		writeError(w, http.StatusInternalServerError, "Failed to list API keys")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"keys": keys,
	})
}

// DeleteAPIKey deletes an API key.
func (h *Handler) DeleteAPIKey(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "ID is required")
		return
	}

	if err := h.store.DeleteAPIKey(r.Context(), id); err != nil {
		log.Error().Err(err).Msg("Failed to delete API key")
		writeError(w, http.StatusInternalServerError, "Failed to delete API key")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
