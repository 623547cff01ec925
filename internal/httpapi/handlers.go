// Package httpapi exposes the string cache over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	cache "github.com/goforj/flexcache"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	msgCached    = "Cached successfully"
	msgNotFound  = "Cache not found."
	msgCleared   = "Cache cleared."
	readyTimeout = 2 * time.Second
)

// Handlers serves the cache endpoints.
type Handlers struct {
	cache    *cache.Cache[string]
	entryTTL time.Duration
	logger   *zap.Logger
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status string `json:"status"`
	Driver string `json:"driver"`
	Error  string `json:"error,omitempty"`
}

// New creates handlers that store entries with entryTTL.
func New(c *cache.Cache[string], entryTTL time.Duration, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{cache: c, entryTTL: entryTTL, logger: logger}
}

// Routes registers the cache API and health check on r.
func (h *Handlers) Routes(r *mux.Router) {
	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	api := r.PathPrefix("/api/cache").Subrouter()
	api.HandleFunc("/set", h.Set).Methods(http.MethodPost)
	api.HandleFunc("/get", h.Get).Methods(http.MethodGet)
	api.HandleFunc("/clear/{key}", h.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/clear", h.Clear).Methods(http.MethodDelete)
}

// Set stores a value
// @Summary Set cache entry
// @Description Stores a JSON string under key with the configured entry TTL
// @Tags cache
// @Accept json
// @Produce plain
// @Param key query string true "Cache key"
// @Param value body string true "Value to cache"
// @Success 200 {string} string "Cached successfully"
// @Failure 400 {string} string "Missing key or invalid body"
// @Failure 500 {string} string "Internal server error"
// @Router /api/cache/set [post]
func (h *Handlers) Set(w http.ResponseWriter, r *http.Request) {
	key, ok := requireKey(w, r)
	if !ok {
		return
	}

	var value string
	if err := json.NewDecoder(r.Body).Decode(&value); err != nil {
		http.Error(w, fmt.Sprintf("Invalid JSON string: %v", err), http.StatusBadRequest)
		return
	}

	if err := h.cache.Set(r.Context(), key, value, cache.WithTTL(h.entryTTL)); err != nil {
		h.fail(w, "set", key, err)
		return
	}
	writeText(w, http.StatusOK, msgCached)
}

// Get returns a cached value
// @Summary Get cache entry
// @Description Returns the JSON string stored under key
// @Tags cache
// @Produce json
// @Param key query string true "Cache key"
// @Success 200 {string} string "Cached value"
// @Failure 400 {string} string "Missing key"
// @Failure 404 {string} string "Cache not found."
// @Failure 500 {string} string "Internal server error"
// @Router /api/cache/get [get]
func (h *Handlers) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := requireKey(w, r)
	if !ok {
		return
	}

	value, found, err := h.cache.Get(r.Context(), key)
	if err != nil {
		h.fail(w, "get", key, err)
		return
	}
	if !found {
		http.Error(w, msgNotFound, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(value)
}

// Remove deletes one entry
// @Summary Remove cache entry
// @Tags cache
// @Produce plain
// @Param key path string true "Cache key"
// @Success 200 {string} string "Cache cleared."
// @Failure 500 {string} string "Internal server error"
// @Router /api/cache/clear/{key} [delete]
func (h *Handlers) Remove(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	if err := h.cache.Remove(r.Context(), key); err != nil {
		h.fail(w, "remove", key, err)
		return
	}
	writeText(w, http.StatusOK, msgCleared)
}

// Clear deletes every entry in the namespace
// @Summary Clear cache
// @Description Removes every entry under the cache prefix; other keys are untouched
// @Tags cache
// @Produce plain
// @Success 200 {string} string "Cache cleared."
// @Failure 500 {string} string "Internal server error"
// @Router /api/cache/clear [delete]
func (h *Handlers) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cache.Clear(r.Context()); err != nil {
		h.fail(w, "clear", "", err)
		return
	}
	writeText(w, http.StatusOK, msgCleared)
}

// Health reports whether the backend is reachable
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	resp := HealthResponse{Status: "ok", Driver: string(h.cache.Driver())}
	status := http.StatusOK
	if err := h.cache.Backend().Ready(ctx); err != nil {
		resp.Status = "unavailable"
		resp.Error = err.Error()
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) fail(w http.ResponseWriter, op, key string, err error) {
	h.logger.Error("cache request failed", zap.String("op", op), zap.String("key", key), zap.Error(err))
	status := http.StatusInternalServerError
	if errors.Is(err, cache.ErrEncode) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func requireKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "key query parameter is required", http.StatusBadRequest)
		return "", false
	}
	return key, true
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	fmt.Fprint(w, msg)
}
