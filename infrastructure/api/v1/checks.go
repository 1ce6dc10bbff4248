// Package v1 implements the v1 REST API.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sitewise/camcheck/application/service"
	"github.com/sitewise/camcheck/domain/coverage"
	"github.com/sitewise/camcheck/infrastructure/api/middleware"
	"github.com/sitewise/camcheck/infrastructure/api/v1/dto"
)

// ChecksRouter handles coverage-check endpoints.
type ChecksRouter struct {
	checks       *service.Check
	logger       *slog.Logger
	historyLimit int
}

// NewChecksRouter creates a ChecksRouter. historyLimit is the default
// page size for listings.
func NewChecksRouter(checks *service.Check, historyLimit int, logger *slog.Logger) *ChecksRouter {
	if logger == nil {
		logger = slog.Default()
	}
	if historyLimit <= 0 {
		historyLimit = 50
	}
	return &ChecksRouter{checks: checks, logger: logger, historyLimit: historyLimit}
}

// Create handles POST /api/v1/checks: run a coverage check and store
// the outcome. An insufficient verdict is still a 201; only malformed
// input is a client error.
func (r *ChecksRouter) Create(w http.ResponseWriter, req *http.Request) {
	var body dto.CheckRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, fmt.Errorf("%w: decode request: %s", coverage.ErrValidation, err), r.logger)
		return
	}

	record, err := r.checks.Run(req.Context(), body.Target, body.Cameras)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, dto.FromRecord(record))
}

// List handles GET /api/v1/checks: stored checks, newest first.
func (r *ChecksRouter) List(w http.ResponseWriter, req *http.Request) {
	limit := queryInt(req, "limit", r.historyLimit)
	offset := queryInt(req, "offset", 0)

	records, err := r.checks.History(req.Context(), limit, offset)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	total, err := r.checks.Count(req.Context())
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.CheckListResponse{
		Data:  dto.FromRecords(records),
		Total: total,
	})
}

// Get handles GET /api/v1/checks/{id}.
func (r *ChecksRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	record, err := r.checks.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.FromRecord(record))
}

// Delete handles DELETE /api/v1/checks/{id}.
func (r *ChecksRouter) Delete(w http.ResponseWriter, req *http.Request) {
	id, err := pathID(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	if err := r.checks.Delete(req.Context(), id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(req *http.Request) (int64, error) {
	raw := chi.URLParam(req, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid id %q", coverage.ErrValidation, raw)
	}
	return id, nil
}

func queryInt(req *http.Request, name string, fallback int) int {
	raw := req.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
