package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"budgetd/internal/domain"
	"budgetd/internal/service"
	"budgetd/internal/util"
)

// RoleHandler handles HTTP requests for role management.
type RoleHandler struct {
	service service.RoleService
	logger  *slog.Logger
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(svc service.RoleService, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		service: svc,
		logger:  logger,
	}
}

// List handles GET /roles
func (h *RoleHandler) List(w http.ResponseWriter, r *http.Request) {
	roles, err := h.service.GetAllRoles(r.Context())
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, roles)
}

// Get handles GET /roles/{roleID}
func (h *RoleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "roleID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	role, err := h.service.GetRoleByID(r.Context(), id)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, role)
}

// Add handles POST /roles
func (h *RoleHandler) Add(w http.ResponseWriter, r *http.Request) {
	var role domain.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	created, err := h.service.AddRole(r.Context(), &role)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusCreated, created)
}

// Update handles PUT /roles/{roleID}
func (h *RoleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "roleID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	var role domain.Role
	if err := json.NewDecoder(r.Body).Decode(&role); err != nil {
		respondWithError(w, h.logger, util.ErrInvalidInput)
		return
	}
	updated, err := h.service.UpdateRole(r.Context(), id, &role)
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	respondWithJSON(w, h.logger, http.StatusOK, updated)
}

// Delete handles DELETE /roles/{roleID}
func (h *RoleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "roleID")
	if err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	if err := h.service.DeleteRole(r.Context(), id); err != nil {
		respondWithError(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
