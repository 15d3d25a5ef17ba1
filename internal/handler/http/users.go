package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

// principalFromRequest extracts the acting principal that the auth middleware
// stored in the request context. A missing principal means the route was
// wired outside the authenticated group, which is a programming error; the
// request is rejected with 401 rather than panicking.
func principalFromRequest(w http.ResponseWriter, r *http.Request) (models.Principal, bool) {
	principal, ok := utils.GetPrincipalFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no principal found in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return principal, ok
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.UserService.CreateUser(ctx, actor, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(ctx, actor, chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	users, err := h.services.UserService.ListUsers(ctx, actor, userFilterFromQuery(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// userFilterFromQuery builds a listing filter from the query string.
// Unparsable numeric parameters are ignored rather than rejected.
func userFilterFromQuery(r *http.Request) models.UserFilter {
	query := r.URL.Query()

	filter := models.UserFilter{
		UserName: query.Get("user_name"),
		Email:    query.Get("email"),
	}

	if raw := query.Get("status"); raw != "" {
		if status, err := strconv.Atoi(raw); err == nil {
			filter.AccountStatus = &status
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.Limit = limit
		}
	}
	if raw := query.Get("offset"); raw != "" {
		if offset, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.Offset = offset
		}
	}

	return filter
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.UpdateUser(ctx, actor, chi.URLParam(r, "id"), req); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) activateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.ActivateUser(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.UserService.DeactivateUser(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
