package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/models"
)

func (h *Handler) assignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	role, ok := models.ParseRole(chi.URLParam(r, "role"))
	if !ok {
		log.Error().Str("role", chi.URLParam(r, "role")).Msg("unknown role name")
		http.Error(w, "unknown role name", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.AssignRole(ctx, actor, chi.URLParam(r, "id"), role); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	role, ok := models.ParseRole(chi.URLParam(r, "role"))
	if !ok {
		log.Error().Str("role", chi.URLParam(r, "role")).Msg("unknown role name")
		http.Error(w, "unknown role name", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.RemoveRole(ctx, actor, chi.URLParam(r, "id"), role); err != nil {
		respondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
