package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

func (h *Handler) listAuditEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	actor, ok := principalFromRequest(w, r)
	if !ok {
		return
	}

	events, err := h.services.AuditService.List(ctx, actor, auditFilterFromQuery(r))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

// auditFilterFromQuery builds an audit filter from the query string.
// Timestamps are RFC 3339; unparsable values are ignored.
func auditFilterFromQuery(r *http.Request) models.AuditFilter {
	query := r.URL.Query()

	filter := models.AuditFilter{
		ActorID:  query.Get("actor_id"),
		Action:   query.Get("action"),
		TargetID: query.Get("target_id"),
	}

	if raw := query.Get("from"); raw != "" {
		if from, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.From = from
		}
	}
	if raw := query.Get("to"); raw != "" {
		if to, err := time.Parse(time.RFC3339, raw); err == nil {
			filter.To = to
		}
	}
	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.ParseUint(raw, 10, 64); err == nil {
			filter.Limit = limit
		}
	}

	return filter
}
