package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/service"
	"github.com/vpetrenko/go-identity-server/internal/utils"
	"github.com/vpetrenko/go-identity-server/models"
)

func executeAuditList(audit *mockAuditService, target string) *httptest.ResponseRecorder {
	services := newTestServices()
	services.AuditService = audit
	h := NewHandler(services, logger.Nop())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), utils.PrincipalCtxKey, testActor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	})
	router.Get("/api/audit", h.listAuditEvents)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestListAuditEvents_FilterFromQuery(t *testing.T) {
	var gotFilter models.AuditFilter
	audit := &mockAuditService{
		listFn: func(_ context.Context, actor models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error) {
			assert.Equal(t, testActor, actor)
			gotFilter = filter
			return []models.AuditEvent{}, nil
		},
	}

	rr := executeAuditList(audit, "/api/audit?actor_id=admin-1&action=login&from=2026-08-01T00:00:00Z&limit=50")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "admin-1", gotFilter.ActorID)
	assert.Equal(t, "login", gotFilter.Action)
	assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), gotFilter.From)
	assert.Equal(t, uint64(50), gotFilter.Limit)
}

func TestListAuditEvents_ForbiddenForNonAdmin(t *testing.T) {
	audit := &mockAuditService{
		listFn: func(_ context.Context, _ models.Principal, _ models.AuditFilter) ([]models.AuditEvent, error) {
			return nil, service.ErrForbidden
		},
	}

	rr := executeAuditList(audit, "/api/audit")

	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestListAuditEvents_IgnoresUnparsableTimestamps(t *testing.T) {
	var gotFilter models.AuditFilter
	audit := &mockAuditService{
		listFn: func(_ context.Context, _ models.Principal, filter models.AuditFilter) ([]models.AuditEvent, error) {
			gotFilter = filter
			return nil, nil
		},
	}

	rr := executeAuditList(audit, "/api/audit?from=yesterday&limit=abc")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, gotFilter.From.IsZero())
	assert.Zero(t, gotFilter.Limit)
}
