package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vpetrenko/go-identity-server/internal/service"
	"github.com/vpetrenko/go-identity-server/internal/store"
)

func TestStatusFromError_TableTest(t *testing.T) {
	tests := []struct {
		err        error
		wantStatus int
	}{
		{service.ErrInvalidDataProvided, http.StatusBadRequest},
		{service.ErrPasswordMismatch, http.StatusBadRequest},
		{service.ErrPasswordAlreadySet, http.StatusBadRequest},
		{service.ErrInvalidCredentials, http.StatusBadRequest},
		{service.ErrCannotReusePassword, http.StatusBadRequest},
		{service.ErrStatusUnchanged, http.StatusBadRequest},
		{service.ErrAccountInactive, http.StatusBadRequest},
		{service.ErrForbidden, http.StatusForbidden},
		{service.ErrUserNotFound, http.StatusNotFound},
		{service.ErrCountryNotFound, http.StatusNotFound},
		{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
		{store.ErrUserNameAlreadyExists, http.StatusConflict},
		{store.ErrRoleAlreadyAssigned, http.StatusConflict},
		{store.ErrRoleWasNotAssigned, http.StatusBadRequest},
		{store.ErrNoUserWasFound, http.StatusNotFound},
		{store.ErrExecutingQuery, http.StatusInternalServerError},
		{errors.New("unmapped error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_MatchesWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("user update failed: %w", service.ErrUserNotFound)

	assert.Equal(t, http.StatusNotFound, statusFromError(wrapped))
}
