package http

import (
	"errors"
	"net/http"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/service"
	"github.com/vpetrenko/go-identity-server/internal/store"
)

// errorStatusMap translates service and store sentinels into HTTP statuses.
// ErrInvalidCredentials maps to 400 here because on the update-password path
// it is a precondition failure; the login handler maps it to 401 itself
// before consulting this table.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrPasswordMismatch:        http.StatusBadRequest,
	service.ErrPasswordAlreadySet:      http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrCannotReusePassword:     http.StatusBadRequest,
	service.ErrStatusUnchanged:         http.StatusBadRequest,
	service.ErrAccountInactive:         http.StatusBadRequest,
	service.ErrInvalidRole:             http.StatusBadRequest,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrUserNotFound:            http.StatusNotFound,
	service.ErrCountryNotFound:         http.StatusNotFound,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrUserNameAlreadyExists: http.StatusConflict,
	store.ErrRoleAlreadyAssigned:   http.StatusConflict,
	store.ErrRoleWasNotAssigned:    http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrNoCountryWasFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError logs err and writes the status mapped for it. Statuses in the
// 5xx range hide the error text behind the generic status message so internal
// details never reach the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	log.Err(err).Int("status", status).Send()

	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}
	http.Error(w, err.Error(), status)
}
