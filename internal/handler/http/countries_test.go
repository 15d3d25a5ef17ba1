package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/service"
	"github.com/vpetrenko/go-identity-server/models"
)

func newCountryRouter(countries *mockCountryService) http.Handler {
	services := newTestServices()
	services.CountryService = countries
	return NewHandler(services, logger.Nop()).Init()
}

func TestListCountries(t *testing.T) {
	router := newCountryRouter(&mockCountryService{
		listFn: func(_ context.Context) ([]models.Country, error) {
			return []models.Country{
				{Code: "DE", Name: "Germany", DialCode: "+49"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"code":"DE"`)
}

func TestGetCountryByCode_Found(t *testing.T) {
	router := newCountryRouter(&mockCountryService{
		getFn: func(_ context.Context, code string) (models.Country, error) {
			assert.Equal(t, "FR", code)
			return models.Country{Code: "FR", Name: "France", DialCode: "+33"}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/countries/FR", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"name":"France"`)
}

func TestGetCountryByCode_NotFound(t *testing.T) {
	router := newCountryRouter(&mockCountryService{
		getFn: func(_ context.Context, _ string) (models.Country, error) {
			return models.Country{}, service.ErrCountryNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/countries/XX", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
