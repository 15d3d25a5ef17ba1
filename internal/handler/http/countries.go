package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vpetrenko/go-identity-server/internal/utils"
)

func (h *Handler) listCountries(w http.ResponseWriter, r *http.Request) {
	countries, err := h.services.CountryService.ListCountries(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, countries, http.StatusOK)
}

func (h *Handler) getCountryByCode(w http.ResponseWriter, r *http.Request) {
	country, err := h.services.CountryService.GetCountryByCode(r.Context(), chi.URLParam(r, "code"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, country, http.StatusOK)
}
