package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/internal/store"
	"github.com/vpetrenko/go-identity-server/models"
)

// countryService serves the seeded country reference data. It is read-only
// and requires no authentication.
type countryService struct {
	countryRepository store.CountryRepository
	logger            *logger.Logger
}

// NewCountryService constructs a [CountryService] backed by the given
// repository.
func NewCountryService(countryRepository store.CountryRepository, logger *logger.Logger) CountryService {
	return &countryService{
		countryRepository: countryRepository,
		logger:            logger,
	}
}

func (s *countryService) ListCountries(ctx context.Context) ([]models.Country, error) {
	countries, err := s.countryRepository.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("country listing failed: %w", err)
	}
	return countries, nil
}

func (s *countryService) GetCountryByCode(ctx context.Context, code string) (models.Country, error) {
	if strings.TrimSpace(code) == "" {
		return models.Country{}, ErrInvalidDataProvided
	}

	country, err := s.countryRepository.FindCountryByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNoCountryWasFound) {
			return models.Country{}, ErrCountryNotFound
		}
		return models.Country{}, fmt.Errorf("country lookup failed: %w", err)
	}

	return country, nil
}
