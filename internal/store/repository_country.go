package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/vpetrenko/go-identity-server/internal/logger"
	"github.com/vpetrenko/go-identity-server/models"
)

// countryRepository is the PostgreSQL-backed implementation of
// [CountryRepository] over the seeded "countries" reference table.
type countryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCountryRepository constructs a [CountryRepository] backed by the
// provided database connection and logger.
func NewCountryRepository(db *DB, logger *logger.Logger) CountryRepository {
	logger.Debug().Msg("creating country repository")
	return &countryRepository{
		db:     db,
		logger: logger,
	}
}

// ListCountries retrieves the whole reference table ordered by code.
func (r *countryRepository) ListCountries(ctx context.Context) ([]models.Country, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listCountries)
	if err != nil {
		log.Err(err).Str("func", "*countryRepository.ListCountries").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	countries := make([]models.Country, 0, 250)
	for rows.Next() {
		var country models.Country
		if scanErr := rows.Scan(&country.Code, &country.Name, &country.DialCode); scanErr != nil {
			log.Err(scanErr).Str("func", "*countryRepository.ListCountries").Msg("failed to scan country row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		countries = append(countries, country)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*countryRepository.ListCountries").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return countries, nil
}

// FindCountryByCode retrieves a single country by its ISO code.
// The lookup is case-insensitive; codes are stored upper case.
//
// Returns [ErrNoCountryWasFound] when no row matches.
func (r *countryRepository) FindCountryByCode(ctx context.Context, code string) (models.Country, error) {
	log := logger.FromContext(ctx)

	var country models.Country
	row := r.db.QueryRowContext(ctx, findCountryByCode, strings.ToUpper(code))

	if err := row.Scan(&country.Code, &country.Name, &country.DialCode); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Country{}, ErrNoCountryWasFound
		}
		log.Err(err).Str("func", "*countryRepository.FindCountryByCode").Str("code", code).Msg("error: scanning error")
		return models.Country{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return country, nil
}
