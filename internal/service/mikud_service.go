package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mikud-go/mikud/internal/adapter"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/internal/utils"
	"github.com/mikud-go/mikud/models"
)

const (
	opSearchMikud   = "search mikud"
	opSearchAddress = "search address"
	opSearchCities  = "search cities"
	opSearchStreets = "search streets"
)

type mikudService struct {
	adapter adapter.PostAPI
	tokens  TokenService
	traceID *utils.UUIDGenerator

	logger *logger.Logger
}

// NewMikudService constructs a [MikudService] that sends requests through
// api and authenticates them with tokens.
func NewMikudService(api adapter.PostAPI, tokens TokenService, logger *logger.Logger) MikudService {
	return &mikudService{
		adapter: api,
		tokens:  tokens,
		traceID: utils.NewUUIDGenerator(),
		logger:  logger,
	}
}

// SearchMikud implements [MikudService].
func (m *mikudService) SearchMikud(ctx context.Context, q models.MikudQuery) (models.Address, error) {
	if err := validateMikudQuery(q); err != nil {
		return models.Address{}, err
	}

	req := q.Request()
	raw, err := m.call(ctx, opSearchMikud, func(ctx context.Context) (json.RawMessage, error) {
		return m.adapter.SearchZip(ctx, req)
	})
	if err != nil {
		return models.Address{}, err
	}

	addr, err := normalizeAddress(raw)
	if err != nil {
		return models.Address{}, fmt.Errorf("%s: %w", opSearchMikud, err)
	}
	return addr, nil
}

// SearchAddress implements [MikudService].
func (m *mikudService) SearchAddress(ctx context.Context, zip string) (models.Address, error) {
	zip, err := normalizeZip(zip)
	if err != nil {
		return models.Address{}, err
	}

	req := models.SearchAddressRequest{Zipcode: zip}
	raw, err := m.call(ctx, opSearchAddress, func(ctx context.Context) (json.RawMessage, error) {
		return m.adapter.SearchAddress(ctx, req)
	})
	if err != nil {
		return models.Address{}, err
	}

	addr, err := normalizeAddress(raw)
	if err != nil {
		return models.Address{}, fmt.Errorf("%s: %w", opSearchAddress, err)
	}
	return addr, nil
}

// SearchCities implements [MikudService].
func (m *mikudService) SearchCities(ctx context.Context, prefix string) ([]models.City, error) {
	req := models.GetCitiesRequest{CityStartsWith: prefix}
	raw, err := m.call(ctx, opSearchCities, func(ctx context.Context) (json.RawMessage, error) {
		return m.adapter.GetCities(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	cities, err := normalizeCities(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSearchCities, err)
	}
	return cities, nil
}

// SearchStreets implements [MikudService].
func (m *mikudService) SearchStreets(ctx context.Context, cityName, prefix string, cityID int) ([]models.Street, error) {
	req := models.GetStreetsRequest{
		CityID:     models.FormatOptionalInt(cityID),
		CityName:   cityName,
		SearchMode: models.StreetSearchMode,
		StartsWith: prefix,
	}
	raw, err := m.call(ctx, opSearchStreets, func(ctx context.Context) (json.RawMessage, error) {
		return m.adapter.GetStreets(ctx, req)
	})
	if err != nil {
		return nil, err
	}

	streets, err := normalizeStreets(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSearchStreets, err)
	}
	return streets, nil
}

// call runs an authenticated request. A 401 answer triggers exactly one
// forced token refresh and one retry; any second failure is returned.
func (m *mikudService) call(ctx context.Context, op string, send func(ctx context.Context) (json.RawMessage, error)) (json.RawMessage, error) {
	ctx, log := m.logger.WithTraceID(ctx, m.traceID.Generate())
	log.Debug().Str("op", op).Msg("calling zip code api")

	if err := m.ensureToken(ctx); err != nil {
		return nil, err
	}

	raw, err := send(ctx)
	if errors.Is(err, adapter.ErrUnauthorized) {
		log.Info().Str("op", op).Msg("access token rejected, refreshing it")

		token, tokenErr := m.tokens.GetToken(ctx, true)
		if tokenErr != nil {
			return nil, tokenErr
		}
		m.adapter.SetToken(token.Header())

		raw, err = send(ctx)
	}
	if err != nil {
		log.Error().Err(err).Str("op", op).Msg("zip code api call failed")
		return nil, mapAdapterError(op, err)
	}

	return raw, nil
}

// ensureToken installs a token in the adapter if it holds none.
func (m *mikudService) ensureToken(ctx context.Context) error {
	if m.adapter.Token() != "" {
		return nil
	}

	token, err := m.tokens.GetToken(ctx, false)
	if err != nil {
		return err
	}
	m.adapter.SetToken(token.Header())

	return nil
}
