package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikud-go/mikud/internal/adapter"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/internal/store"
	"github.com/mikud-go/mikud/internal/utils"
	"github.com/mikud-go/mikud/models"
	"golang.org/x/sync/singleflight"
)

const opGetToken = "get token"

type tokenService struct {
	store   store.TokenStore
	adapter adapter.PostAPI
	creds   models.Credentials

	// refreshes collapses concurrent refreshes into one request.
	refreshes singleflight.Group

	logger *logger.Logger
}

// NewTokenService constructs a [TokenService] that caches tokens in
// tokenStore and obtains new ones from api with creds.
func NewTokenService(tokenStore store.TokenStore, api adapter.PostAPI, creds models.Credentials, logger *logger.Logger) TokenService {
	return &tokenService{store: tokenStore, adapter: api, creds: creds, logger: logger}
}

// GetToken implements [TokenService].
func (s *tokenService) GetToken(ctx context.Context, forceRefresh bool) (models.Token, error) {
	if forceRefresh {
		return s.refresh(ctx)
	}

	log := logger.FromContext(ctx, s.logger)

	token, err := s.store.Load(ctx)
	switch {
	case err == nil:
		log.Debug().Msg("using cached access token")
		return token, nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return models.Token{}, err

	case errors.Is(err, store.ErrTokenNotFound):
		log.Debug().Msg("no cached access token")

	case errors.Is(err, store.ErrTokenCorrupted):
		log.Warn().Err(err).Msg("token cache is corrupted, deleting it")
		if err = s.store.Delete(ctx); err != nil {
			log.Warn().Err(err).Msg("cannot delete corrupted token cache")
		}

	default:
		log.Warn().Err(err).Msg("cannot read token cache")
	}

	return s.refresh(ctx)
}

// refresh obtains a new token. The shared request is detached from the
// cancellation of the caller that started it and stays bounded by the
// request timeout; each caller still stops waiting when its own ctx is done.
func (s *tokenService) refresh(ctx context.Context) (models.Token, error) {
	ch := s.refreshes.DoChan("refresh", func() (any, error) {
		return s.requestToken(context.WithoutCancel(ctx))
	})

	select {
	case <-ctx.Done():
		return models.Token{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return models.Token{}, res.Err
		}
		if res.Shared {
			logger.FromContext(ctx, s.logger).Debug().Msg("joined in-flight token refresh")
		}
		return res.Val.(models.Token), nil
	}
}

func (s *tokenService) requestToken(ctx context.Context) (models.Token, error) {
	log := logger.FromContext(ctx, s.logger)
	log.Info().Msg("requesting new access token")

	resp, err := s.adapter.RequestToken(ctx, s.creds)
	if err != nil {
		mapped := mapAdapterError(opGetToken, err)

		var transportErr *TransportError
		if errors.As(mapped, &transportErr) {
			return models.Token{}, mapped
		}
		return models.Token{}, &AuthenticationError{Body: responseBody(mapped), Err: mapped}
	}

	if !resp.IsSuccess || strings.TrimSpace(resp.AccessToken) == "" {
		log.Error().Str("payload", string(resp.Raw)).Msg("authentication endpoint refused to issue a token")
		return models.Token{}, &AuthenticationError{Payload: resp, Body: string(resp.Raw)}
	}

	token := models.NewBearerToken(resp.AccessToken)
	if err = s.store.Save(ctx, token); err != nil {
		return models.Token{}, fmt.Errorf("cache access token: %w", err)
	}

	event := log.Info()
	if exp, err := utils.TokenExpiry(token.Raw()); err == nil {
		event = event.Time("expires_at", exp)
	}
	event.Msg("new access token obtained")

	return token, nil
}

func responseBody(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
