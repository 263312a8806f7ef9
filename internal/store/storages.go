package store

import (
	"github.com/mikud-go/mikud/internal/config"
	"github.com/mikud-go/mikud/internal/logger"
)

// ClientStorages groups the client-side storages into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// TokenStore caches the bearer token between runs.
	TokenStore TokenStore
}

// NewClientStorages initialises the storage layer from the auth
// configuration. The token cache file is created lazily on first save.
func NewClientStorages(cfg config.Auth, logger *logger.Logger) *ClientStorages {
	logger.Debug().Str("token_file", cfg.TokenFile).Msg("creating new storages...")

	return &ClientStorages{
		TokenStore: NewFileTokenStore(cfg.TokenFile, logger),
	}
}
