package mikud

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/mikud-go/mikud/internal/config"
	"github.com/rs/zerolog"
)

// Default values used for unset [Options] fields.
const (
	DefaultBaseURL         = config.DefaultBaseURL
	DefaultApplicationName = config.DefaultApplicationName
	DefaultUserAgent       = config.DefaultUserAgent
	DefaultTokenFile       = config.DefaultTokenFile
	DefaultRequestTimeout  = config.DefaultRequestTimeout
)

// Options configures a [Client]. APIKey, SubscriptionKey, Username and
// Password are required; every other field has a default.
type Options struct {
	// BaseURL is the scheme and host of the API.
	BaseURL string
	// APIKey is sent as the Application-API-Key header.
	APIKey string
	// SubscriptionKey is sent as the Ocp-Apim-Subscription-Key header.
	SubscriptionKey string
	// ApplicationName is sent as the Application-Name header.
	ApplicationName string
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// RequestTimeout bounds a single HTTP round-trip.
	RequestTimeout time.Duration

	// Username and Password are exchanged for bearer tokens.
	Username string
	Password string

	// TokenFile is where the bearer token is cached. It is written with
	// mode 0600.
	TokenFile string

	// Logger receives debug and diagnostic entries. Nil disables logging.
	Logger *zerolog.Logger
}

func (o Options) config() (*config.StructuredConfig, error) {
	cfg := &config.StructuredConfig{
		API: config.API{
			BaseURL:         o.BaseURL,
			Key:             o.APIKey,
			SubscriptionKey: o.SubscriptionKey,
			ApplicationName: o.ApplicationName,
			UserAgent:       o.UserAgent,
			RequestTimeout:  o.RequestTimeout,
		},
		Auth: config.Auth{
			Username:  o.Username,
			Password:  o.Password,
			TokenFile: o.TokenFile,
		},
	}

	defaults := config.Defaults()
	if err := mergo.Merge(cfg, &defaults); err != nil {
		return nil, fmt.Errorf("error applying default options: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	return cfg, nil
}
