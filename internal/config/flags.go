package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the configuration flags found at the start of args and
// returns the remaining positional arguments (the command and its own flags).
//
// Flags:
//
//	-base-url          API base URL
//	-api-key           Application-API-Key header value
//	-subscription-key  Ocp-Apim-Subscription-Key header value
//	-app-name          Application-Name header value
//	-user-agent        User-Agent header value
//	-request-timeout   request timeout (e.g. "30s")
//	-username          token username
//	-password          token password
//	-token-file        token cache file path
//	-log-level         log level
//	-c/-config         json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs, cfg := newFlagSet()
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return cfg, fs.Args(), nil
}

// PrintFlags writes the usage of the configuration flags to w.
func PrintFlags(w io.Writer) {
	fs, _ := newFlagSet()
	fs.SetOutput(w)
	fs.PrintDefaults()
}

func newFlagSet() (*flag.FlagSet, *StructuredConfig) {
	fs := flag.NewFlagSet("mikud", flag.ContinueOnError)
	cfg := &StructuredConfig{}

	fs.StringVar(&cfg.API.BaseURL, "base-url", "", "API base URL")
	fs.StringVar(&cfg.API.Key, "api-key", "", "Application-API-Key header")
	fs.StringVar(&cfg.API.SubscriptionKey, "subscription-key", "", "Ocp-Apim-Subscription-Key header")
	fs.StringVar(&cfg.API.ApplicationName, "app-name", "", "Application-Name header")
	fs.StringVar(&cfg.API.UserAgent, "user-agent", "", "User-Agent header")
	fs.DurationVar(&cfg.API.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.Auth.Username, "username", "", "Token username")
	fs.StringVar(&cfg.Auth.Password, "password", "", "Token password")
	fs.StringVar(&cfg.Auth.TokenFile, "token-file", "", "Token cache file path")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	return fs, cfg
}
