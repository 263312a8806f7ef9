package config

import "time"

// Default values applied to fields that no configuration source sets.
const (
	DefaultBaseURL         = "https://apimftprd.israelpost.co.il"
	DefaultApplicationName = "PostIL"
	DefaultUserAgent       = "Dalvik/2.1.0 (Linux; U; Android 11; SM-A505F Build/RP1A.200720.012)"
	DefaultTokenFile       = "mikud_config.json"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultLogLevel        = "info"
)

// Defaults returns the configuration used for every field left unset.
// Credentials and API keys have no default and must be supplied.
func Defaults() StructuredConfig {
	return StructuredConfig{
		API: API{
			BaseURL:         DefaultBaseURL,
			ApplicationName: DefaultApplicationName,
			UserAgent:       DefaultUserAgent,
			RequestTimeout:  DefaultRequestTimeout,
		},
		Auth: Auth{
			TokenFile: DefaultTokenFile,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
	}
}
