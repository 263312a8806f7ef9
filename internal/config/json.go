package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// configuration file.
type StructuredJSONConfig struct {
	API struct {
		BaseURL         string   `json:"base_url"`
		Key             string   `json:"key"`
		SubscriptionKey string   `json:"subscription_key"`
		ApplicationName string   `json:"application_name"`
		UserAgent       string   `json:"user_agent"`
		RequestTimeout  Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Auth struct {
		Username  string `json:"username"`
		Password  string `json:"password"`
		TokenFile string `json:"token_file"`
	} `json:"auth,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			BaseURL:         jsonCfg.API.BaseURL,
			Key:             jsonCfg.API.Key,
			SubscriptionKey: jsonCfg.API.SubscriptionKey,
			ApplicationName: jsonCfg.API.ApplicationName,
			UserAgent:       jsonCfg.API.UserAgent,
			RequestTimeout:  time.Duration(jsonCfg.API.RequestTimeout),
		},
		Auth: Auth{
			Username:  jsonCfg.Auth.Username,
			Password:  jsonCfg.Auth.Password,
			TokenFile: jsonCfg.Auth.TokenFile,
		},
		Log: Log{
			Level: jsonCfg.Log.Level,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
