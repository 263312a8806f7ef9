package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().SetBody(body).Post("/zip/GetCities")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// SetStaticHeaders sets headers sent with every request, skipping empty
// values so that unset configuration does not produce blank headers.
func (c *HTTPClient) SetStaticHeaders(headers map[string]string) *HTTPClient {
	for name, value := range headers {
		if value == "" {
			continue
		}
		c.SetHeader(name, value)
	}
	return c
}
