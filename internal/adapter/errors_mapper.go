package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/mikud-go/mikud/models"
)

// mapHTTPError returns nil for 200 and a [*StatusError] for any other
// status. Only 200 counts as success: the API never answers 2xx otherwise.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() == http.StatusOK {
		return nil
	}

	return &StatusError{
		StatusCode: resp.StatusCode(),
		Message:    errorMessage(resp.StatusCode(), resp.Body()),
	}
}

// errorMessage picks the most specific description of a failed response:
// the gateway "message" field, then the envelope ErrorMessage, then the
// trimmed body, then the status text.
func errorMessage(status int, body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for key, raw := range fields {
			if !strings.EqualFold(key, "message") {
				continue
			}
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				return msg
			}
		}

		var env models.Envelope
		if err := json.Unmarshal(body, &env); err == nil && env.ErrorMessage != nil && *env.ErrorMessage != "" {
			return *env.ErrorMessage
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	if text := http.StatusText(status); text != "" {
		return text
	}
	return fmt.Sprintf("status %d", status)
}
