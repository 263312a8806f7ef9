package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/mikud-go/mikud/internal/config"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/internal/utils"
	"github.com/mikud-go/mikud/models"
)

const (
	pathGetToken      = "/auth/GetToken"
	pathSearchZip     = "/zip/SearchZip"
	pathSearchAddress = "/zip/SearchAddress"
	pathGetCities     = "/zip/GetCities"
	pathGetStreets    = "/zip/GetStreets"
)

// Header names sent with every request.
const (
	HeaderAPIKey          = "Application-API-Key"
	HeaderSubscriptionKey = "Ocp-Apim-Subscription-Key"
	HeaderApplicationName = "Application-Name"
	HeaderUserAgent       = "User-Agent"
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderTraceID         = "X-Trace-ID"
)

type httpPostAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPostAPI constructs the resty implementation of [PostAPI].
// It normalises the base URL from cfg.BaseURL, applies the request timeout
// and registers the fixed application headers.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPPostAPI(cfg config.API, logger *logger.Logger) (PostAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)
	client.SetStaticHeaders(map[string]string{
		HeaderAPIKey:          cfg.Key,
		HeaderSubscriptionKey: cfg.SubscriptionKey,
		HeaderApplicationName: cfg.ApplicationName,
		HeaderUserAgent:       cfg.UserAgent,
		HeaderContentType:     "application/json",
	})

	a := &httpPostAPI{client: client, logger: logger}
	client.OnAfterResponse(a.logResponse)
	client.OnError(a.logError)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PostAPI]. It stores token (whitespace-trimmed) for use
// in the Authorization header of all subsequent authenticated requests.
func (h *httpPostAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [PostAPI].
func (h *httpPostAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// RequestToken implements [PostAPI]. It POSTs creds to POST /auth/GetToken
// without an Authorization header.
func (h *httpPostAPI) RequestToken(ctx context.Context, creds models.Credentials) (models.TokenResponse, error) {
	resp, err := h.request(ctx).
		SetBody(creds).
		Post(pathGetToken)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: get token request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenResponse{}, err
	}

	var tr models.TokenResponse
	if err = json.Unmarshal(resp.Body(), &tr); err != nil {
		return models.TokenResponse{}, fmt.Errorf("%w: token response: %w", ErrDecodeResponse, err)
	}
	tr.Raw = append(json.RawMessage(nil), resp.Body()...)

	return tr, nil
}

// SearchZip implements [PostAPI] (POST /zip/SearchZip).
func (h *httpPostAPI) SearchZip(ctx context.Context, req models.SearchZipRequest) (json.RawMessage, error) {
	return h.postResult(ctx, pathSearchZip, req)
}

// SearchAddress implements [PostAPI] (POST /zip/SearchAddress).
func (h *httpPostAPI) SearchAddress(ctx context.Context, req models.SearchAddressRequest) (json.RawMessage, error) {
	return h.postResult(ctx, pathSearchAddress, req)
}

// GetCities implements [PostAPI] (POST /zip/GetCities).
func (h *httpPostAPI) GetCities(ctx context.Context, req models.GetCitiesRequest) (json.RawMessage, error) {
	return h.postResult(ctx, pathGetCities, req)
}

// GetStreets implements [PostAPI] (POST /zip/GetStreets).
func (h *httpPostAPI) GetStreets(ctx context.Context, req models.GetStreetsRequest) (json.RawMessage, error) {
	return h.postResult(ctx, pathGetStreets, req)
}

// postResult sends an authenticated POST and returns the Result member of
// the response envelope.
func (h *httpPostAPI) postResult(ctx context.Context, path string, body any) (json.RawMessage, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s request: %w", ErrTransport, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return nil, fmt.Errorf("%w: %s envelope: %w", ErrDecodeResponse, path, err)
	}

	return env.Result, nil
}

func (h *httpPostAPI) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if traceID := logger.TraceIDFromContext(ctx); traceID != "" {
		req.SetHeader(HeaderTraceID, traceID)
	}
	return req
}

func (h *httpPostAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader(HeaderAuthorization, token)
	}
	return req
}

func (h *httpPostAPI) logResponse(_ *resty.Client, resp *resty.Response) error {
	log := logger.FromContext(resp.Request.Context(), h.logger)
	log.Debug().
		Str("method", resp.Request.Method).
		Str("url", resp.Request.URL).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("api response")
	return nil
}

func (h *httpPostAPI) logError(req *resty.Request, err error) {
	log := logger.FromContext(req.Context(), h.logger)
	log.Warn().
		Err(err).
		Str("method", req.Method).
		Str("url", req.URL).
		Msg("api request failed")
}
