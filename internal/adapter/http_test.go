// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mikud-go/mikud/internal/config"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/mikud-go/mikud/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpPostAPI pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpPostAPI {
	t.Helper()
	cfg := config.API{
		BaseURL:         serverURL,
		Key:             "api-key",
		SubscriptionKey: "sub-key",
		ApplicationName: "PostIL",
		UserAgent:       "test-agent",
		RequestTimeout:  5 * time.Second,
	}

	a, err := NewHTTPPostAPI(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpPostAPI)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPPostAPI ───────────────────────────────────────────────────────────

func TestNewHTTPPostAPI_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPPostAPI(config.API{BaseURL: "  "}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://apimftprd.israelpost.co.il/", want: "https://apimftprd.israelpost.co.il"},
		{raw: "apimftprd.israelpost.co.il", want: "https://apimftprd.israelpost.co.il"},
		{raw: "http://127.0.0.1:8080", want: "http://127.0.0.1:8080"},
		{raw: "", wantErr: true},
		{raw: "https://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost")
	assert.Empty(t, a.Token())

	a.SetToken("  Bearer abc \n")
	assert.Equal(t, "Bearer abc", a.Token())
}

// ── RequestToken ─────────────────────────────────────────────────────────────

func TestRequestToken_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/GetToken", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "api-key", r.Header.Get("Application-API-Key"))
		assert.Equal(t, "sub-key", r.Header.Get("Ocp-Apim-Subscription-Key"))

		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		assert.Equal(t, models.Credentials{Username: "user", Password: "pass"}, creds)

		writeJSON(t, w, http.StatusOK, map[string]any{"IsSuccess": true, "AccessToken": "tok"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("Bearer stale")

	got, err := a.RequestToken(context.Background(), models.Credentials{Username: "user", Password: "pass"})

	require.NoError(t, err)
	assert.True(t, got.IsSuccess)
	assert.Equal(t, "tok", got.AccessToken)
	assert.JSONEq(t, `{"IsSuccess":true,"AccessToken":"tok"}`, string(got.Raw))
}

func TestRequestToken_NotSuccessfulPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"IsSuccess": false, "AccessToken": nil})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RequestToken(context.Background(), models.Credentials{})

	require.NoError(t, err)
	assert.False(t, got.IsSuccess)
	assert.Empty(t, got.AccessToken)
}

func TestRequestToken_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]any{"statusCode": 403, "message": "Out of call volume quota"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestToken(context.Background(), models.Credentials{})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusForbidden, statusErr.StatusCode)
	assert.Equal(t, "Out of call volume quota", statusErr.Message)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestRequestToken_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.RequestToken(context.Background(), models.Credentials{})

	assert.ErrorIs(t, err, ErrDecodeResponse)
}

// ── data calls ───────────────────────────────────────────────────────────────

func TestSearchZip_SendsBodyAndAuthorization(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/zip/SearchZip", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "PostIL", r.Header.Get("Application-Name"))
		assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{
			"ByMaanimID": "true",
			"City":       "תל אביב",
			"CityID":     "",
			"Entry":      "",
			"House":      "1",
			"POB":        "",
			"Street":     "הרצל",
			"StreetID":   "",
		}, body)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"ReturnCode":   0,
			"ErrorMessage": nil,
			"Result":       map[string]any{"zip": "6100001"},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("Bearer tok")

	q := models.MikudQuery{CityName: "תל אביב", StreetName: "הרצל", HouseNumber: 1}
	got, err := a.SearchZip(context.Background(), q.Request())

	require.NoError(t, err)
	assert.JSONEq(t, `{"zip":"6100001"}`, string(got))
}

func TestDataCalls_Paths(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(a *httpPostAPI) (json.RawMessage, error)
	}{
		{
			name: "search address",
			path: "/zip/SearchAddress",
			call: func(a *httpPostAPI) (json.RawMessage, error) {
				return a.SearchAddress(context.Background(), models.SearchAddressRequest{Zipcode: "9546432"})
			},
		},
		{
			name: "get cities",
			path: "/zip/GetCities",
			call: func(a *httpPostAPI) (json.RawMessage, error) {
				return a.GetCities(context.Background(), models.GetCitiesRequest{CityStartsWith: "ירו"})
			},
		},
		{
			name: "get streets",
			path: "/zip/GetStreets",
			call: func(a *httpPostAPI) (json.RawMessage, error) {
				return a.GetStreets(context.Background(), models.GetStreetsRequest{CityName: "ירושלים", SearchMode: models.StreetSearchMode})
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, tt.path, r.URL.Path)
				writeJSON(t, w, http.StatusOK, map[string]any{"ReturnCode": 0, "Result": []any{}})
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			got, err := tt.call(a)

			require.NoError(t, err)
			assert.JSONEq(t, `[]`, string(got))
		})
	}
}

func TestSearchAddress_NullResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"ReturnCode": 0, "Result": nil})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SearchAddress(context.Background(), models.SearchAddressRequest{Zipcode: "0000000"})

	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestSearchAddress_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusUnauthorized, map[string]any{"statusCode": 401, "message": "Unauthorized. Access token is missing or invalid."})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SearchAddress(context.Background(), models.SearchAddressRequest{Zipcode: "9546432"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, "Unauthorized. Access token is missing or invalid.", statusErr.Message)
}

func TestGetCities_BadEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCities(context.Background(), models.GetCitiesRequest{})

	assert.ErrorIs(t, err, ErrDecodeResponse)
}

func TestGetStreets_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetStreets(context.Background(), models.GetStreetsRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrUnauthorized)
}

func TestPostResult_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{"Result": nil})
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCities(ctx, models.GetCitiesRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAuthedRequest_SendsTraceID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "trace-1", r.Header.Get("X-Trace-ID"))
		writeJSON(t, w, http.StatusOK, map[string]any{"Result": nil})
	}))
	defer srv.Close()

	ctx, _ := logger.Nop().WithTraceID(context.Background(), "trace-1")

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetCities(ctx, models.GetCitiesRequest{})
	require.NoError(t, err)
}
