// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package apitest provides an in-process fake of the Israel Post zip code
// API for tests.
//
// The fake issues bearer tokens from POST /auth/GetToken, rejects /zip/*
// calls without a token it issued, and answers them with the envelope
// {ReturnCode, ErrorMessage, Result} using results configured per path.
// Every call is counted so tests can assert on round-trips.
package apitest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mikud-go/mikud/internal/config"
	"github.com/mikud-go/mikud/models"
)

// Fixed credentials the fake accepts.
const (
	APIKey          = "test-api-key"
	SubscriptionKey = "test-subscription-key"
	Username        = "tester@example.com"
	Password        = "tester-password"
)

// Paths served by the fake.
const (
	PathGetToken      = "/auth/GetToken"
	PathSearchZip     = "/zip/SearchZip"
	PathSearchAddress = "/zip/SearchAddress"
	PathGetCities     = "/zip/GetCities"
	PathGetStreets    = "/zip/GetStreets"
)

const traceIDHeader = "X-Trace-ID"

type failure struct {
	status  int
	message string
}

// Server is a fake zip code API listening on a local port.
type Server struct {
	*httptest.Server

	mu sync.Mutex

	calls       map[string]int
	bodies      map[string]json.RawMessage
	authHeaders map[string]string
	traceIDs    map[string]string

	results  map[string]any
	failures map[string]failure

	issued       int
	valid        map[string]bool
	rejectAuth   bool
	unauthorized bool
}

// New starts a fake API. It is closed when the test finishes.
func New(t testing.TB) *Server {
	t.Helper()

	s := &Server{
		calls:       make(map[string]int),
		bodies:      make(map[string]json.RawMessage),
		authHeaders: make(map[string]string),
		traceIDs:    make(map[string]string),
		results:     make(map[string]any),
		failures:    make(map[string]failure),
		valid:       make(map[string]bool),
	}
	s.Server = httptest.NewServer(s.routes())
	t.Cleanup(s.Close)

	return s
}

func (s *Server) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(s.record)
	router.Use(s.checkAppHeaders)

	// routes without authorization
	router.Post(PathGetToken, s.getToken)

	router.Group(func(r chi.Router) {
		r.Use(s.checkToken)
		r.Post(PathSearchZip, s.data)
		r.Post(PathSearchAddress, s.data)
		r.Post(PathGetCities, s.data)
		r.Post(PathGetStreets, s.data)
	})

	return router
}

// APIConfig returns a transport configuration pointed at the fake.
func (s *Server) APIConfig() config.API {
	return config.API{
		BaseURL:         s.URL,
		Key:             APIKey,
		SubscriptionKey: SubscriptionKey,
		ApplicationName: config.DefaultApplicationName,
		UserAgent:       config.DefaultUserAgent,
		RequestTimeout:  5 * time.Second,
	}
}

// Credentials returns the credentials the fake issues tokens for.
func (s *Server) Credentials() models.Credentials {
	return models.Credentials{Username: Username, Password: Password}
}

// SetResult sets the Result returned by path. A nil result is sent as null.
func (s *Server) SetResult(path string, result any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.results[path] = result
}

// FailWith makes path answer status with a gateway style error body.
func (s *Server) FailWith(path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[path] = failure{status: status, message: message}
}

// AcceptToken makes the fake accept an externally issued raw token.
func (s *Server) AcceptToken(raw string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.valid[raw] = true
}

// ExpireTokens invalidates every token issued or accepted so far.
func (s *Server) ExpireTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.valid)
}

// RejectAuth makes the authentication endpoint answer IsSuccess false.
func (s *Server) RejectAuth(reject bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rejectAuth = reject
}

// AlwaysUnauthorized makes every data call answer 401, even with a fresh
// token.
func (s *Server) AlwaysUnauthorized(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unauthorized = on
}

// Calls returns how many requests path received.
func (s *Server) Calls(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[path]
}

// IssuedTokens returns how many tokens the authentication endpoint issued.
func (s *Server) IssuedTokens() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issued
}

// LastToken returns the raw value of the most recently issued token.
func (s *Server) LastToken() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tokenValue(s.issued)
}

// LastBody returns the body of the last request to path.
func (s *Server) LastBody(path string) json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bodies[path]
}

// LastAuthorization returns the Authorization header of the last request to
// path.
func (s *Server) LastAuthorization(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authHeaders[path]
}

// LastTraceID returns the X-Trace-ID header of the last request to path.
func (s *Server) LastTraceID(path string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.traceIDs[path]
}

func tokenValue(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("fake-token-%d", n)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.APIError{StatusCode: status, Message: message})
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "cannot read body")
			return
		}
		r.Body = io.NopCloser(strings.NewReader(string(body)))

		s.mu.Lock()
		s.calls[r.URL.Path]++
		s.bodies[r.URL.Path] = body
		s.authHeaders[r.URL.Path] = r.Header.Get("Authorization")
		s.traceIDs[r.URL.Path] = r.Header.Get(traceIDHeader)
		s.mu.Unlock()

		if traceID := r.Header.Get(traceIDHeader); traceID != "" {
			w.Header().Set(traceIDHeader, traceID)
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkAppHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Ocp-Apim-Subscription-Key") != SubscriptionKey {
			writeError(w, http.StatusUnauthorized, "Access denied due to invalid subscription key.")
			return
		}
		if r.Header.Get("Application-API-Key") != APIKey {
			writeError(w, http.StatusForbidden, "invalid application key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) checkToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), models.BearerPrefix)

		s.mu.Lock()
		allowed := ok && s.valid[raw] && !s.unauthorized
		s.mu.Unlock()

		if !allowed {
			writeError(w, http.StatusUnauthorized, "Unauthorized. Access token is missing or invalid.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) getToken(w http.ResponseWriter, r *http.Request) {
	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.rejectAuth || creds.Username != Username || creds.Password != Password {
		writeJSON(w, http.StatusOK, map[string]any{"IsSuccess": false, "AccessToken": nil})
		return
	}

	s.issued++
	token := tokenValue(s.issued)
	s.valid[token] = true

	writeJSON(w, http.StatusOK, models.TokenResponse{IsSuccess: true, AccessToken: token})
}

func (s *Server) data(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	fail, failing := s.failures[r.URL.Path]
	result := s.results[r.URL.Path]
	s.mu.Unlock()

	if failing {
		writeError(w, fail.status, fail.message)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ReturnCode":   0,
		"ErrorMessage": nil,
		"Result":       result,
	})
}
