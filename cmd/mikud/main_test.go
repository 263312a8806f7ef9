package main

import (
	"bytes"
	"context"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/mikud-go/mikud/internal/apitest"
	"github.com/mikud-go/mikud/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr, logger.Nop())

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func serverFlags(t *testing.T, srv *apitest.Server) []string {
	t.Helper()

	return []string{
		"-base-url", srv.URL,
		"-api-key", apitest.APIKey,
		"-subscription-key", apitest.SubscriptionKey,
		"-username", apitest.Username,
		"-password", apitest.Password,
		"-token-file", filepath.Join(t.TempDir(), "token.json"),
	}
}

// ── commands ──────────────────────────────────────────────────────────────────

func TestRun_Address(t *testing.T) {
	srv := apitest.New(t)
	srv.SetResult(apitest.PathSearchAddress, map[string]any{
		"zip":        "9546432",
		"city":       "ירושלים",
		"streetname": "יפו",
	})

	res := runCLI(t, append(serverFlags(t, srv), "address", " 9546432 ")...)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "9546432")
	assert.Contains(t, res.stdout, "ירושלים")
	assert.JSONEq(t, `{"Zipcode":"9546432"}`, string(srv.LastBody(apitest.PathSearchAddress)))
}

func TestRun_AddressJSON(t *testing.T) {
	srv := apitest.New(t)
	srv.SetResult(apitest.PathSearchAddress, map[string]any{"zip": 9546432, "cityid": "3000"})

	res := runCLI(t, append(serverFlags(t, srv), "address", "-json", "9546432")...)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.JSONEq(t, `{"zip":9546432,"city_id":3000}`, res.stdout)
}

func TestRun_CitiesJSON(t *testing.T) {
	srv := apitest.New(t)
	srv.SetResult(apitest.PathGetCities, []map[string]any{
		{"id": "5000", "n": "תל אביב - יפו"},
		{"id": 2640, "n": "תל מונד", "zip": "4060000"},
	})

	res := runCLI(t, append(serverFlags(t, srv), "cities", "-json", "תל")...)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.JSONEq(t, `[
		{"id":5000,"name":"תל אביב - יפו"},
		{"id":2640,"name":"תל מונד","zip":4060000}
	]`, res.stdout)
	assert.JSONEq(t, `{"CityStartsWith":"תל"}`, string(srv.LastBody(apitest.PathGetCities)))
}

func TestRun_Streets(t *testing.T) {
	srv := apitest.New(t)
	srv.SetResult(apitest.PathGetStreets, []map[string]any{{"id": 102, "n": "הרצל", "cityid": 5000}})

	res := runCLI(t, append(serverFlags(t, srv), "streets", "-city-id", "5000", "הר")...)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "הרצל")
	assert.JSONEq(t, `{
		"CityID": "5000",
		"CityName": "",
		"SearchMode": "ID-StartsWith",
		"StartsWith": "הר"
	}`, string(srv.LastBody(apitest.PathGetStreets)))
}

func TestRun_Zip(t *testing.T) {
	srv := apitest.New(t)
	srv.SetResult(apitest.PathSearchZip, map[string]any{"zip": "6100001"})

	res := runCLI(t, append(serverFlags(t, srv),
		"zip", "-city", "תל אביב - יפו", "-street", "הרצל", "-house", "1", "-json")...)

	require.Equal(t, exitOK, res.code, res.stderr)
	assert.JSONEq(t, `{"zip":6100001}`, res.stdout)
}

// ── usage and errors ──────────────────────────────────────────────────────────

func TestRun_UsageErrors(t *testing.T) {
	srv := apitest.New(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"nope"}},
		{name: "unknown command flag", args: []string{"cities", "-nope"}},
		{name: "address without zip", args: []string{"address"}},
		{name: "address with bad zip", args: []string{"address", "12ab567"}},
		{name: "zip without house", args: []string{"zip", "-city", "חיפה", "-street", "הרצל"}},
		{name: "zip with positional args", args: []string{"zip", "-pob", "12", "extra"}},
		{name: "streets without city", args: []string{"streets", "הר"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runCLI(t, append(serverFlags(t, srv), tt.args...)...)

			assert.Equal(t, exitUsage, res.code)
			assert.NotEmpty(t, res.stderr)
			assert.Empty(t, res.stdout)
		})
	}

	assert.Zero(t, srv.Calls(apitest.PathGetToken))
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("MIKUD_API_KEY", "")
	t.Setenv("MIKUD_API_SUBSCRIPTION_KEY", "")

	res := runCLI(t, "-username", "u", "-password", "p", "cities", "תל")

	assert.Equal(t, exitUsage, res.code)
	assert.Contains(t, res.stderr, "usage: mikud")
}

func TestRun_RequestFailure(t *testing.T) {
	srv := apitest.New(t)
	srv.FailWith(apitest.PathGetCities, http.StatusBadGateway, "upstream down")

	res := runCLI(t, append(serverFlags(t, srv), "cities", "תל")...)

	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "upstream down")
}

func TestRun_AuthenticationFailure(t *testing.T) {
	srv := apitest.New(t)
	srv.RejectAuth(true)

	res := runCLI(t, append(serverFlags(t, srv), "address", "9546432")...)

	assert.Equal(t, exitError, res.code)
	assert.Contains(t, res.stderr, "cannot generate new access token")
}

func TestRun_Version(t *testing.T) {
	res := runCLI(t, "version")

	assert.Equal(t, exitOK, res.code)
	assert.Contains(t, res.stdout, "Build version: N/A")
	assert.Contains(t, res.stdout, "Build commit: N/A")
}

func TestRun_Help(t *testing.T) {
	for _, args := range [][]string{{"help"}, {"-h"}} {
		res := runCLI(t, args...)

		assert.Equal(t, exitOK, res.code)
		assert.Contains(t, res.stdout, "usage: mikud")
		assert.Contains(t, res.stdout, "-token-file")
	}
}
