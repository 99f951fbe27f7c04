package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/patternkit/internal/api"
	"github.com/ajitpratap0/patternkit/internal/catalog"
	"github.com/ajitpratap0/patternkit/internal/models"
)

// newTestServer creates a test HTTP server over a catalog seeded with defaults.
func newTestServer(t *testing.T, authToken string) (*httptest.Server, *catalog.Catalog) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	cat := catalog.New(logger)
	cat.SeedDefaults()
	srv := api.NewServer(cat, logger, authToken)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts, cat
}

func doRequest(t *testing.T, method, url string, body []byte, token string) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(context.Background(), method, url, bytes.NewReader(body))
	} else {
		req, err = http.NewRequestWithContext(context.Background(), method, url, http.NoBody)
	}
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestAPI_Healthz(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	resp := doRequest(t, http.MethodGet, ts.URL+"/healthz", nil, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestAPI_Kinds(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doRequest(t, http.MethodGet, ts.URL+"/v1/kinds", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string][]string](t, resp)
	assert.Equal(t, []string{"user", "invoice", "configuration"}, got["kinds"])
}

func TestAPI_ListTypes(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doRequest(t, http.MethodGet, ts.URL+"/v1/prototypes/user", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]any](t, resp)
	assert.Equal(t, "user", got["kind"])
	assert.Equal(t, []any{"admin", "reader", "writer"}, got["types"])
}

func TestAPI_GetPrototype(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doRequest(t, http.MethodGet, ts.URL+"/v1/prototypes/invoice/sales", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	inv := decode[models.Invoice](t, resp)
	assert.Equal(t, models.InvoiceTypeSales, inv.InvoiceType)
}

func TestAPI_Clone(t *testing.T) {
	ts, cat := newTestServer(t, "")

	resp := doRequest(t, http.MethodPost, ts.URL+"/v1/prototypes/user/admin/clone", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	clone := decode[models.User](t, resp)

	proto, err := cat.Users.GetPrototype(models.UserTypeAdmin)
	require.NoError(t, err)
	assert.Equal(t, *proto, clone)
}

func TestAPI_ErrorMapping(t *testing.T) {
	ts, _ := newTestServer(t, "")

	cases := []struct {
		name   string
		method string
		path   string
		body   []byte
		status int
	}{
		{"unknown kind list", http.MethodGet, "/v1/prototypes/widget", nil, http.StatusNotFound},
		{"unknown kind get", http.MethodGet, "/v1/prototypes/widget/x", nil, http.StatusNotFound},
		{"unregistered type", http.MethodGet, "/v1/prototypes/invoice/service", nil, http.StatusNotFound},
		{"clone unregistered", http.MethodPost, "/v1/prototypes/configuration/custom/clone", nil, http.StatusNotFound},
		{"invalid type", http.MethodGet, "/v1/prototypes/user/root", nil, http.StatusBadRequest},
		{"register bad json", http.MethodPost, "/v1/prototypes/user", []byte("{"), http.StatusBadRequest},
		{"register bad type", http.MethodPost, "/v1/prototypes/user", []byte(`{"type":"root"}`), http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := doRequest(t, tc.method, ts.URL+tc.path, tc.body, "")
			defer resp.Body.Close()
			assert.Equal(t, tc.status, resp.StatusCode)
			assert.NotEmpty(t, decode[map[string]string](t, resp)["error"])
		})
	}
}

func TestAPI_RegisterThenClone(t *testing.T) {
	ts, _ := newTestServer(t, "")

	body := []byte(`{"theme_color":"teal","font_size":16,"font_family":"Mono","type":"custom"}`)
	resp := doRequest(t, http.MethodPost, ts.URL+"/v1/prototypes/configuration", body, "")
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decode[map[string]any](t, resp)
	assert.Equal(t, "custom", got["type"])
	assert.Equal(t, true, got["registered"])

	resp2 := doRequest(t, http.MethodPost, ts.URL+"/v1/prototypes/configuration/custom/clone", nil, "")
	defer resp2.Body.Close()
	require.Equal(t, http.StatusOK, resp2.StatusCode)
	cfg := decode[models.Configuration](t, resp2)
	assert.Equal(t, "teal", cfg.ThemeColor)
	assert.Equal(t, 16, cfg.FontSize)
}

func TestAPI_Stats(t *testing.T) {
	ts, _ := newTestServer(t, "")

	resp := doRequest(t, http.MethodGet, ts.URL+"/v1/stats", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got struct {
		Prototypes map[string]int   `json:"prototypes"`
		Counters   map[string]int64 `json:"counters"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 3, got.Prototypes["user"])
	assert.Equal(t, 2, got.Prototypes["invoice"])
	assert.Equal(t, 2, got.Prototypes["configuration"])
	assert.Contains(t, got.Counters, "clone")
}

func TestAPI_DebugVars(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	resp := doRequest(t, http.MethodGet, ts.URL+"/debug/vars", nil, "")
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]any](t, resp)
	assert.Contains(t, got, "patternkit_clone_total")
}

func TestAPI_Auth(t *testing.T) {
	ts, _ := newTestServer(t, "secret")

	resp := doRequest(t, http.MethodGet, ts.URL+"/v1/kinds", nil, "")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/v1/kinds", nil, "wrong")
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, http.MethodGet, ts.URL+"/v1/kinds", nil, "secret")
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
