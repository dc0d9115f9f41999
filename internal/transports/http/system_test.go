package http_transport_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/init-pkg/vapt-ingest/internal/config"
	"github.com/init-pkg/vapt-ingest/internal/testutil"
	http_transport "github.com/init-pkg/vapt-ingest/internal/transports/http"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSystemApp(t *testing.T) (*fiber.App, func()) {
	db := testutil.NewDB(t)
	log := testutil.Logger()

	fapp := http_transport.NewFiberApp(&config.Config{Http: config.Http{BodyLimit: 1 << 20, CorsOrigins: []string{"*"}}}, log)
	http_transport.NewSystemHandler(db, log).Register(fapp)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	return fapp, func() { sqlDB.Close() }
}

func TestHealth(t *testing.T) {
	fapp, closeDB := newSystemApp(t)

	res, err := fapp.Test(httptest.NewRequest(http.MethodGet, "/health", nil), fiber.TestConfig{Timeout: 0})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	closeDB()

	res, err = fapp.Test(httptest.NewRequest(http.MethodGet, "/health", nil), fiber.TestConfig{Timeout: 0})
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode)
}

func TestSwaggerDoc(t *testing.T) {
	fapp, _ := newSystemApp(t)

	res, err := fapp.Test(httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil), fiber.TestConfig{Timeout: 0})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	var doc struct {
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(body, &doc))
	assert.Contains(t, doc.Paths, "/api/upload")
	assert.Contains(t, doc.Paths, "/api/vulnerabilities/{id}")
	assert.Contains(t, doc.Paths, "/health")
}

func TestSwaggerUI(t *testing.T) {
	fapp, _ := newSystemApp(t)

	res, err := fapp.Test(httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil), fiber.TestConfig{Timeout: 0})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get(fiber.HeaderContentType), "text/html")

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<title>VAPT ingest API</title>")

	res, err = fapp.Test(httptest.NewRequest(http.MethodGet, "/swagger/", nil), fiber.TestConfig{Timeout: 0})
	require.NoError(t, err)
	assert.Equal(t, http.StatusMovedPermanently, res.StatusCode)
	assert.Equal(t, "/swagger/index.html", res.Header.Get(fiber.HeaderLocation))
}
