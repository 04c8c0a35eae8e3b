package http_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-api/internal/application/dto"
	apphttp "github.com/jhoicas/stock-api/internal/interfaces/http"
)

func TestDashboardMetrics(t *testing.T) {
	app, _ := buildTestApp(t)
	addItem(t, app, `{"item_code":"N1","inward_qty":100,"inward_unit_price":"1.255"}`)
	addItem(t, app, `{"item_code":"L1","inward_qty":100,"outward_qty":30}`)
	addItem(t, app, `{"item_code":"C1","inward_qty":100,"outward_qty":90}`)

	status, data := doJSON(t, app, http.MethodGet, "/api/dashboard-metrics", "")
	require.Equal(t, http.StatusOK, status)
	out := decode[dto.DashboardMetricsResponse](t, data)
	assert.Equal(t, 3, out.TotalItems)
	assert.Equal(t, 1, out.NormalStock)
	assert.Equal(t, 1, out.LowStock)
	assert.Equal(t, 1, out.CriticalStock)
	assert.Equal(t, 125.5, out.TotalValue)
}

func TestPaginasHTML(t *testing.T) {
	app, _ := buildTestApp(t)

	for _, path := range []string{"/", "/inventory"} {
		status, data := doJSON(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, string(data), "stock-api-test", path)
	}
}

func TestHealthYRequestID(t *testing.T) {
	app, _ := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp2, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.NotEmpty(t, resp2.Header.Get(apphttp.HeaderRequestID), "se genera uno si falta")
}

func TestRutaInexistente(t *testing.T) {
	app, _ := buildTestApp(t)

	status, data := doJSON(t, app, http.MethodGet, "/api/nada", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, data).Code)
}

func TestExportaciones(t *testing.T) {
	app, _ := buildTestApp(t)
	addItem(t, app, `{"item_code":"C1","inward_qty":100,"outward_qty":90}`)

	status, data := doJSON(t, app, http.MethodGet, "/api/export/low-stock.pdf", "")
	require.Equal(t, http.StatusOK, status)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	req := httptest.NewRequest(http.MethodGet, "/api/export/inventory.xlsx?status=critical", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Disposition"), "attachment;"))

	status, _ = doJSON(t, app, http.MethodGet, "/api/export/inventory.xlsx?status=urgent", "")
	assert.Equal(t, http.StatusBadRequest, status)
}
