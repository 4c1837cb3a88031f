package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownloadReport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reports/inventory/", r.URL.Path)
		assert.Equal(t, "4", r.URL.Query().Get("business"))
		w.Header().Set("Content-Disposition", `attachment; filename="inventory_report_2024.csv"`)
		_, _ = w.Write([]byte("sku,stock\nA,3\n"))
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds("tok"))
	name, data, err := client.DownloadReport(context.Background(), "/reports/inventory/", "4")
	require.NoError(t, err)
	assert.Equal(t, "inventory_report_2024.csv", name)
	assert.Equal(t, "sku,stock\nA,3\n", string(data))
}

func TestDownloadReport_NotAuthenticated(t *testing.T) {
	client := NewClient("http://127.0.0.1:0", staticCreds(""))
	_, _, err := client.DownloadReport(context.Background(), "/reports/inventory/", "all")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestDownloadReport_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(server.URL, staticCreds("stale"))
	_, _, err := client.DownloadReport(context.Background(), "/reports/inventory/", "all")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestReportFilename(t *testing.T) {
	assert.Equal(t, "report.csv", reportFilename(`attachment; filename="report.csv"`))
	assert.Equal(t, "report.csv", reportFilename(`attachment; filename=report.csv`))

	// No header falls back to a timestamped default.
	assert.Regexp(t, `^inventory_analysis_report_\d+\.csv$`, reportFilename(""))
	assert.Regexp(t, `^inventory_analysis_report_\d+\.csv$`, reportFilename("attachment"))
}
