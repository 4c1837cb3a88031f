package main

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackinhq/trackin/internal/session"
)

// seedSession persists credentials and a business selection the way a
// login followed by 'business select' would, then points initServices at
// the temp database and test server.
func seedSession(t *testing.T, gatewayURL, selection string) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "session.db")
	sess, err := session.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, sess.SetCredentials("token", "refresh", "tester"))
	require.NoError(t, sess.SetSelection(selection))
	require.NoError(t, sess.Close())

	viper.Set("session.path", dbPath)
	viper.Set("gateway.url", gatewayURL)
	t.Cleanup(viper.Reset)
}

func TestExportDashboard_ProductsUseActiveSelection(t *testing.T) {
	var productQueries []string
	var businessListCalls int

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/products/":
			productQueries = append(productQueries, r.URL.Query().Get("business"))
			fmt.Fprint(w, `[{"id":1,"sku":"WID-1","product_name":"Widget","max_stock":10,"price":2}]`)
		case "/businesses/":
			businessListCalls++
			fmt.Fprint(w, `[{"id":4,"business_name":"Main Street"}]`)
		case "/orders/", "/returns/":
			assert.Equal(t, "4", r.URL.Query().Get("business"))
			fmt.Fprint(w, `[]`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	seedSession(t, server.URL, "4")

	cmd := exportDashboardCmd()
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.Flags().Set("dir", t.TempDir()))

	require.NoError(t, runExportDashboard(cmd, nil))

	require.Equal(t, []string{"4"}, productQueries, "product fetch carries the selected business")
	assert.Equal(t, 1, businessListCalls, "business list is fetched once for the whole export")
}
