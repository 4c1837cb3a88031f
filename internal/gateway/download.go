package gateway

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"
)

// DownloadReport fetches an analysis report as an opaque blob. The Gateway
// names the file via Content-Disposition; absent that, a timestamped
// default is used. reportPath is relative to the base URL, e.g.
// "/reports/inventory/".
func (c *Client) DownloadReport(ctx context.Context, reportPath, business string) (string, []byte, error) {
	if c.creds.AccessToken() == "" {
		return "", nil, ErrNotAuthenticated
	}

	req, err := c.newRequest(ctx, http.MethodGet, c.endpoint(reportPath, listParams(ListScope{Business: business})), nil, true)
	if err != nil {
		return "", nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", nil, &RequestError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", nil, ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", nil, parseErrorBody(resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, &RequestError{Err: err}
	}

	return reportFilename(resp.Header.Get("Content-Disposition")), data, nil
}

// reportFilename extracts the filename from a Content-Disposition header,
// falling back to a timestamped default name.
func reportFilename(disposition string) string {
	if disposition != "" {
		if _, params, err := mime.ParseMediaType(disposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	return fmt.Sprintf("inventory_analysis_report_%d.csv", time.Now().UnixMilli())
}
