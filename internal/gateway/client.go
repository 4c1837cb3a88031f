// Package gateway provides the HTTP client for the Track In backend API.
// Every scoped request carries the stored bearer token; a missing token
// short-circuits the operation before anything goes on the wire.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/trackinhq/trackin/internal/model"
)

// CredentialSource supplies the bearer token attached to scoped requests.
// An empty token means not logged in.
type CredentialSource interface {
	AccessToken() string
}

// ListScope narrows a list request. Business is "all" or a business id;
// the Gateway treats "all" as unscoped but the parameter is still sent.
// Date applies only when set: a non-empty search term drops the date scope
// so the search spans all dates.
type ListScope struct {
	Business string
	Date     string
}

// Client is the HTTP Gateway client.
type Client struct {
	creds      CredentialSource
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Gateway client for the given base URL, e.g.
// "http://127.0.0.1:8000/api".
func NewClient(baseURL string, creds CredentialSource) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Credentials is the login response payload.
type Credentials struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	Username     string `json:"username"`
}

// Login exchanges a username and password for tokens. It is the only
// operation besides Logout that does not require a stored credential.
func (c *Client) Login(ctx context.Context, username, password string) (Credentials, error) {
	var creds Credentials
	payload := map[string]string{"username": username, "password": password}
	err := c.do(ctx, http.MethodPost, c.endpoint("/login/", nil), payload, &creds, false)
	return creds, err
}

// Logout invalidates a refresh token on the Gateway. Local cleanup is the
// caller's job; a Gateway failure here is logged but not fatal.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	payload := map[string]string{"refresh_token": refreshToken}
	return c.do(ctx, http.MethodPost, c.endpoint("/logout/", nil), payload, nil, false)
}

// ListBusinesses fetches the full business list.
func (c *Client) ListBusinesses(ctx context.Context) ([]model.Business, error) {
	var businesses []model.Business
	err := c.do(ctx, http.MethodGet, c.endpoint("/businesses/", nil), nil, &businesses, true)
	return businesses, err
}

// CreateBusiness registers a new business.
func (c *Client) CreateBusiness(ctx context.Context, nb model.NewBusiness) (model.Business, error) {
	var created model.Business
	err := c.do(ctx, http.MethodPost, c.endpoint("/businesses/add/", nil), nb, &created, true)
	return created, err
}

// ListProducts fetches products for the given business selection.
func (c *Client) ListProducts(ctx context.Context, business string) ([]model.Product, error) {
	var products []model.Product
	err := c.do(ctx, http.MethodGet, c.endpoint("/products/", listParams(ListScope{Business: business})), nil, &products, true)
	return products, err
}

// SaveProduct creates or updates a product. New products POST to the
// collection scoped to a specific business; edits PUT to the product's id.
func (c *Client) SaveProduct(ctx context.Context, p model.Product, business string) (model.Product, error) {
	var saved model.Product
	if p.IsNew() {
		err := c.do(ctx, http.MethodPost, c.endpoint("/products/", scopeParams(business)), p, &saved, true)
		return saved, err
	}
	err := c.do(ctx, http.MethodPut, c.endpoint(fmt.Sprintf("/products/%d/", p.ID), nil), p, &saved, true)
	return saved, err
}

// DeleteProduct removes a product by SKU.
func (c *Client) DeleteProduct(ctx context.Context, sku string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("/products/delete/"+url.PathEscape(sku)+"/", nil), nil, nil, true)
}

// ListOrders fetches orders for the scope.
func (c *Client) ListOrders(ctx context.Context, scope ListScope) ([]model.Order, error) {
	var orders []model.Order
	err := c.do(ctx, http.MethodGet, c.endpoint("/orders/", listParams(scope)), nil, &orders, true)
	return orders, err
}

// CreateOrder commits a new order. The Gateway decrements the product's
// stock as a side effect. Field-level rejections come back as a
// *ValidationError.
func (c *Client) CreateOrder(ctx context.Context, draft model.OrderDraft, business string) error {
	return c.do(ctx, http.MethodPost, c.endpoint("/orders/add/", scopeParams(business)), draft, nil, true)
}

// DeleteOrder hard-removes an order and restores its stock. The Gateway
// signals success with an empty 204; anything else is a failure whose
// message is surfaced.
func (c *Client) DeleteOrder(ctx context.Context, orderID int64) error {
	if c.creds.AccessToken() == "" {
		return ErrNotAuthenticated
	}

	req, err := c.newRequest(ctx, http.MethodDelete, c.endpoint(fmt.Sprintf("/orders/%d/delete/", orderID), nil), nil, true)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}

	body, _ := io.ReadAll(resp.Body)
	return parseErrorBody(resp.StatusCode, body)
}

// ListReturns fetches returns for the scope.
func (c *Client) ListReturns(ctx context.Context, scope ListScope) ([]model.Return, error) {
	var returns []model.Return
	err := c.do(ctx, http.MethodGet, c.endpoint("/returns/", listParams(scope)), nil, &returns, true)
	return returns, err
}

// CreateReturn records a return against an existing order.
func (c *Client) CreateReturn(ctx context.Context, draft model.ReturnDraft, business string) error {
	return c.do(ctx, http.MethodPost, c.endpoint("/returns/add/", scopeParams(business)), draft, nil, true)
}

// RemoveReturn reverses a return. Older Gateway deployments expose the
// removal under three different shapes, so candidates are tried in order
// and the chain advances only on a 405; the first non-405 outcome wins.
func (c *Client) RemoveReturn(ctx context.Context, returnID int64, business string) error {
	id := fmt.Sprintf("%d", returnID)
	deleteParams := scopeParams(business)
	if deleteParams == nil {
		deleteParams = url.Values{}
	}
	deleteParams.Set("id", id)

	candidates := []struct {
		method string
		url    string
	}{
		{http.MethodPost, c.endpoint("/returns/remove/"+id+"/", scopeParams(business))},
		{http.MethodPost, c.endpoint("/returns/"+id+"/delete/", scopeParams(business))},
		{http.MethodDelete, c.endpoint("/returns/", deleteParams)},
	}

	var err error
	for _, candidate := range candidates {
		err = c.do(ctx, candidate.method, candidate.url, nil, nil, true)
		if !IsMethodNotAllowed(err) {
			return err
		}
		slog.Debug("return removal endpoint not supported, trying next shape",
			"method", candidate.method,
			"url", candidate.url)
	}
	return err
}

// DashboardSummary fetches the precomputed dashboard aggregate.
func (c *Client) DashboardSummary(ctx context.Context, business string) (model.DashboardSummary, error) {
	var summary model.DashboardSummary
	err := c.do(ctx, http.MethodGet, c.endpoint("/dashboard/", listParams(ListScope{Business: business})), nil, &summary, true)
	return summary, err
}

// endpoint joins a path onto the base URL with optional query parameters.
func (c *Client) endpoint(path string, params url.Values) string {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// listParams builds query parameters for list requests. The business
// parameter is always forwarded, "all" included; the date parameter only
// when the scope carries one.
func listParams(scope ListScope) url.Values {
	params := url.Values{}
	if scope.Date != "" {
		params.Set("date", scope.Date)
	}
	if scope.Business != "" {
		params.Set("business", scope.Business)
	}
	return params
}

// scopeParams builds query parameters for mutations, which are only scoped
// when a specific business is selected.
func scopeParams(business string) url.Values {
	if business == "" || business == model.SelectionAll {
		return nil
	}
	params := url.Values{}
	params.Set("business", business)
	return params
}

func (c *Client) newRequest(ctx context.Context, method, rawURL string, payload any, authed bool) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.creds.AccessToken())
	}
	return req, nil
}

// do issues a request and decodes the JSON response into out (when out is
// non-nil). Authenticated calls abort with ErrNotAuthenticated before the
// request when no token is stored.
func (c *Client) do(ctx context.Context, method, rawURL string, payload, out any, authed bool) error {
	if authed && c.creds.AccessToken() == "" {
		return ErrNotAuthenticated
	}

	req, err := c.newRequest(ctx, method, rawURL, payload, authed)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("gateway request failed", "method", method, "url", rawURL, "error", err)
		return &RequestError{Err: err}
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("failed to close response body", "error", closeErr)
		}
	}()

	if authed && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		return ErrUnauthorized
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &RequestError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorBody(resp.StatusCode, body)
	}

	if out == nil || len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		slog.Error("gateway returned non-JSON response", "url", rawURL, "body", string(body))
		return &RequestError{Err: err}
	}
	return nil
}

// parseErrorBody converts a non-success response into the matching error
// kind: field errors beat a bare message, which beats the raw body.
func parseErrorBody(status int, body []byte) error {
	var parsed struct {
		Errors  map[string]json.RawMessage `json:"errors"`
		Message string                     `json:"message"`
		Error   string                     `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Errors) > 0 {
			fields := make(map[string][]string, len(parsed.Errors))
			for field, raw := range parsed.Errors {
				fields[field] = decodeFieldMessages(raw)
			}
			return &ValidationError{Fields: fields}
		}
		if parsed.Message != "" {
			return &StatusError{StatusCode: status, Message: parsed.Message}
		}
		if parsed.Error != "" {
			return &StatusError{StatusCode: status, Message: parsed.Error}
		}
	}
	return &StatusError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

// decodeFieldMessages accepts both a single string and a list of strings,
// which is how the Gateway serializes field errors depending on the field.
func decodeFieldMessages(raw json.RawMessage) []string {
	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return many
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return []string{one}
	}
	return []string{string(raw)}
}
