package homebox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"labelpress/internal/services"
)

const stageName = "inventory"

// HTTPDoer describes the HTTP client used by the Homebox service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to a Homebox-compatible inventory API. All calls share one
// bounded-timeout HTTP client; timeouts surface as fetch errors and are
// never retried here.
type Client struct {
	baseURL string
	client  HTTPDoer
}

// Option customises Client construction.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(client HTTPDoer) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient builds a Client for the given base URL. The URL should include
// any API prefix the deployment uses (for example "/api/v1").
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AssetSummary is one row of an asset-tag search result.
type AssetSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	AssetID string `json:"assetId"`
}

// Item is the full inventory record fetched by internal identifier.
type Item struct {
	ID            string     `json:"id"`
	AssetID       string     `json:"assetId"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	SerialNumber  string     `json:"serialNumber"`
	ModelNumber   string     `json:"modelNumber"`
	PurchaseFrom  string     `json:"purchaseFrom"`
	PurchasePrice flexString `json:"purchasePrice"`
	PurchaseTime  string     `json:"purchaseTime"`
	Location      struct {
		Name string `json:"name"`
	} `json:"location"`
}

// flexString accepts either a JSON string or a bare number; Homebox has
// shipped purchasePrice both ways.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

type loginResponse struct {
	Token string `json:"token"`
}

type searchResponse struct {
	Items []AssetSummary `json:"items"`
	Total int            `json:"total"`
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", "encode credentials", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/login", bytes.NewReader(body))
	if err != nil {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", "call inventory service", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", fmt.Sprintf("inventory service returned %d", resp.StatusCode), nil)
	}

	var decoded loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", "decode response", err)
	}
	token := strings.TrimSpace(decoded.Token)
	if token == "" {
		return "", services.Wrap(services.ErrAuthentication, stageName, "login", "response carried no token", nil)
	}
	return token, nil
}

// SearchAsset resolves an asset tag to its first matching summary.
func (c *Client) SearchAsset(ctx context.Context, token, tag string) (AssetSummary, error) {
	endpoint := fmt.Sprintf("%s/assets/%s", c.baseURL, url.PathEscape(tag))
	var decoded searchResponse
	if err := c.getJSON(ctx, token, endpoint, "search asset", &decoded); err != nil {
		return AssetSummary{}, err
	}
	if len(decoded.Items) == 0 {
		return AssetSummary{}, services.Wrap(services.ErrRecordNotFound, stageName, "search asset", fmt.Sprintf("no inventory record matches tag %q", tag), nil)
	}
	return decoded.Items[0], nil
}

// Item fetches the full record by internal identifier.
func (c *Client) Item(ctx context.Context, token, id string) (Item, error) {
	endpoint := fmt.Sprintf("%s/items/%s", c.baseURL, url.PathEscape(id))
	var decoded Item
	if err := c.getJSON(ctx, token, endpoint, "fetch item", &decoded); err != nil {
		return Item{}, err
	}
	return decoded, nil
}

func (c *Client) getJSON(ctx context.Context, token, endpoint, operation string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return services.Wrap(services.ErrFetch, stageName, operation, "build request", err)
	}
	// The deployed service expects the raw token, without a scheme prefix.
	req.Header.Set("Authorization", token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return services.Wrap(services.ErrFetch, stageName, operation, "call inventory service", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return services.Wrap(services.ErrFetch, stageName, operation, fmt.Sprintf("inventory service returned %d for %s", resp.StatusCode, endpoint), nil)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return services.Wrap(services.ErrFetch, stageName, operation, "decode response", err)
	}
	return nil
}
