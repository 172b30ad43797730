// Package powerdns implements a client for the PowerDNS Authoritative HTTP API v1.
package powerdns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/kreigan/powerdns-tui/internal/logger"
)

// Client is a PowerDNS API client for API version 1.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a new PowerDNS client.
// baseURL should be the API root including the version path, e.g.:
// http://localhost:8081/api/v1
func NewClient(baseURL, apiKey string, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{},
		log:        log,
	}
}

// doRequest performs an HTTP request to the PowerDNS API.
func (c *Client) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	url := c.baseURL + path
	c.log.HTTPRequest(method, url)

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("HTTP request failed: %s %s: %v", method, url, err)
		return nil, fmt.Errorf("request failed: %w", err)
	}

	c.log.HTTPResponse(method, url, resp.StatusCode)
	return resp, nil
}

// handleError processes API error responses and logs them.
func (c *Client) handleError(method, path string, resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var apiErr APIError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		c.log.Error("API error: %s %s -> %d: %s", method, path, resp.StatusCode, apiErr.Error)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, apiErr.Error)
	}

	errMsg := string(body)
	if len(errMsg) > 200 {
		errMsg = errMsg[:200] + "..."
	}
	c.log.Error("API error: %s %s -> %d: %s", method, path, resp.StatusCode, errMsg)
	return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, errMsg)
}

// decodeResponse reads and unmarshals a response body into v.
func decodeResponse(resp *http.Response, v interface{}) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// ListServers returns all server instances controlled by this API endpoint.
// GET /servers
// See: https://doc.powerdns.com/authoritative/http-api/server.html
func (c *Client) ListServers(ctx context.Context) ([]Server, error) {
	path := "/servers"
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError("GET", path, resp)
	}

	var servers []Server
	if err := decodeResponse(resp, &servers); err != nil {
		return nil, err
	}
	return servers, nil
}

// ListZones returns all zones on the given server, without rrset data.
// GET /servers/{server_id}/zones
// See: https://doc.powerdns.com/authoritative/http-api/zone.html
func (c *Client) ListZones(ctx context.Context, serverID string) ([]Zone, error) {
	path := fmt.Sprintf("/servers/%s/zones", serverID)
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError("GET", path, resp)
	}

	var zones []Zone
	if err := decodeResponse(resp, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

// GetZone retrieves zone details including full rrset data.
// GET /servers/{server_id}/zones/{zone_id}
func (c *Client) GetZone(ctx context.Context, serverID, zoneID string) (*Zone, error) {
	path := fmt.Sprintf("/servers/%s/zones/%s", serverID, CanonicalName(zoneID))
	resp, err := c.doRequest(ctx, "GET", path, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleError("GET", path, resp)
	}

	var zone Zone
	if err := decodeResponse(resp, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

// CreateZone creates a new DNS zone on the given server.
// POST /servers/{server_id}/zones
func (c *Client) CreateZone(ctx context.Context, serverID string, zone *Zone) (*Zone, error) {
	path := fmt.Sprintf("/servers/%s/zones", serverID)
	resp, err := c.doRequest(ctx, "POST", path, zone)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.handleError("POST", path, resp)
	}

	var created Zone
	if err := decodeResponse(resp, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteZone removes a zone and all its records from the given server.
// DELETE /servers/{server_id}/zones/{zone_id}
func (c *Client) DeleteZone(ctx context.Context, serverID, zoneID string) error {
	path := fmt.Sprintf("/servers/%s/zones/%s", serverID, CanonicalName(zoneID))
	resp, err := c.doRequest(ctx, "DELETE", path, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return c.handleError("DELETE", path, resp)
	}
	return nil
}

// PatchZone modifies RRsets in a zone.
// PATCH /servers/{server_id}/zones/{zone_id}
// Creates/modifies/deletes the RRsets present in the payload.
func (c *Client) PatchZone(ctx context.Context, serverID, zoneID string, patch *ZonePatch) error {
	path := fmt.Sprintf("/servers/%s/zones/%s", serverID, CanonicalName(zoneID))
	resp, err := c.doRequest(ctx, "PATCH", path, patch)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		return c.handleError("PATCH", path, resp)
	}
	return nil
}

// CanonicalName ensures a zone or record name ends with a dot
// (PowerDNS requires canonical names).
func CanonicalName(name string) string {
	if !strings.HasSuffix(name, ".") {
		return name + "."
	}
	return name
}
