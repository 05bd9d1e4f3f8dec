package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/arnavshah/shift-board-api/pkg/models"
)

// Status is the result of a health check as shown on the dashboard
type Status string

const (
	Online  Status = "online"
	Offline Status = "offline"
)

// Client talks to a shift board server
type Client struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

// New creates a client for baseURL using http.DefaultClient
func New(baseURL string) *Client {
	return &Client{BaseURL: strings.TrimRight(baseURL, "/"), HTTP: http.DefaultClient}
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// Health calls GET /health. Any transport error, non-2xx status or
// undecodable body yields Offline; no attempt is made to tell them apart.
func (c *Client) Health(ctx context.Context) (Status, models.HealthResponse) {
	var resp models.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &resp); err != nil {
		return Offline, models.HealthResponse{}
	}
	return Online, resp
}

// Slots lists the board's slots
func (c *Client) Slots(ctx context.Context) ([]models.Slot, error) {
	var out struct {
		Slots []models.Slot `json:"slots"`
	}
	err := c.do(ctx, http.MethodGet, "/api/slots", nil, &out)
	return out.Slots, err
}

// Requests lists shift requests; an empty status lists all of them
func (c *Client) Requests(ctx context.Context, status models.RequestStatus) ([]models.Request, error) {
	path := "/api/requests"
	if status != "" {
		path += "?status=" + string(status)
	}
	var out struct {
		Requests []models.Request `json:"requests"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Requests, err
}

// SetStatus approves or rejects a request
func (c *Client) SetStatus(ctx context.Context, id string, status models.RequestStatus) (models.Request, error) {
	var out models.Request
	err := c.do(ctx, http.MethodPut, "/api/requests/"+id+"/status", models.StatusInput{Status: status}, &out)
	return out, err
}

// Coverage fetches coverage rows and the publish verdict
func (c *Client) Coverage(ctx context.Context) (models.CoverageResponse, error) {
	var out models.CoverageResponse
	err := c.do(ctx, http.MethodGet, "/api/coverage", nil, &out)
	return out, err
}

// Publish asks the server to publish the schedule
func (c *Client) Publish(ctx context.Context) (models.Schedule, error) {
	var out models.Schedule
	err := c.do(ctx, http.MethodPost, "/api/schedule/publish", nil, &out)
	return out, err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rdr = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		return &APIError{StatusCode: resp.StatusCode, Message: e.Error}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
