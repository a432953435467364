// Package recordstore is the typed HTTP client for the record store API.
// It carries no retry, caching or deduplication; every call is one
// request/response exchange.
package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/devmajed/hr-admin/internal/domain/status"
	"github.com/devmajed/hr-admin/internal/models"
)

// Config holds record store client configuration
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the record store API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// APIError is a non-2xx response, carrying the decoded detail message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("record store returned %d: %s", e.StatusCode, e.Detail)
}

// NewClient creates a record store client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// DashboardStats fetches the aggregate counters.
func (c *Client) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	var stats models.DashboardStats
	err := c.get(ctx, "/api/dashboard", nil, &stats)
	return stats, err
}

// Employees lists employees, filtered to an exact department match when
// department is non-empty.
func (c *Client) Employees(ctx context.Context, department string) ([]models.Employee, error) {
	var query url.Values
	if department != "" {
		query = url.Values{"department": {department}}
	}
	var employees []models.Employee
	err := c.get(ctx, "/api/employees", query, &employees)
	return employees, err
}

// CreateEmployee issues an unqualified write with the full field set.
func (c *Client) CreateEmployee(ctx context.Context, payload models.EmployeePayload) (models.Employee, error) {
	var created models.Employee
	err := c.send(ctx, http.MethodPost, "/api/employees", nil, payload, &created)
	return created, err
}

// UpdateEmployee issues a targeted full update against an existing record.
func (c *Client) UpdateEmployee(ctx context.Context, id string, payload models.EmployeePayload) (models.Employee, error) {
	var updated models.Employee
	err := c.send(ctx, http.MethodPut, "/api/employees/"+url.PathEscape(id), nil, payload, &updated)
	return updated, err
}

// Vehicles lists the fleet.
func (c *Client) Vehicles(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := c.get(ctx, "/api/vehicles", nil, &vehicles)
	return vehicles, err
}

// MedicalClaims lists medical claims.
func (c *Client) MedicalClaims(ctx context.Context) ([]models.MedicalClaim, error) {
	var claims []models.MedicalClaim
	err := c.get(ctx, "/api/medical-claims", nil, &claims)
	return claims, err
}

// VehicleClaims lists vehicle claims.
func (c *Client) VehicleClaims(ctx context.Context) ([]models.VehicleClaim, error) {
	var claims []models.VehicleClaim
	err := c.get(ctx, "/api/vehicle-claims", nil, &claims)
	return claims, err
}

// FlightReservations lists flight reservations.
func (c *Client) FlightReservations(ctx context.Context) ([]models.FlightReservation, error) {
	var flights []models.FlightReservation
	err := c.get(ctx, "/api/flight-reservations", nil, &flights)
	return flights, err
}

// UpdateMedicalClaimStatus issues a targeted status transition.
func (c *Client) UpdateMedicalClaimStatus(ctx context.Context, id string, action status.Action) error {
	return c.updateStatus(ctx, "/api/medical-claims/"+url.PathEscape(id)+"/status", action)
}

// UpdateVehicleClaimStatus issues a targeted status transition.
func (c *Client) UpdateVehicleClaimStatus(ctx context.Context, id string, action status.Action) error {
	return c.updateStatus(ctx, "/api/vehicle-claims/"+url.PathEscape(id)+"/status", action)
}

// UpdateFlightStatus issues a targeted status transition.
func (c *Client) UpdateFlightStatus(ctx context.Context, id string, action status.Action) error {
	return c.updateStatus(ctx, "/api/flight-reservations/"+url.PathEscape(id)+"/status", action)
}

func (c *Client) updateStatus(ctx context.Context, path string, action status.Action) error {
	query := url.Values{"status": {action.String()}}
	return c.send(ctx, http.MethodPut, path, query, nil, nil)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.send(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) send(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody struct {
			Detail string `json:"detail"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil {
			apiErr.Detail = errBody.Detail
		}
		c.logger.Warn("Record store error response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail))
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
