package service

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

	"github.com/EpicMandM/laptop-desk/internal/logger"
	"github.com/EpicMandM/laptop-desk/internal/models"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const (
	defaultLaptopsPath = "/laptops"
	requestIDHeader    = "X-Request-ID"
)

// Client talks to the laptop management backend. Every method makes
// exactly one request: no retries, no backoff.
type Client struct {
	baseURL     string
	laptopsPath string
	client      *http.Client
	logger      *logger.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.client = hc
		}
	}
}

// WithLaptopsPath sets the path of the laptop list endpoint.
func WithLaptopsPath(path string) ClientOption {
	return func(c *Client) {
		if path == "" {
			return
		}
		if !strings.HasPrefix(path, "/") {
			path = "/" + path
		}
		c.laptopsPath = path
	}
}

// WithLogger sets the logger used for per-call log lines.
func WithLogger(l *logger.Logger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("base URL must be an absolute http(s) URL, got %q", baseURL)
	}

	c := &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		laptopsPath: defaultLaptopsPath,
		client:      http.DefaultClient,
		logger:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ListLaptops fetches the full laptop list.
func (c *Client) ListLaptops(ctx context.Context) ([]models.Laptop, error) {
	var laptops []models.Laptop
	if err := c.do(ctx, http.MethodGet, c.laptopsPath, nil, &laptops); err != nil {
		return nil, err
	}
	return laptops, nil
}

// Recommend asks the backend which laptop fits a role.
func (c *Client) Recommend(ctx context.Context, role string, requireGPU models.GPUPreference) (*models.RecommendResponse, error) {
	var resp models.RecommendResponse
	body := models.RecommendRequest{Role: role, RequireGPU: requireGPU}
	if err := c.do(ctx, http.MethodPost, "/recommend", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Onboard registers an employee and lets the backend assign a laptop.
func (c *Client) Onboard(ctx context.Context, employeeID, name, role string, requireGPU models.GPUPreference) (*models.MessageResponse, error) {
	body := models.OnboardRequest{EmployeeID: employeeID, Name: name, Role: role, RequireGPU: requireGPU}
	return c.message(ctx, "/onboard", body)
}

// Offboard returns an employee's laptop.
func (c *Client) Offboard(ctx context.Context, employeeID, laptopName string) (*models.MessageResponse, error) {
	return c.message(ctx, "/offboard", models.OffboardRequest{EmployeeID: employeeID, LaptopName: laptopName})
}

// Reserve claims a laptop for a manager.
func (c *Client) Reserve(ctx context.Context, laptopName, managerName string) (*models.MessageResponse, error) {
	return c.message(ctx, "/reserve", models.ReserveRequest{LaptopName: laptopName, ManagerName: managerName})
}

// CheckReservation asks who, if anyone, has reserved a laptop.
func (c *Client) CheckReservation(ctx context.Context, laptopName string) (*models.MessageResponse, error) {
	return c.message(ctx, "/check", models.CheckRequest{LaptopName: laptopName})
}

func (c *Client) message(ctx context.Context, path string, body any) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) (err error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s body: %w", path, err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	reqID := requestID(ctx)
	req.Header.Set(requestIDHeader, reqID)

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("Backend call failed",
			logger.Method(method), logger.Path(path), logger.RequestID(reqID), logger.Error(err))
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close response body: %w", closeErr)
		}
	}()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}

	c.logger.Info("Backend call",
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.Duration(time.Since(start)),
		logger.RequestID(reqID))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode}
		// a non-JSON error body still counts as a failure, just without text
		_ = json.Unmarshal(raw, &apiErr.Body)
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}

// requestID reuses the inbound request's ID so both log lines correlate.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
