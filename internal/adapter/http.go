package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/devconf/internal/logger"
	"github.com/MKhiriev/devconf/internal/utils"
	"github.com/MKhiriev/devconf/models"
	"github.com/go-resty/resty/v2"
)

const defaultRequestTimeout = 5 * time.Second

type httpAdminClient struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPAdminClient constructs an HTTP/REST implementation of [AdminClient]
// for the admin API at address ("host:port" or a full URL). A non-positive
// timeout selects the default of five seconds.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPAdminClient(address string, timeout time.Duration, logger *logger.Logger) (AdminClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid admin address: %w", err)
	}
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &httpAdminClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetConfig implements [AdminClient] via GET /api/config.
func (c *httpAdminClient) GetConfig(ctx context.Context) (models.ConfigResponse, error) {
	var cfg models.ConfigResponse

	resp, err := c.request(ctx).
		SetResult(&cfg).
		Get("/api/config")
	if err != nil {
		return cfg, fmt.Errorf("get config request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// GetSimMode implements [AdminClient] via GET /api/sim-mode.
func (c *httpAdminClient) GetSimMode(ctx context.Context) (models.SimModeResponse, error) {
	var view models.SimModeResponse

	resp, err := c.request(ctx).
		SetResult(&view).
		Get("/api/sim-mode")
	if err != nil {
		return view, fmt.Errorf("get sim mode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return view, err
	}

	return view, nil
}

// SetSimMode implements [AdminClient] via PUT /api/sim-mode.
func (c *httpAdminClient) SetSimMode(ctx context.Context, simMode bool) (models.SimModeResponse, error) {
	var view models.SimModeResponse

	resp, err := c.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.SimModeRequest{SimMode: &simMode}).
		SetResult(&view).
		Put("/api/sim-mode")
	if err != nil {
		return view, fmt.Errorf("set sim mode request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return view, err
	}

	return view, nil
}

// request starts a request carrying a fresh trace id so the access log of
// the process can be correlated with the caller's log.
func (c *httpAdminClient) request(ctx context.Context) *resty.Request {
	traceID := utils.NewTraceID()
	c.logger.Debug().Str("trace_id", traceID).Msg("admin api request")

	return c.client.R().
		SetContext(ctx).
		SetHeader(utils.TraceIDHeader, traceID)
}
