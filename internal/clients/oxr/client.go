package oxr

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/currconv/internal/entity/currency"
	"max.ks1230/currconv/internal/logger"
	"max.ks1230/currconv/internal/model/customerr"
)

const (
	usagePath      = "/usage.json"
	latestPath     = "/latest.json"
	appIDParam     = "app_id"
	relativesParam = "symbols"

	defaultBaseURL = "https://openexchangerates.org/api"
	defaultTimeout = 10 * time.Second

	statusAccessRestricted = "access_restricted"
)

type config interface {
	ApiKey() string
	BaseURL() string
	Timeout() time.Duration
}

// Client talks to the Open Exchange Rates API.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type errorResponse struct {
	Error       bool   `json:"error"`
	Status      int    `json:"status"`
	Message     string `json:"message"`
	Description string `json:"description"`
}

type usageResponse struct {
	errorResponse
	Data struct {
		Status string `json:"status"`
		Usage  struct {
			RequestsRemaining int64 `json:"requests_remaining"`
			DaysRemaining     int64 `json:"days_remaining"`
		} `json:"usage"`
	} `json:"data"`
}

type ratesResponse struct {
	errorResponse
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	Timestamp int64              `json:"timestamp"`
}

func New(cfg config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL(), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout()
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		apiKey:  strings.TrimSpace(cfg.ApiKey()),
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Usage returns the remaining quota of the API key.
func (c *Client) Usage(ctx context.Context) (currency.Usage, error) {
	var res usageResponse
	if err := c.get(ctx, usagePath, nil, &res, &res.errorResponse); err != nil {
		return currency.Usage{}, errors.Wrap(err, "get usage")
	}

	status := currency.StatusOK
	if res.Data.Status == statusAccessRestricted {
		status = currency.StatusAccessRestricted
	}
	usage := currency.Usage{
		RequestsRemaining: res.Data.Usage.RequestsRemaining,
		DaysRemaining:     res.Data.Usage.DaysRemaining,
		Status:            status,
	}
	logger.Debug("api usage",
		zap.Int64("requestsRemaining", usage.RequestsRemaining),
		zap.Int64("daysRemaining", usage.DaysRemaining),
		zap.String("status", res.Data.Status))
	return usage, nil
}

// GetRates returns the latest rates of codes relative to the USD pivot.
func (c *Client) GetRates(ctx context.Context, codes []string) (currency.Snapshot, error) {
	var res ratesResponse
	params := map[string]string{relativesParam: strings.Join(codes, ",")}
	if err := c.get(ctx, latestPath, params, &res, &res.errorResponse); err != nil {
		return currency.Snapshot{}, errors.Wrap(err, "get latest rates")
	}
	if len(res.Rates) == 0 || res.Timestamp == 0 {
		return currency.Snapshot{}, customerr.New(customerr.Remote, "latest rates response has no rates")
	}
	if res.Base != "" && res.Base != currency.Pivot {
		return currency.Snapshot{}, customerr.New(customerr.Remote, fmt.Sprintf("unexpected base %s", res.Base))
	}

	logger.Info("new rates from openexchangerates",
		zap.Int("count", len(res.Rates)),
		zap.Int64("timestamp", res.Timestamp))
	return currency.Snapshot{Rates: res.Rates, Timestamp: res.Timestamp}, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, out any, apiErr *errorResponse) error {
	if c.apiKey == "" {
		return customerr.New(customerr.MissingCredential, "api key is empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "new request")
	}
	q := req.URL.Query()
	q.Add(appIDParam, c.apiKey)
	for k, v := range params {
		q.Add(k, v)
	}
	req.URL.RawQuery = q.Encode()

	res, err := c.http.Do(req)
	if err != nil {
		return customerr.Wrap(customerr.NetworkFailure, err, path)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.Warn("failed to close response body", zap.Error(err))
		}
	}()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return customerr.Wrap(customerr.NetworkFailure, err, "reading "+path)
	}

	if err = json.Unmarshal(body, out); err != nil {
		if res.StatusCode >= http.StatusBadRequest {
			return customerr.New(customerr.Remote, fmt.Sprintf("%s: http %d", path, res.StatusCode))
		}
		return customerr.Wrap(customerr.Remote, err, "unmarshalling "+path)
	}
	if apiErr.Error {
		return classify(apiErr)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return customerr.New(customerr.Remote, fmt.Sprintf("%s: http %d", path, res.StatusCode))
	}
	return nil
}

func classify(res *errorResponse) error {
	logger.Error("openexchangerates error",
		zap.String("message", res.Message),
		zap.Int("status", res.Status),
		zap.String("description", res.Description))

	detail := res.Message
	switch res.Message {
	case "invalid_app_id":
		logger.Error("Invalid API key. Sign up at https://openexchangerates.org/signup and put the key into the api key file.")
		return customerr.New(customerr.InvalidCredential, detail)
	case "missing_app_id":
		logger.Error("Missing API key. Sign up at https://openexchangerates.org/signup and put the key into the api key file.")
		return customerr.New(customerr.MissingCredential, detail)
	case "access_restricted", "not_allowed":
		logger.Error("Access restricted. You most likely ran out of your quota, check https://openexchangerates.org/account/usage.")
		return customerr.New(customerr.AccessRestricted, detail)
	}
	return customerr.New(customerr.Remote, fmt.Sprintf("%s (%d): %s", res.Message, res.Status, res.Description))
}
