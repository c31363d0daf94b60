package rdstation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"sinistro-sync/internal/domain/crm"
	"sinistro-sync/internal/domain/pipeline"
	"sinistro-sync/internal/pkg/config"
	"sinistro-sync/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
)

const maxErrorBody = 512

// APIError is a non-2xx answer from the CRM API.
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("rd station %s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Retryable is true for rate limiting and server-side failures.
func (e *APIError) Retryable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// Client talks to the RD Station CRM REST API. Every error it returns is
// marked errs.ErrUpstream.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	maxRetries uint64
	retryBase  time.Duration
	logger     *slog.Logger
}

func NewClient(cfg config.RDStationConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		maxRetries: cfg.MaxRetries,
		retryBase:  cfg.RetryBaseDelay,
		logger:     logger,
	}
}

type pipelinesEnvelope struct {
	DealPipelines []pipeline.Pipeline `json:"deal_pipelines"`
}

// ListPipelines accepts both the bare array and the wrapped form.
func (c *Client) ListPipelines(ctx context.Context) ([]pipeline.Pipeline, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, "/deal_pipelines", nil, &raw); err != nil {
		return nil, err
	}

	var list []pipeline.Pipeline
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var wrapped pipelinesEnvelope
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode deal pipelines"), errs.ErrUpstream)
	}
	return wrapped.DealPipelines, nil
}

type dealRequest struct {
	Deal crm.DealInput `json:"deal"`
}

func (c *Client) CreateDeal(ctx context.Context, in crm.DealInput) (*crm.Deal, error) {
	var deal crm.Deal
	if err := c.do(ctx, http.MethodPost, "/deals", dealRequest{Deal: in}, &deal); err != nil {
		return nil, err
	}
	if deal.ID == "" {
		return nil, errs.Mark(errs.New("rd station created a deal without id"), errs.ErrUpstream)
	}
	return &deal, nil
}

func (c *Client) UpdateDeal(ctx context.Context, dealID string, in crm.DealInput) (*crm.Deal, error) {
	var deal crm.Deal
	if err := c.do(ctx, http.MethodPut, "/deals/"+url.PathEscape(dealID), dealRequest{Deal: in}, &deal); err != nil {
		return nil, err
	}
	if deal.ID == "" {
		deal.ID = dealID
	}
	return &deal, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return errs.Wrap(err, "encode rd station request")
		}
	}

	// A create may already exist upstream once the request reached the server.
	resendable := method != http.MethodPost

	attempt := 0
	op := func() error {
		attempt++
		err := c.roundTrip(ctx, method, path, payload, out)
		if err == nil {
			return nil
		}
		var apiErr *APIError
		if errs.As(err, &apiErr) && !apiErr.Retryable() {
			return backoff.Permanent(err)
		}
		if !resendable && !notDelivered(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, wait time.Duration) {
		c.logger.Warn("retrying rd station request",
			"method", method,
			"path", path,
			"attempt", attempt,
			"wait_ms", wait.Milliseconds(),
			"error", err.Error())
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(c.newBackOff(), ctx), notify); err != nil {
		return errs.Mark(errs.Wrapf(err, "rd station %s %s", method, path), errs.ErrUpstream)
	}
	return nil
}

// notDelivered is true when the server cannot have acted on the request:
// the connection was never made or the call was rate limited.
func notDelivered(err error) bool {
	var apiErr *APIError
	if errs.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	var opErr *net.OpError
	return errs.As(err, &opErr) && opErr.Op == "dial"
}

func (c *Client) roundTrip(ctx context.Context, method, path string, payload []byte, out any) error {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), reader)
	if err != nil {
		return backoff.Permanent(err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return backoff.Permanent(errs.Wrap(err, "decode rd station response"))
	}
	return nil
}

func (c *Client) endpoint(path string) string {
	q := url.Values{}
	q.Set("token", c.token)
	return c.baseURL + path + "?" + q.Encode()
}

func (c *Client) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryBase
	b.MaxElapsedTime = 0
	return backoff.WithMaxRetries(b, c.maxRetries)
}
