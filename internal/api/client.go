package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	fhttp "github.com/bogdanfinn/fhttp"
	"github.com/jimezsa/jobboard/internal/models"
	"github.com/rs/zerolog"
)

var ErrNotFound = errors.New("not found")

// Doer sends a single HTTP request. *network.Client satisfies it.
type Doer interface {
	Do(req *fhttp.Request) (*fhttp.Response, error)
}

// StatusError reports a backend answer with a failing status code.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: http %d", e.Method, e.URL, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == fhttp.StatusNotFound
}

// Client talks to the job collection endpoint.
type Client struct {
	doer     Doer
	endpoint string
	logger   zerolog.Logger
}

func NewClient(doer Doer, endpoint string, logger zerolog.Logger) (*Client, error) {
	if doer == nil {
		return nil, fmt.Errorf("api client requires a transport")
	}
	endpoint = strings.TrimSpace(endpoint)
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse api url %q: %w", endpoint, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api url %q must use http or https", endpoint)
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("api url %q has no host", endpoint)
	}
	return &Client{
		doer:     doer,
		endpoint: endpoint,
		logger:   logger.With().Str("component", "api").Logger(),
	}, nil
}

// Endpoint returns the collection URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// List reads the whole collection.
func (c *Client) List(ctx context.Context) ([]models.JobPosting, error) {
	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", c.endpoint).Msg("fetching job postings")
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", c.endpoint).Msg("list request failed")
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer closeBody(c.logger, resp.Body)

	if resp.StatusCode >= 400 {
		c.logger.Error().Int("status_code", resp.StatusCode).Msg("unexpected status code")
		return nil, &StatusError{Method: fhttp.MethodGet, URL: c.endpoint, StatusCode: resp.StatusCode}
	}

	var jobs []models.JobPosting
	if err := json.NewDecoder(resp.Body).Decode(&jobs); err != nil {
		c.logger.Error().Err(err).Msg("failed to decode job postings")
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.JobPosting{}
	}

	c.logger.Debug().Int("count", len(jobs)).Msg("fetched job postings")
	return jobs, nil
}

// Create posts a single job. The response body is not read.
func (c *Client) Create(ctx context.Context, posting models.JobPosting) error {
	body, err := json.Marshal(posting)
	if err != nil {
		return fmt.Errorf("encode job: %w", err)
	}

	req, err := fhttp.NewRequestWithContext(ctx, fhttp.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("url", c.endpoint).Str("title", posting.JobTitle).Msg("posting job")
	resp, err := c.doer.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("url", c.endpoint).Msg("create request failed")
		return fmt.Errorf("post job: %w", err)
	}
	defer closeBody(c.logger, resp.Body)

	if resp.StatusCode >= 400 {
		c.logger.Error().Int("status_code", resp.StatusCode).Msg("unexpected status code")
		return &StatusError{Method: fhttp.MethodPost, URL: c.endpoint, StatusCode: resp.StatusCode}
	}
	return nil
}

func closeBody(logger zerolog.Logger, body io.ReadCloser) {
	if body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, body)
	if err := body.Close(); err != nil {
		logger.Warn().Err(err).Msg("failed to close response body")
	}
}
