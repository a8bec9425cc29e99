package classy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"fund_sync/internal/domain"
	"fund_sync/internal/remote"
)

const userAgent = "FundSync/1.0"

// Config holds Classy API client configuration.
type Config struct {
	BaseURL           string
	TokenURL          string
	OrgID             string
	ClientID          string
	ClientSecret      string
	PageSize          int
	Timeout           time.Duration
	TokenExpiryMargin time.Duration
	RequestsPerMinute int
	MaxAttempts       int
	InitialBackoff    time.Duration
	MaxBackoff        time.Duration
}

// Client talks to the fundraising platform. Authentication is handled by an
// OAuth2 client-credentials token cached until TokenExpiryMargin before it
// expires.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	orgID          string
	pageSize       int
	limiter        *rate.Limiter
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new Classy client.
func New(cfg Config, logger *slog.Logger) *Client {
	tokenHTTP := &http.Client{Timeout: cfg.Timeout}
	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, tokenHTTP)

	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.TokenURL,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	tokens := oauth2.ReuseTokenSourceWithExpiry(nil, fetchTokenSource{ctx: tokenCtx, creds: creds}, cfg.TokenExpiryMargin)

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 1
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: &oauth2.Transport{Source: tokens, Base: http.DefaultTransport},
		},
		baseURL:        cfg.BaseURL,
		orgID:          cfg.OrgID,
		pageSize:       cfg.PageSize,
		limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), rpm),
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("component", "classy"),
	}
}

// fetchTokenSource requests a fresh token on every call; caching is left to
// the ReuseTokenSourceWithExpiry wrapper so the safety margin applies.
type fetchTokenSource struct {
	ctx   context.Context
	creds *clientcredentials.Config
}

func (s fetchTokenSource) Token() (*oauth2.Token, error) {
	return s.creds.Token(s.ctx)
}

func (c *Client) ListDesignations(ctx context.Context) ([]domain.Designation, error) {
	items, err := listAll[Designation](ctx, c, fmt.Sprintf("/organizations/%s/designations", c.orgID))
	if err != nil {
		return nil, err
	}
	out := make([]domain.Designation, 0, len(items))
	for _, d := range items {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (c *Client) GetDesignation(ctx context.Context, id string) (*domain.Designation, error) {
	var d Designation
	if err := c.get(ctx, "/designations/"+url.PathEscape(id), &d); err != nil {
		return nil, err
	}
	out := d.toDomain()
	return &out, nil
}

func (c *Client) CreateDesignation(ctx context.Context, in domain.DesignationInput) (*domain.Designation, error) {
	var d Designation
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/organizations/%s/designations", c.orgID), in, &d); err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, &remote.APIError{Method: http.MethodPost, Path: "/designations", Message: "response carried no designation id"}
	}
	out := d.toDomain()
	return &out, nil
}

func (c *Client) UpdateDesignation(ctx context.Context, id string, in domain.DesignationInput) (*domain.Designation, error) {
	var d Designation
	if err := c.do(ctx, http.MethodPut, "/designations/"+url.PathEscape(id), in, &d); err != nil {
		return nil, err
	}
	if d.ID == 0 {
		return nil, nil
	}
	out := d.toDomain()
	return &out, nil
}

// DeleteDesignation treats an empty successful response as success.
func (c *Client) DeleteDesignation(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/designations/"+url.PathEscape(id), nil, nil)
}

func (c *Client) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var cp Campaign
	if err := c.get(ctx, "/campaigns/"+url.PathEscape(id), &cp); err != nil {
		return nil, err
	}
	out := cp.toDomain()
	return &out, nil
}

// DuplicateCampaign creates a campaign by copying a template; the platform
// rejects direct campaign creation.
func (c *Client) DuplicateCampaign(ctx context.Context, templateID string, overrides domain.CampaignOverrides) (*domain.Campaign, error) {
	var cp Campaign
	path := "/campaigns/" + url.PathEscape(templateID) + "/duplicate"
	if err := c.do(ctx, http.MethodPost, path, map[string]any{"overrides": overrides}, &cp); err != nil {
		return nil, err
	}
	if cp.ID == 0 {
		return nil, &remote.APIError{Method: http.MethodPost, Path: path, Message: "response carried no campaign id"}
	}
	out := cp.toDomain()
	return &out, nil
}

func (c *Client) UpdateCampaign(ctx context.Context, id string, in domain.CampaignInput) (*domain.Campaign, error) {
	var cp Campaign
	if err := c.do(ctx, http.MethodPut, "/campaigns/"+url.PathEscape(id), in, &cp); err != nil {
		return nil, err
	}
	out := cp.toDomain()
	return &out, nil
}

func (c *Client) PublishCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/campaigns/"+url.PathEscape(id)+"/publish", nil, nil)
}

func (c *Client) DeactivateCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/campaigns/"+url.PathEscape(id)+"/deactivate", nil, nil)
}

// ReactivateCampaign returns a deactivated campaign to the unpublished state.
func (c *Client) ReactivateCampaign(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, "/campaigns/"+url.PathEscape(id)+"/reactivate", nil, nil)
}

// listAll follows pages until last_page. The first failing page fails the
// whole listing; no partial result is returned.
func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T

	for page := 1; ; page++ {
		var resp listResponse[T]
		pagePath := fmt.Sprintf("%s?page=%d&per_page=%d", path, page, c.pageSize)
		if err := c.get(ctx, pagePath, &resp); err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", page, err)
		}

		all = append(all, resp.Data...)

		c.logger.Debug("fetched page",
			"path", path,
			"page", page,
			"items", len(resp.Data),
			"total", len(all),
		)

		if page >= resp.LastPage {
			break
		}
	}

	return all, nil
}

// get retries idempotent reads on connectivity failures.
func (c *Client) get(ctx context.Context, path string, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.do(ctx, http.MethodGet, path, nil, out)
		if err == nil || !remote.IsRetryable(err) {
			return err
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"path", path,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return err
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &remote.APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err, Message: "read response"}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return &remote.APIError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &remote.APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// transportError keeps token endpoint rejections distinguishable from
// connectivity failures.
func transportError(method, path string, err error) error {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
		return &remote.APIError{
			Method:     method,
			Path:       path,
			StatusCode: retrieveErr.Response.StatusCode,
			Message:    "obtain access token: " + errorMessage(retrieveErr.Body, retrieveErr.Response.StatusCode),
		}
	}
	return &remote.APIError{Method: method, Path: path, Err: err}
}

func errorMessage(body []byte, status int) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg, ok := payload["error"].(string); ok && msg != "" {
			return msg
		}
		if msg, ok := payload["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}
