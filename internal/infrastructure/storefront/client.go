// Package storefront provides the GraphQL client for the hosting platform's
// Storefront and Admin APIs, with a response cache for read queries.
package storefront

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"

	"github.com/Kronotime-SAS/Festina/internal/infrastructure/observability/logging"
)

const (
	storefrontTokenHeader = "X-Shopify-Storefront-Access-Token"
	adminTokenHeader      = "X-Shopify-Access-Token"

	maxErrorBody = 512
)

var validate = validator.New()

// Config holds the platform connection settings.
type Config struct {
	Domain     string `validate:"required,hostname_port|hostname"`
	Token      string `validate:"required"`
	APIVersion string `validate:"required"`

	Timeout   time.Duration
	CacheSize int
	ShortTTL  time.Duration
	LongTTL   time.Duration

	// BaseURL overrides https://{Domain}; used against local stubs.
	BaseURL    string
	HTTPClient *http.Client
}

// Client posts GraphQL documents to one platform endpoint.
type Client struct {
	endpoint    string
	tokenHeader string
	token       string
	httpClient  *http.Client
	cache       *responseCache
	logger      *logging.ChanneledLogger
}

// NewStorefrontClient targets https://{domain}/api/{version}/graphql.json.
func NewStorefrontClient(cfg Config, logger *logging.ChanneledLogger) (*Client, error) {
	return newClient(cfg, "/api/%s/graphql.json", storefrontTokenHeader, logger)
}

// NewAdminClient targets https://{domain}/admin/api/{version}/graphql.json.
func NewAdminClient(cfg Config, logger *logging.ChanneledLogger) (*Client, error) {
	return newClient(cfg, "/admin/api/%s/graphql.json", adminTokenHeader, logger)
}

func newClient(cfg Config, pathFormat, tokenHeader string, logger *logging.ChanneledLogger) (*Client, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid storefront config: %w", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	base := cfg.BaseURL
	if base == "" {
		base = "https://" + cfg.Domain
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	shortTTL, longTTL := cfg.ShortTTL, cfg.LongTTL
	if shortTTL <= 0 {
		shortTTL = time.Minute
	}
	if longTTL <= 0 {
		longTTL = time.Hour
	}

	return &Client{
		endpoint:    base + fmt.Sprintf(pathFormat, cfg.APIVersion),
		tokenHeader: tokenHeader,
		token:       cfg.Token,
		httpClient:  httpClient,
		cache:       newResponseCache(cfg.CacheSize, shortTTL, longTTL),
		logger:      logger,
	}, nil
}

// Endpoint returns the GraphQL URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// PurgeCache drops every cached response.
func (c *Client) PurgeCache() {
	c.cache.purge()
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage    `json:"data"`
	Errors []GraphQLErrorItem `json:"errors,omitempty"`
}

// Query sends document with variables and decodes the "data" member into
// out. Responses carrying GraphQL errors are never cached.
func (c *Client) Query(ctx context.Context, operation, document string, variables map[string]any, strategy CacheStrategy, out any) error {
	vars, err := json.Marshal(variables)
	if err != nil {
		return fmt.Errorf("failed to encode variables for %s: %w", operation, err)
	}
	key := cacheKey(c.endpoint, document, vars)

	start := time.Now()
	if data, ok := c.cache.get(strategy, key); ok {
		c.logger.LogCacheOperation(operation, key[:12], true, time.Since(start))
		return decodeData(operation, data, out)
	}
	if strategy != CacheNone {
		c.logger.LogCacheOperation(operation, key[:12], false, time.Since(start))
	}

	data, err := c.do(ctx, operation, graphQLRequest{Query: document, Variables: variables})
	if err != nil {
		return err
	}

	if len(data) > 0 && string(data) != "null" {
		c.cache.add(strategy, key, data)
	}
	c.logger.Storefront().Debug("GraphQL query completed", "operation", operation, "strategy", strategy.String(), "duration", time.Since(start))

	return decodeData(operation, data, out)
}

// Mutate sends a mutation; mutations are never cached.
func (c *Client) Mutate(ctx context.Context, operation, document string, variables map[string]any, out any) error {
	return c.Query(ctx, operation, document, variables, CacheNone, out)
}

func (c *Client) do(ctx context.Context, operation string, payload graphQLRequest) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s request: %w", operation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(c.tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Storefront().Error("GraphQL request failed", "operation", operation, "error", err.Error())
		return nil, fmt.Errorf("%s request failed: %w", operation, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s response: %w", operation, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet := string(raw)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		c.logger.Storefront().Warn("GraphQL request rejected", "operation", operation, "status", resp.StatusCode)
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: snippet}
	}

	var decoded graphQLResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", operation, err)
	}
	if len(decoded.Errors) > 0 {
		c.logger.Storefront().Warn("GraphQL response carried errors", "operation", operation, "count", len(decoded.Errors))
		return nil, &GraphQLError{Operation: operation, Errors: decoded.Errors}
	}

	return decoded.Data, nil
}

func decodeData(operation string, data []byte, out any) error {
	if out == nil {
		return nil
	}
	if len(data) == 0 || string(data) == "null" {
		return fmt.Errorf("%s response carried no data", operation)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode %s data: %w", operation, err)
	}
	return nil
}
