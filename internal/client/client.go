package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Belphemur/Aggregator/internal/apperrors"
	"github.com/Belphemur/Aggregator/internal/config"
	"github.com/Belphemur/Aggregator/internal/models"
)

// Resource names used in errors, logs and metric labels
const (
	CommentResource = "comment"
	PostResource    = "post"
)

// ResourceClient fetches a single JSON resource by identifier from a fixed base endpoint
type ResourceClient[T any] interface {
	// Fetch performs exactly one GET {baseURL}/{id} and decodes the body.
	// On error the zero value is returned, never a partially decoded one.
	Fetch(ctx context.Context, id int) (T, error)
}

// resourceClient implements ResourceClient for any JSON-decodable shape
type resourceClient[T any] struct {
	httpClient *http.Client
	baseURL    string
	resource   string
	userAgent  string
}

// NewResourceClient creates a client for the named resource rooted at baseURL.
// The http.Client is shared and must not be mutated afterwards.
func NewResourceClient[T any](resource, baseURL, userAgent string, httpClient *http.Client) ResourceClient[T] {
	if userAgent == "" {
		userAgent = config.GetUserAgent()
	}
	return &resourceClient[T]{
		httpClient: withResourceInstrumentation(httpClient, resource),
		baseURL:    baseURL,
		resource:   resource,
		userAgent:  userAgent,
	}
}

// NewCommentClient creates the client of the comments upstream
func NewCommentClient(cfg *config.Config, httpClient *http.Client) ResourceClient[models.Comment] {
	return NewResourceClient[models.Comment](CommentResource, cfg.CommentsEndpoint, cfg.UserAgent, httpClient)
}

// NewPostClient creates the client of the posts upstream
func NewPostClient(cfg *config.Config, httpClient *http.Client) ResourceClient[models.Post] {
	return NewResourceClient[models.Post](PostResource, cfg.PostsEndpoint, cfg.UserAgent, httpClient)
}

// Fetch implements ResourceClient.Fetch
func (c *resourceClient[T]) Fetch(ctx context.Context, id int) (T, error) {
	var zero T
	logger := config.GetLogger()

	endpoint, err := url.JoinPath(c.baseURL, strconv.Itoa(id))
	if err != nil {
		return zero, fmt.Errorf("invalid %s base URL: %w", c.resource, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	logger.Debug().Str("resource", c.resource).Int("id", id).Str("url", endpoint).Msg("Fetching upstream resource")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return zero, apperrors.NewNetworkError(c.resource, id, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return zero, apperrors.NewHTTPStatusError(c.resource, id, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, apperrors.NewNetworkError(c.resource, id, err)
	}

	var value T
	if err := json.Unmarshal(body, &value); err != nil {
		return zero, apperrors.NewParseError(c.resource, id, err)
	}

	return value, nil
}

// NewHTTPClient creates the http.Client shared by all resource clients,
// with proxy configuration if provided
func NewHTTPClient(cfg *config.Config) *http.Client {
	// Zero keeps the transport defaults; no overall deadline is imposed
	var timeout time.Duration
	if cfg.ClientTimeout != "" {
		if parsedTimeout, err := time.ParseDuration(cfg.ClientTimeout); err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("timeout", cfg.ClientTimeout).Msg("Invalid timeout duration, keeping transport defaults")
		} else {
			timeout = parsedTimeout
		}
	}

	// Clone DefaultTransport to preserve all its settings (timeouts, connection pooling, HTTP/2, etc.)
	baseTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.ProxyConnectionString != "" {
		proxyURL, err := url.Parse(cfg.ProxyConnectionString)
		if err != nil {
			logger := config.GetLogger()
			logger.Warn().Err(err).Str("proxy", cfg.ProxyConnectionString).Msg("Invalid proxy URL, continuing without proxy")
		} else {
			baseTransport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: newDecodingTransport(baseTransport),
	}
}
