package gist

import (
	"context"
	"errors"
	"fmt"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/notegist-labs/notegist-cli/internal/core/domain"
	"github.com/notegist-labs/notegist-cli/internal/core/ports/driven"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Ensure Client implements the interface.
var _ driven.SnippetService = (*Client)(nil)

// Client wraps the go-github gists API with rate-limit tracking.
type Client struct {
	gh      *gh.Client
	tracker *Tracker
}

// NewClient creates a gist client with a static access token.
// Works for both PAT and OAuth access tokens.
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	tc.Timeout = DefaultTimeout

	return &Client{
		gh:      gh.NewClient(tc),
		tracker: NewTracker(),
	}
}

// Tracker returns the rate-limit tracker for external access.
func (c *Client) Tracker() *Tracker {
	return c.tracker
}

// Create publishes a new gist from a filename-to-content map.
func (c *Client) Create(
	ctx context.Context, files map[string]string, public bool, description string,
) (*domain.Snippet, *domain.RateQuota, error) {
	if err := c.tracker.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	created, resp, err := c.gh.Gists.Create(ctx, buildGist(files, &public, description))
	if err != nil {
		return nil, nil, c.wrapError(err, "create gist")
	}

	quota := c.refreshQuota(resp)
	return snippetFrom(created), quota, nil
}

// Update replaces the files of an existing gist.
func (c *Client) Update(
	ctx context.Context, id string, files map[string]string,
) (*domain.Snippet, *domain.RateQuota, error) {
	if err := c.tracker.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	updated, resp, err := c.gh.Gists.Edit(ctx, id, buildGist(files, nil, ""))
	if err != nil {
		return nil, nil, c.wrapError(err, "update gist")
	}

	quota := c.refreshQuota(resp)
	return snippetFrom(updated), quota, nil
}

// Fetch retrieves a gist's current files.
func (c *Client) Fetch(ctx context.Context, id string) (*domain.Snippet, *domain.RateQuota, error) {
	if err := c.tracker.Wait(ctx); err != nil {
		return nil, nil, fmt.Errorf("rate limit wait: %w", err)
	}

	fetched, resp, err := c.gh.Gists.Get(ctx, id)
	if err != nil {
		return nil, nil, c.wrapError(err, "fetch gist")
	}

	quota := c.refreshQuota(resp)
	return snippetFrom(fetched), quota, nil
}

// ValidateCredentials checks the token by making a cheap API call.
func (c *Client) ValidateCredentials(ctx context.Context) error {
	if err := c.tracker.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return c.wrapError(err, "validate credentials")
	}

	c.refreshQuota(resp)
	return nil
}

// buildGist assembles the API payload.
func buildGist(files map[string]string, public *bool, description string) *gh.Gist {
	gistFiles := make(map[gh.GistFilename]gh.GistFile, len(files))
	for name, content := range files {
		gistFiles[gh.GistFilename(name)] = gh.GistFile{Content: gh.Ptr(content)}
	}

	g := &gh.Gist{Files: gistFiles}
	if public != nil {
		g.Public = public
	}
	if description != "" {
		g.Description = gh.Ptr(description)
	}
	return g
}

// snippetFrom converts the API representation to the domain type.
func snippetFrom(g *gh.Gist) *domain.Snippet {
	if g == nil {
		return nil
	}

	files := make(map[string]string, len(g.Files))
	for name, file := range g.Files {
		files[string(name)] = file.GetContent()
	}

	return &domain.Snippet{
		ID:    g.GetID(),
		URL:   g.GetHTMLURL(),
		Files: files,
	}
}

// refreshQuota updates the tracker from response headers and returns
// the parsed quota, or nil when the response carried none.
func (c *Client) refreshQuota(resp *gh.Response) *domain.RateQuota {
	if resp == nil || resp.Response == nil {
		return nil
	}

	quota := QuotaFromHeaders(resp.Response)
	if quota != nil {
		c.tracker.Update(*quota)
	}
	return quota
}

// wrapError converts go-github errors to the connector error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil && ghErr.Response.Request.URL != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		quota := domain.RateQuota{
			Limit:     rateLimitErr.Rate.Limit,
			Remaining: rateLimitErr.Rate.Remaining,
			Reset:     rateLimitErr.Rate.Reset.Time,
		}
		c.tracker.Update(quota)
		return &RateLimitError{
			ResetAt:   quota.Reset,
			Remaining: quota.Remaining,
			Limit:     quota.Limit,
		}
	}

	return &TransportError{Op: operation, Err: err}
}
