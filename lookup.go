package modelhash

import (
	"context"
	"fmt"
	"net/url"
)

// Client resolves local files to registry metadata.
// A Client holds no mutable state and is safe for concurrent use.
// For CLI integration, use NewCommand instead.
type Client struct {
	// logger receives diagnostic messages. May be nil.
	logger Logger

	// registry handles remote registry communication.
	registry *registryClient
}

// NewClient creates a Client with the given configuration.
// An empty BaseURL selects DefaultBaseURL. Returns an error if BaseURL is
// not an absolute http(s) URL.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("modelhash: invalid BaseURL %q", cfg.BaseURL)
	}

	ccfg := newClientConfig()
	for _, opt := range opts {
		opt(ccfg)
	}

	return &Client{
		logger:   ccfg.logger,
		registry: newRegistryClient(cfg.BaseURL, ccfg.httpClient, ccfg.logger),
	}, nil
}

// BaseURL returns the registry base URL in use.
func (c *Client) BaseURL() string {
	return c.registry.baseURL
}

// Lookup hashes the file at path and fetches the registry entry for the digest.
// If the file cannot be hashed, no request is made.
func (c *Client) Lookup(ctx context.Context, path string) (Result, error) {
	digest, err := HashFile(path)
	if err != nil {
		return Result{}, err
	}
	if c.logger != nil {
		c.logger.Debug("hashed file", "path", path, "sha256", digest)
	}
	return c.LookupDigest(ctx, digest)
}

// LookupDigest fetches the registry entry for an already computed digest.
// Returns ErrInvalidDigest, without making a request, if digest is not
// 64 lowercase hex characters.
func (c *Client) LookupDigest(ctx context.Context, digest string) (Result, error) {
	if !validDigest(digest) {
		return Result{}, fmt.Errorf("%q: %w", digest, ErrInvalidDigest)
	}

	body, found, err := c.registry.fetchVersionByHash(ctx, digest)
	if err != nil {
		return Result{}, err
	}
	if !found && c.logger != nil {
		c.logger.Info("no model version for digest", "sha256", digest)
	}

	return Result{Digest: digest, Found: found, Body: body}, nil
}
