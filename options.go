package modelhash

import "net/http"

// Option configures a Client.
type Option func(*clientConfig)

// clientConfig holds configuration for Client construction.
type clientConfig struct {
	// httpClient is used for the registry request.
	httpClient HTTPClient

	// logger receives diagnostic log messages.
	logger Logger
}

// newClientConfig returns a clientConfig with default values.
func newClientConfig() *clientConfig {
	return &clientConfig{
		httpClient: http.DefaultClient,
	}
}

// WithHTTPClient sets a custom HTTP client for registry requests.
// If not set, http.DefaultClient is used. A nil client is ignored.
func WithHTTPClient(client HTTPClient) Option {
	return func(c *clientConfig) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithLogger sets a logger for diagnostic output.
// If not set, logging is disabled.
func WithLogger(logger Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// HTTPClient is the interface for HTTP operations.
// *http.Client satisfies this interface.
type HTTPClient interface {
	// Do sends an HTTP request and returns an HTTP response.
	Do(req *http.Request) (*http.Response, error)
}

// Logger is the interface for diagnostic logging.
// *slog.Logger satisfies it, as do most structured loggers.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Warn(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)
}
