package modelhash

import (
	"net/http"
	"testing"
)

func TestNewClientConfigDefaults(t *testing.T) {
	cfg := newClientConfig()

	if cfg.httpClient != http.DefaultClient {
		t.Errorf("default httpClient = %v, want http.DefaultClient", cfg.httpClient)
	}
	if cfg.logger != nil {
		t.Errorf("default logger = %v, want nil", cfg.logger)
	}
}

func TestWithHTTPClient(t *testing.T) {
	t.Run("custom client", func(t *testing.T) {
		custom := &http.Client{}
		cfg := newClientConfig()
		WithHTTPClient(custom)(cfg)

		if cfg.httpClient != custom {
			t.Error("WithHTTPClient did not set the client")
		}
	})

	t.Run("nil ignored", func(t *testing.T) {
		cfg := newClientConfig()
		WithHTTPClient(nil)(cfg)

		if cfg.httpClient != http.DefaultClient {
			t.Error("WithHTTPClient(nil) replaced the default client")
		}
	})
}

func TestWithLogger(t *testing.T) {
	logger := &recordingLogger{}
	cfg := newClientConfig()
	WithLogger(logger)(cfg)

	if cfg.logger != logger {
		t.Error("WithLogger did not set the logger")
	}
}

func TestNotFoundBody(t *testing.T) {
	if got, want := string(NotFoundBody()), `{"error":"Model not found or API error"}`; got != want {
		t.Errorf("NotFoundBody() = %s, want %s", got, want)
	}

	// Each call returns an independent slice.
	a := NotFoundBody()
	a[0] = 'X'
	if NotFoundBody()[0] != '{' {
		t.Error("NotFoundBody() shares its backing array")
	}
}
