package modelhash

import "encoding/json"

// DefaultBaseURL is the model registry queried when Config.BaseURL is empty.
const DefaultBaseURL = "https://civitai.com"

// NotFoundMessage is the error text reported for any non-200 registry response.
const NotFoundMessage = "Model not found or API error"

// notFoundBody is the compact encoding of {"error": NotFoundMessage}.
const notFoundBody = `{"error":"` + NotFoundMessage + `"}`

// NotFoundBody returns the JSON object substituted for any non-200 response.
// The registry does not distinguish a missing model from a server error, and
// neither does this value.
func NotFoundBody() json.RawMessage {
	return json.RawMessage(notFoundBody)
}

// Config configures a Client.
type Config struct {
	// BaseURL is the base URL of the model registry.
	// If empty, DefaultBaseURL is used.
	BaseURL string
}

// Result is the outcome of a lookup.
type Result struct {
	// Digest is the lowercase hex SHA-256 of the file content.
	Digest string

	// Found is true when the registry answered with status 200.
	Found bool

	// Body is the registry response compacted to one line, or NotFoundBody.
	Body json.RawMessage
}
