// Package modelhash identifies model files by content against the Civitai
// model registry.
//
// A lookup has two steps:
//
//  1. The file is streamed through SHA-256 in fixed-size chunks, producing a
//     64-character lowercase hex digest (HashFile).
//
//  2. The digest is sent to the registry's model-version-by-hash endpoint in
//     a single GET request. A 200 response body is returned as compact JSON;
//     any other status yields NotFoundBody.
//
// The package serves two use cases, mirroring each other:
//
//   - Programmatic API via NewClient and Client.Lookup.
//   - A ready-made Cobra command via NewCommand, used by cmd/modelhash.
//
// # Errors
//
// Only non-200 HTTP statuses are folded into NotFoundBody. File errors,
// transport failures and malformed success bodies are returned as errors
// wrapping the sentinels in this package; use errors.Is to classify them.
package modelhash
