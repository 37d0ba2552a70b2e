// Package detector uploads an audio file to the species-detection endpoint
// and decodes the ranked result.
//
// # Request
//
// Detect sends one POST with a multipart/form-data body holding a single
// part named "file". The part carries the original file name and the MIME
// type resolved by package audio. The body is streamed from disk. Every
// request sets:
//   - Accept: application/json
//   - User-Agent: wildwave/0.1
//   - X-Request-ID: a fresh uuid, also attached to log lines
//
// No authentication is sent and nothing is retried.
//
// # Response
//
// A 2xx body must decode as {"birds":[{"name":...,"confidence":...}]}. The
// birds array must be present (it may be empty). Each entry needs a non-empty
// name and a confidence in [0,100]. Entries keep server order; the client
// never re-sorts them.
//
// # Errors
//
// Network errors, non-2xx status codes, oversized bodies, malformed JSON
// and schema mismatches all wrap ErrTransferFailure:
//
//	if errors.Is(err, detector.ErrTransferFailure) { ... }
//
// # Tiers
//
// TierFor buckets a confidence for display: 85 and above is A, 60 and above
// is B, anything lower is C.
package detector
