// Package shortener is the HTTP client for the URL shortening service.
//
// The service exposes a single endpoint:
//
//	POST /api
//	{"url": "https://example.com"}
//
//	201 Created
//	{"key": "abc123", "short_url": "http://localhost:8080/abc123", "long_url": "https://example.com"}
//
// Only short_url is required. Any non-2xx status, undecodable body or empty
// short_url is returned as an error; the caller decides how to present it.
// Non-2xx responses include the trimmed plain-text body in the message because
// the service reports validation problems (url_missing, invalid_url_format)
// that way.
//
// Every request carries an X-Request-ID. Callers that want to correlate logs
// attach their own with WithRequestID; otherwise a random UUID is generated.
package shortener
