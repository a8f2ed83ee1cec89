// Package logtail reads the tail of shorty's log file for the in-app log view.
//
// Read uses a ring buffer so memory stays O(maxLines) no matter how large the
// file grows. Parse turns the JSON lines zap writes into an Entry that the UI
// renders on one line:
//
//	2026-10-15T10:01:05.123+0200 INFO submit attempt=1 request_id=... url=https://example.com
//
// Anything that is not a JSON object is shown verbatim.
package logtail
