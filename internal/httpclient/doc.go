// Package httpclient provides the network transport behind the ajax
// helpers: a resty client over a retryable transport with optional
// rate limiting and bearer authentication.
//
// Requests are single attempts by default. Retries and rate limits
// only apply when configured.
package httpclient
