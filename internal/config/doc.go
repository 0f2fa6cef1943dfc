// Package config provides environment-based configuration for the
// library with sensible defaults.
//
// Configuration Sections:
//   - HTTP: network helper settings (timeout, retries, rate limit, token)
//   - Storage: durable key-value store location
//   - Logging: log level and output format
//
// Environment Variables:
//   - DOMKIT_HTTP_TIMEOUT, DOMKIT_HTTP_RETRIES, DOMKIT_HTTP_RATE_LIMIT, DOMKIT_TOKEN
//   - DOMKIT_STORAGE_DIR
//   - DOMKIT_LOG_LEVEL, DOMKIT_LOG_DEV
package config
