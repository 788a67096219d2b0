// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file, providing
// type-safe access to the server settings.
package config
