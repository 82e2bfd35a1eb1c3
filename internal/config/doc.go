// Package config loads generator options from an optional config file and
// ACCESSOR_NAMING_* environment variables.
package config
