// Package config loads, normalizes, and validates speechset configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// SPEECHSET_DOCUMENTS_DIR. The Config type centralizes the input locations,
// table decoding options, split ratios, and logging settings the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, canonical encodings, and clear validation errors.
package config
