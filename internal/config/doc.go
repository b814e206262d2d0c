// Package config loads, normalizes, and validates labelpress configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// HOMEBOX_API_URL. The Config type centralizes the printer target, inventory
// service credentials, and logging knobs so the CLI discovers everything in
// one pass.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical log formats, and clear validation errors.
package config
