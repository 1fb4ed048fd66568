// Package config loads, normalizes, and validates agrideck configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts) and reads TOML files. Every field has a default, so a missing
// configuration file yields a working setup that writes the deck into the
// current working directory.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
