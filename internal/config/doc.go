// Package config loads and merges prcoach configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (PRCOACH_PROVIDER, PRCOACH_MODEL, etc.)
//  3. Config file ($XDG_CONFIG_HOME/prcoach/config.json)
//  4. Built-in defaults
//
// The Policy section mirrors the review policy consumed by the explanation
// engine: docstring requirements, inline comment budget, and snippet
// visibility.
package config
