// Package config loads and merges the application configuration from
// environment variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo; a later source only fills fields that are
// still zero-valued, so environment variables take precedence over flags,
// and flags over the JSON file. The merged result is validated before use.
package config
