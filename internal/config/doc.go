// Package config builds the effective redflag configuration by merging
// defaults, the platform config file, REDFLAG_* environment variables,
// and CLI flag overrides, in that order of increasing precedence.
package config
