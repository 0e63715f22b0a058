// Package config resolves the effective runtime configuration for a
// forgectl run from three layered sources: command-line flags, MINDFORGE_*
// environment variables, and built-in defaults. A field set by an earlier
// layer is never overwritten by a later one, so flags always win over the
// environment and the environment always wins over defaults.
//
// The resolved Config is immutable for the rest of the run; the descriptor
// and launcher packages consume it read-only.
package config
