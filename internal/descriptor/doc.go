// Package descriptor generates the TOML configuration document the
// MindForge service reads at launch.
//
// Only the bind address, port, and storage directory come from the resolved
// launcher config; the integration and handler catalogues are fixed at
// generation time. The file is always written whole, never patched in place.
package descriptor
