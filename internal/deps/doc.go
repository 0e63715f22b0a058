// Package deps verifies the external programs the launcher depends on.
//
// Verification and mutation are deliberately separate operations:
//   - Check and VerifyPrerequisites only look up binaries on PATH.
//   - EnsureService is the one mutating operation; it installs the service
//     package when the service binary is missing and performs no re-check
//     afterwards, so an installation failure surfaces later at launch.
package deps
