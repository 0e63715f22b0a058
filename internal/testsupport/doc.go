// Package testsupport provides shared fixtures for launcher tests: resolved
// configurations backed by per-test temp directories and stub executables
// placed on PATH.
package testsupport
