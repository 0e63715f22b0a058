// Package launcher orchestrates the MindForge startup sequence:
// requirements check, environment assembly, descriptor ensure, storage
// ensure, and the foreground service launch.
//
// The sequence is strictly linear with no retries. Any stage failure is
// terminal, and cancellation of the run context aborts between stages and
// terminates the launched service. Nothing created on disk is cleaned up on
// abort; every filesystem effect is an idempotent create-if-absent that the
// next invocation reuses.
package launcher
