// Package drivers installs the optional integration packages for the
// MindForge service: database drivers, cloud SDKs, language-model clients,
// and web-scraping utilities.
//
// The catalogue is data, not control flow. Each group maps to one pip
// invocation; a failing group is logged and does not abort the remaining
// groups. This is an operator-invoked maintenance action, never part of the
// default startup sequence.
package drivers
