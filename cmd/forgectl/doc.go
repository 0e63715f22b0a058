// Command forgectl prepares and launches the MindForge data-platform
// service: it resolves configuration from defaults, MINDFORGE_* environment
// variables, and flags; checks external requirements; materializes the
// service's configuration descriptor; and runs the service in the
// foreground.
package main
