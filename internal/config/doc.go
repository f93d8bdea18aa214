// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (the first source to set a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig], which returns the merged and
// validated runtime configuration: deployment mode, carrier credentials,
// outbound request timeouts, and HTTP server settings.
package config
