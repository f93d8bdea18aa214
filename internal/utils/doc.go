// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for HTTP response writing and HTTP client initialization.
package utils
