// Package config provides configuration loading, merging, and validation
// for the device-sync service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// Defaults are filled in after merging. The entry point is
// [GetStructuredConfig].
package config
