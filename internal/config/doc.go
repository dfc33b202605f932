// Package config provides configuration loading, merging, and validation
// facilities for the KeePassHTTP client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// The main entry points are [GetStructuredConfig] for the merged view and
// [GetClientConfig] for the slice of settings the client runtime consumes.
package config
