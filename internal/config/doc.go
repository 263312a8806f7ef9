// Package config provides configuration loading, merging, and validation
// facilities for the mikud client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables (prefixed with MIKUD_)
//  2. Command-line flags
//  3. JSON config file
//
// Fields left empty by every source fall back to [Defaults]. The main entry
// point is [GetConfig].
package config
