// Package config provides configuration loading, merging, defaulting and
// validation for the service.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The entry point is [GetStructuredConfig]. Secret material is never given a
// default value; see [ErrInvalidCryptoConfigs].
package config
