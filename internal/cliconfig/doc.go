// Package cliconfig provides configuration types and loading for the
// nitractl CLI.
//
// It implements a layered configuration system with the following
// precedence (highest to lowest):
//
//  1. Command-line flags
//  2. Environment variables (NITRADO_* prefix)
//  3. User config file (~/.config/nitractl/config.yaml)
//  4. Default values
//
// The config file location can be overridden with NITRADO_CONFIG. The
// source of each value is tracked so problems like "where did this token
// come from" stay answerable.
//
// The library packages under pkg/ take no configuration from here; they
// are parameterized entirely through constructor options.
package cliconfig
