// Package util provides small helpers shared across nitrado-go packages.
//
//   - TruncateBody — cap API response bodies for safe logging
package util
