// Package domain defines the core business entities for notegist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Note: A vault document identified by its path
//   - ConversionOptions: The policy snapshot governing markdown conversion
//   - ConversionResult: The accumulated outcome of a conversion pass
//   - CompatibilityReport: Read-only analysis of a note's extension usage
//   - RateQuota: A remote API's reported rate-limit budget
//   - AppSettings: Persisted application settings
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
