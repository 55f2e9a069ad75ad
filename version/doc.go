// Package version provides version information and build metadata for
// photoyard.
//
// It supports both compile-time version injection via build flags and
// runtime version detection using Go's build info, so version reporting
// works in development, CI/CD, and release builds alike.
//
// Build integration sets the variables with:
//
//	-ldflags "-X github.com/archivista/photoyard/version.Version=v1.0.0 ..."
package version
