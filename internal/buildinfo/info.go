// Package buildinfo carries release metadata stamped at build time.
package buildinfo

// Set via -ldflags "-X ..." by the release build; defaults identify a
// development build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
