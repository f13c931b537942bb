// Package version reports the condraw build version.
package version

// Version is the build version, set via ldflags at build time:
//
//	go build -ldflags "-X github.com/negz/condraw/internal/version.Version=v1.0.0"
var Version = "v0.0.0-dev" //nolint:gochecknoglobals // Set by ldflags at build time.

// String returns the program name and version.
func String() string {
	return "condraw " + Version
}
