// Package version provides version information for the ttlcache binary.
// These variables are set via ldflags during the build process.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is set via -ldflags "-X github.com/krisalay/ttl-cache/version.Version=..."
	Version = "dev"
	// GitCommit is set via -ldflags "-X github.com/krisalay/ttl-cache/version.GitCommit=..."
	GitCommit = "unknown"
	// BuildDate is set via -ldflags "-X github.com/krisalay/ttl-cache/version.BuildDate=..."
	BuildDate = "unknown"
)

// Get returns the overall codebase version.
func Get() string {
	return fmt.Sprintf(`version     : %s
git commit  : %s
build date  : %s
go version  : %s
platform    : %s/%s`, Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
