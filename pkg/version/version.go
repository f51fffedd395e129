// Package version exposes build metadata injected at link time, e.g.
// -ldflags "-X go-staffhub/pkg/version.Version=1.2.3".
package version

import "fmt"

var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// GetVersionString renders "version (shortcommit)" for the startup banner,
// the OpenAPI info block and the health endpoint.
func GetVersionString() string {
	if GitCommit == "unknown" {
		return Version
	}

	commit := GitCommit
	if len(commit) > 7 {
		commit = commit[:7]
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}
