// Package version holds build metadata set with -ldflags -X.
package version

import "fmt"

var (
	Version   = "0.1.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// String returns the version line printed by --version.
func String() string {
	return fmt.Sprintf("mdtoc %s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
