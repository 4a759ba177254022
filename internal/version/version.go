// Package version holds build information for clipver.
package version

import "runtime/debug"

// Set with -ldflags "-X github.com/clipflowpro/clipver/internal/version.Version=...".
var (
	Version  = "0.0.0-dev"
	Revision = ""
)

func init() {
	if Revision != "" {
		return
	}

	Revision = "unknown"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			Revision = s.Value
		}
	}
}

// String returns the version and revision as a single string.
func String() string {
	return Version + "+" + Revision
}
