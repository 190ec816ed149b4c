package app

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit are set via ldflags, e.g.
// go build -ldflags "-X github.com/fablecraft/fablecraft-backend/internal/app.Version=1.0.0"
var (
	Version = "dev"
	Commit  = ""
)

// BuildVersion returns the version string used in startup logs and the
// health endpoint. When no commit was injected it falls back to the VCS
// revision recorded in build info, if any.
func BuildVersion() string {
	commit := Commit
	if commit == "" {
		commit = vcsRevision()
	}
	if commit == "" {
		return Version
	}
	return fmt.Sprintf("%s (%s)", Version, commit)
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && len(s.Value) >= 12 {
			return s.Value[:12]
		}
	}
	return ""
}
