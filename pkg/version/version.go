// Package version reports the build version, from ldflags when set and
// from the embedded build info otherwise.
package version

import (
	"runtime"
	"runtime/debug"
	"strings"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	GitTag    string
	GitBranch string
)

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func Version() string {
	if GitTag != "" {
		return GitTag
	}
	if GitBranch != "" {
		return GitBranch
	}
	// Fall back to vcs.revision from build info
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				return s.Value[:12]
			}
		}
	}
	return "dev"
}

// String returns a multi-line version report for the named executable
func String(execName string) string {
	var b strings.Builder
	b.WriteString(execName + " " + Version() + "\n")
	b.WriteString("  compiler: " + runtime.Version() + "\n")

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Path != "" {
			b.WriteString("  source: " + info.Main.Path + "\n")
		}
		var goos, goarch string
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.time":
				if s.Value != "" {
					b.WriteString("  build_time: " + s.Value + "\n")
				}
			case "GOOS":
				goos = s.Value
			case "GOARCH":
				goarch = s.Value
			}
		}
		if goos != "" && goarch != "" {
			b.WriteString("  platform: " + goos + "/" + goarch + "\n")
		}
	}

	return b.String()
}
