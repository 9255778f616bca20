package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set during build time
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// BuildInfo contains build and runtime information
type BuildInfo struct {
	Version   string
	SemVer    string
	BuildDate string
	GitCommit string

	GoVersion string
	Platform  string

	// Module version recorded by the toolchain, when built with go install
	ModuleVersion string
	BuildDeps     []Module
}

// Module represents a Go module dependency
type Module struct {
	Path    string
	Version string
}

// GetBuildInfo returns build information for the running binary
func GetBuildInfo() BuildInfo {
	info := BuildInfo{
		Version:   Version,
		SemVer:    strings.Split(Version, "-")[0],
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		info.ModuleVersion = buildInfo.Main.Version
		for _, dep := range buildInfo.Deps {
			info.BuildDeps = append(info.BuildDeps, Module{
				Path:    dep.Path,
				Version: dep.Version,
			})
		}
	}

	return info
}
