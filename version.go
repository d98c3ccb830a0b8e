package zerotrust

import (
	"runtime"
	"strings"
)

// Version is the semantic version of the framework.
const Version = "0.1.0-dev"

// Package metadata.
const (
	Name              = "zero-trust-ai"
	Description       = "Open-source framework for building secure AI agents with zero-trust principles"
	Author            = "Zero-Trust AI Contributors"
	License           = "Apache-2.0"
	Homepage          = "https://zero-trust.ai"
	Documentation     = "https://zero-trust.ai/docs"
	Source            = "https://github.com/zero-trust-ai/framework"
	Tracker           = "https://github.com/zero-trust-ai/framework/issues"
	DevelopmentStatus = "2 - Pre-Alpha"
)

var (
	// GitCommit is the git commit hash (set by build flags)
	GitCommit = "unknown"
	// BuildDate is the build timestamp (set by build flags)
	BuildDate = "unknown"
)

// Keywords returns the topics the project is filed under.
func Keywords() []string {
	return []string{
		"ai-security",
		"zero-trust",
		"llm-security",
		"agent-security",
		"prompt-injection",
		"mcp-security",
		"artificial-intelligence",
		"security-framework",
	}
}

// BuildInfo describes the running build.
type BuildInfo struct {
	Name      string `json:"name" yaml:"name"`
	Version   string `json:"version" yaml:"version"`
	GitCommit string `json:"git_commit" yaml:"git_commit"`
	BuildDate string `json:"build_date" yaml:"build_date"`
	GoVersion string `json:"go_version" yaml:"go_version"`
	Platform  string `json:"platform" yaml:"platform"`
	Status    string `json:"status" yaml:"status"`
}

// Info returns the build information for the current binary.
func Info() BuildInfo {
	return BuildInfo{
		Name:      Name,
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		Status:    DevelopmentStatus,
	}
}

// IsPrerelease reports whether Version carries a pre-release suffix
// such as "-dev" or "-rc.1".
func IsPrerelease() bool {
	core, _, _ := strings.Cut(Version, "+")
	return strings.Contains(core, "-")
}
