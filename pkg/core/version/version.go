// ============================================================================
// Bologna - Kaleidoscope front end
// ============================================================================
//
// Package:     version
// Description: Central version information for the CLI and the service
// Author:      msto63
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Bologna is the language front end version
	Bologna = "0.1.0"

	// Protocol is the version of the websocket message envelope
	Protocol = "1"
)

// Build information, set via -ldflags at build time
var (
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info bundles version and runtime details
type Info struct {
	Version   string `json:"version"`
	Protocol  string `json:"protocol"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the version information of the running binary
func Get() Info {
	return Info{
		Version:   Bologna,
		Protocol:  Protocol,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// Banner returns the greeting printed when the REPL starts
func Banner() string {
	return "Bologna v" + Bologna
}
