// Build information is injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/nobletooth/dlist/pkg/utils.Version=v0.3.1 \
//	  -X github.com/nobletooth/dlist/pkg/utils.TestMode=false" ./cmd/dlist
//
// CAUTION: This file shouldn't be removed or else the ldflags would have nothing to set.

package utils

import (
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/mod/semver"
)

// devVersion is reported by builds that didn't inject a version.
const devVersion = "v0.0.0-dev"

var (
	TestMode   string // Should be true when running tests.
	IsTestMode bool
	Version    string
	Commit     string
	BuildTime  string
	StartTime  time.Time
)

func init() {
	StartTime = time.Now()

	// If build info is not set, make that clear.
	if Version == "" {
		Version = devVersion
	} else if !semver.IsValid(Version) {
		slog.Warn("Injected version is not a semantic version.", "version", Version)
	}
	if Commit == "" {
		Commit = "unknown"
	}
	if BuildTime == "" {
		BuildTime = "unknown"
	}
	if len(TestMode) > 0 {
		if isTestMode, err := strconv.ParseBool(TestMode); err == nil {
			IsTestMode = isTestMode
		} else {
			slog.Warn("Failed to parse TestMode build flag, defaulting to false", "error", err)
		}
	}
}

// Uptime returns how long the process has been running.
func Uptime() time.Duration {
	return time.Since(StartTime)
}
