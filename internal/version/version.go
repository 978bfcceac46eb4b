// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package version reports the fireodm build and stamps generated files with it.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// These variables are set at build time using ldflags.
var (
	// Version is the semantic version (e.g., "0.1.0", "0.1.0-alpha.1").
	Version = "dev"
	// Commit is the git commit SHA.
	Commit = "none"
	// Date is the build date in RFC3339 format.
	Date = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		fromBuildInfo(info)
	}
}

// fromBuildInfo fills values not set via ldflags, e.g. after
// "go install module@version".
func fromBuildInfo(info *debug.BuildInfo) {
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			if Commit == "none" && len(setting.Value) >= 7 {
				Commit = setting.Value[:7]
			}
		case "vcs.time":
			if Date == "unknown" {
				Date = setting.Value
			}
		}
	}
}

// Info returns formatted version information.
func Info() string {
	return fmt.Sprintf("fireodm version %s (commit: %s, built: %s, go: %s)",
		Version, Commit, Date, runtime.Version())
}

// Short returns just the version string.
func Short() string {
	return Version
}

// Generated returns the "Code generated" marker for a generated file, without
// comment delimiters. schemaVersion may be empty for schema-independent files.
func Generated(schemaVersion string) string {
	if schemaVersion == "" {
		return fmt.Sprintf("Code generated by fireodm %s. DO NOT EDIT.", Version)
	}
	return fmt.Sprintf("Code generated by fireodm %s from schema version %s. DO NOT EDIT.", Version, schemaVersion)
}
