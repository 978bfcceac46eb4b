// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func restore(t *testing.T) {
	t.Helper()
	v, c, d := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = v, c, d })
}

func TestFromBuildInfo(t *testing.T) {
	restore(t)
	Version, Commit, Date = "dev", "none", "unknown"

	fromBuildInfo(&debug.BuildInfo{
		Main: debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-01-02T03:04:05Z"},
		},
	})

	assert.Equal(t, "v1.2.3", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2026-01-02T03:04:05Z", Date)
}

func TestFromBuildInfo_KeepsLdflags(t *testing.T) {
	restore(t)
	Version, Commit, Date = "0.4.0", "abcdef0", "2026-05-01"

	fromBuildInfo(&debug.BuildInfo{
		Main:     debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "0123456789abcdef"}},
	})

	assert.Equal(t, "0.4.0", Version)
	assert.Equal(t, "abcdef0", Commit)
	assert.Equal(t, "2026-05-01", Date)
}

func TestGenerated(t *testing.T) {
	restore(t)
	Version = "0.4.0"

	assert.Equal(t, "Code generated by fireodm 0.4.0. DO NOT EDIT.", Generated(""))
	assert.Equal(t, "Code generated by fireodm 0.4.0 from schema version 2.0.0. DO NOT EDIT.", Generated("2.0.0"))
	assert.Contains(t, Info(), "fireodm version 0.4.0")
}
