// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

func TestFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     stamp
	}{
		{
			name: "clean",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
				{Key: "vcs.time", Value: "2026-03-01T10:00:00Z"},
			},
			want: stamp{commit: "0123456", time: "2026-03-01T10:00:00Z"},
		},
		{
			name: "dirty",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
				{Key: "vcs.modified", Value: "true"},
			},
			want: stamp{commit: "abc", dirty: true, time: "unknown"},
		},
		{
			name:     "no vcs",
			settings: []debug.BuildSetting{{Key: "-compiler", Value: "gc"}},
			want:     stamp{commit: "unknown", time: "unknown"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fromSettings(stamp{commit: "unknown", time: "unknown"}, tt.settings)
			if got != tt.want {
				t.Errorf("fromSettings() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, Version+" (") {
		t.Errorf("Info() = %q, want prefix %q", info, Version+" (")
	}
	if !strings.Contains(info, Commit()) {
		t.Errorf("Info() = %q does not mention commit %q", info, Commit())
	}
	if Short() != Version {
		t.Errorf("Short() = %q, want %q", Short(), Version)
	}
	full := Full()
	if !strings.HasPrefix(full, info) || !strings.Contains(full, runtime.Version()) {
		t.Errorf("Full() = %q", full)
	}
}
