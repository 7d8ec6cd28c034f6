// Copyright (c) 2025-2026 Wolv Events
// SPDX-License-Identifier: GPL-3.0-or-later

package version

import (
	"strings"
	"testing"
)

func TestStringIncludesAllFields(t *testing.T) {
	s := String()

	for _, part := range []string{Version, GitCommit, BuildTime} {
		if !strings.Contains(s, part) {
			t.Errorf("String() = %q, missing %q", s, part)
		}
	}
}

func TestDefaultsBeforeInjection(t *testing.T) {
	if Version == "" || GitCommit == "" || BuildTime == "" {
		t.Error("build info defaults must be non-empty")
	}
}
