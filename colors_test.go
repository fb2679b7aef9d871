// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import "testing"

func TestGetANSIColorsRespectsNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	success, info, warning, errColor, reset := GetANSIColors()
	for _, code := range []string{success, info, warning, errColor, reset} {
		if code != "" {
			t.Errorf("GetANSIColors() returned %q with NO_COLOR set", code)
		}
	}
}

func TestDetectTerminalMode(t *testing.T) {
	cases := []struct {
		colorfgbg string
		theme     string
		expected  TerminalMode
	}{
		{"15;0", "", TerminalModeDark},
		{"0;15", "", TerminalModeLight},
		{"", "Solarized Light", TerminalModeLight},
		{"", "", TerminalModeDark},
	}

	for _, c := range cases {
		t.Setenv("COLORFGBG", c.colorfgbg)
		t.Setenv("TERM_THEME", c.theme)
		t.Setenv("THEME", "")
		if got := detectTerminalMode(); got != c.expected {
			t.Errorf("detectTerminalMode() with COLORFGBG=%q TERM_THEME=%q = %d; want %d",
				c.colorfgbg, c.theme, got, c.expected)
		}
	}
}
