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

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestSplitItems(t *testing.T) {
	cases := []struct {
		input    string
		expected []string
	}{
		{"10 3 19 14", []string{"10", "3", "19", "14"}},
		{"pear 'passion fruit' apple", []string{"pear", "passion fruit", "apple"}},
		{`"new york"   paris`, []string{"new york", "paris"}},
		{"", []string{}},
	}

	for _, c := range cases {
		got, err := splitItems(c.input)
		if err != nil {
			t.Errorf("splitItems(%q) returned error: %v", c.input, err)
			continue
		}
		if !slices.Equal(got, c.expected) {
			t.Errorf("splitItems(%q) = %q; want %q", c.input, got, c.expected)
		}
	}

	if _, err := splitItems("'unterminated"); err == nil {
		t.Errorf("splitItems with an unterminated quote returned no error")
	}
}

func TestParsers(t *testing.T) {
	if v, err := parseInt("-42"); err != nil || v != -42 {
		t.Errorf("parseInt(%q) = %d, %v; want -42, nil", "-42", v, err)
	}
	if _, err := parseInt("4.2"); err == nil || !strings.Contains(err.Error(), `"4.2"`) {
		t.Errorf("parseInt(%q) error = %v; want one naming the token", "4.2", err)
	}
	if v, err := parseFloat("2.5e1"); err != nil || v != 25 {
		t.Errorf("parseFloat(%q) = %v, %v; want 25, nil", "2.5e1", v, err)
	}
	if _, err := parseFloat("abc"); err == nil {
		t.Errorf("parseFloat(%q) returned no error", "abc")
	}
	if v, _ := parseString(" keep "); v != " keep " {
		t.Errorf("parseString changed its input to %q", v)
	}
}

func TestParseAllIsAllOrNothing(t *testing.T) {
	items, err := parseAll[int]([]string{"1", "two", "3"}, parseInt)
	if err == nil {
		t.Fatalf("parseAll returned %v and no error", items)
	}
	if items != nil {
		t.Errorf("parseAll returned partial items %v", items)
	}
}

func TestReadItemsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	contents := "# demo tree\n10 3\n\n   \n19\n# trailing comment\n'14'\n"
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("failed to write items file: %v", err)
	}

	got, err := readItemsFile(path)
	if err != nil {
		t.Fatalf("readItemsFile returned error: %v", err)
	}
	if want := []string{"10", "3", "19", "14"}; !slices.Equal(got, want) {
		t.Errorf("readItemsFile() = %q; want %q", got, want)
	}

	if _, err := readItemsFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Errorf("readItemsFile on a missing file returned no error")
	}
}

func TestCollectTokensOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.txt")
	if err := os.WriteFile(path, []byte("c\n"), 0644); err != nil {
		t.Fatalf("failed to write items file: %v", err)
	}

	got, err := collectTokens([]string{"a"}, "'b b'", path)
	if err != nil {
		t.Fatalf("collectTokens returned error: %v", err)
	}
	if want := []string{"a", "b b", "c"}; !slices.Equal(got, want) {
		t.Errorf("collectTokens() = %q; want %q", got, want)
	}
}
