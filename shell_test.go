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
	"errors"
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cybrota/bstree/bst"
)

type ShellTestCase struct {
	Name             string
	Commands         []string
	ExpectedOrder    []int
	ExpectedRevision uint64
	LastResult       string
	LastErr          error // checked with errors.Is when set
	LastFails        bool
}

func TestShellExecute(t *testing.T) {
	testCases := []ShellTestCase{
		{
			Name:             "Put Then Delete Root",
			Commands:         []string{"put 10 3 19 14", "del 10"},
			ExpectedOrder:    []int{3, 14, 19},
			ExpectedRevision: 2,
			LastResult:       "Deleted 1 item(s)",
		},
		{
			Name:             "Find Does Not Mutate",
			Commands:         []string{"put 4", "find 4"},
			ExpectedOrder:    []int{4},
			ExpectedRevision: 1,
			LastResult:       "4 is in the tree",
		},
		{
			Name:             "Find Missing",
			Commands:         []string{"find 9"},
			ExpectedOrder:    []int{},
			ExpectedRevision: 0,
			LastResult:       "9 is not in the tree",
		},
		{
			Name:             "Delete Missing Reports Not Found",
			Commands:         []string{"put 1 2", "del 2 5"},
			ExpectedOrder:    []int{1},
			ExpectedRevision: 2,
			LastErr:          bst.ErrNotFound,
		},
		{
			Name:             "Delete Only Missing Keeps Revision",
			Commands:         []string{"put 1", "del 5"},
			ExpectedOrder:    []int{1},
			ExpectedRevision: 1,
			LastErr:          bst.ErrNotFound,
		},
		{
			Name:             "Bad Item Is Rejected Whole",
			Commands:         []string{"put 1 two 3"},
			ExpectedOrder:    []int{},
			ExpectedRevision: 0,
			LastFails:        true,
		},
		{
			Name:             "Clear",
			Commands:         []string{"put 5 6 7", "clear"},
			ExpectedOrder:    []int{},
			ExpectedRevision: 2,
			LastResult:       "Cleared the tree",
		},
		{
			Name:             "Unknown Command",
			Commands:         []string{"grow 3"},
			ExpectedOrder:    []int{},
			ExpectedRevision: 0,
			LastErr:          errUnknownCommand,
		},
		{
			Name:             "Blank Line Is Ignored",
			Commands:         []string{"   "},
			ExpectedOrder:    []int{},
			ExpectedRevision: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			m := newShellModel(bst.New[int](), parseInt, KindInt, NewRenderCache())

			var result string
			var err error
			for _, line := range tc.Commands {
				result, err = m.execute(line)
			}

			switch {
			case tc.LastErr != nil:
				if !errors.Is(err, tc.LastErr) {
					t.Errorf("last error = %v; want %v", err, tc.LastErr)
				}
			case tc.LastFails:
				if err == nil {
					t.Errorf("last command returned no error")
				}
			default:
				if err != nil {
					t.Errorf("last command returned error: %v", err)
				}
				if result != tc.LastResult {
					t.Errorf("last result = %q; want %q", result, tc.LastResult)
				}
			}

			if got := m.tree.Items(); !slices.Equal(got, tc.ExpectedOrder) {
				t.Errorf("Items() = %v; want %v", got, tc.ExpectedOrder)
			}
			if m.revision != tc.ExpectedRevision {
				t.Errorf("revision = %d; want %d", m.revision, tc.ExpectedRevision)
			}
		})
	}
}

func TestShellUpdateAndView(t *testing.T) {
	var model tea.Model = newShellModel(bst.New[int](), parseInt, KindInt, NewRenderCache())

	if got := model.View(); got != "Initializing..." {
		t.Errorf("View() before sizing = %q; want %q", got, "Initializing...")
	}

	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	m := model.(shellModel[int])
	m.input.SetValue("put 10 3 19 14")
	model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m = model.(shellModel[int])
	if got := m.tree.GetLength(); got != 4 {
		t.Fatalf("GetLength() = %d after enter; want 4", got)
	}
	if m.input.Value() != "" {
		t.Errorf("input not cleared after enter: %q", m.input.Value())
	}

	view := m.View()
	for _, want := range []string{"Tree contents: 3 10 14 19", "items: 4", "Inserted 4 item(s)"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestShellRenderIsCachedPerRevision(t *testing.T) {
	rc := NewRenderCache()
	m := newShellModel(bst.New[int](), parseInt, KindInt, rc)

	if _, err := m.execute("put 1"); err != nil {
		t.Fatalf("execute returned error: %v", err)
	}
	m.refreshContent()

	cached, ok := GetRender(rc, diagramKey(m.revision))
	if !ok {
		t.Fatalf("diagram for revision %d was not cached", m.revision)
	}
	if !strings.Contains(cached, "Tree contents: 1") {
		t.Errorf("cached diagram %q does not show the tree", cached)
	}
}

func TestFormatItems(t *testing.T) {
	if got := formatItems([]float64{1.5, 2, -3}); got != "1.5 2 -3" {
		t.Errorf("formatItems() = %q; want %q", got, "1.5 2 -3")
	}
	if got := formatItems([]string{}); got != "" {
		t.Errorf("formatItems(empty) = %q; want empty", got)
	}
}
