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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/bstree/bst"
	"github.com/patrickmn/go-cache"
)

var errUnknownCommand = errors.New("unknown command, type help")

// shellModel is the Bubble Tea state of an interactive session over one tree.
// Only Update mutates the tree.
type shellModel[T any] struct {
	tree  *bst.Tree[T]
	parse ParseFunc[T]
	kind  string

	// revision goes up on every successful mutation and keys the render cache
	revision uint64

	input    textinput.Model
	viewport viewport.Model

	renderCache     *cache.Cache
	glamourRenderer *glamour.TermRenderer
	styles          *Styles

	status    string
	statusErr bool
	showHelp  bool

	ready  bool
	width  int
	height int
}

func newShellModel[T any](tree *bst.Tree[T], parse ParseFunc[T], kind string, rc *cache.Cache) shellModel[T] {
	ti := textinput.New()
	ti.Placeholder = "put 10 3 19 14"
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 50

	// Without a renderer the help page falls back to raw markdown
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(72),
	)

	return shellModel[T]{
		tree:            tree,
		parse:           parse,
		kind:            kind,
		input:           ti,
		viewport:        viewport.New(0, 0),
		renderCache:     rc,
		glamourRenderer: glamourRenderer,
		styles:          NewStyles(),
		status:          "Type help to list commands",
	}
}

// Init is called when the program starts
func (m shellModel[T]) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m shellModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.refreshContent()
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			line := m.input.Value()
			m.input.SetValue("")
			result, err := m.execute(line)
			m.setStatus(result, err)
			m.refreshContent()
			return m, nil
		case "ctrl+y":
			items := formatItems(m.tree.Items())
			if err := clipboard.WriteAll(items); err != nil {
				m.setStatus("", fmt.Errorf("failed to copy items: %v", err))
			} else {
				m.setStatus("📋 Copied in-order items to clipboard", nil)
			}
			return m, nil
		case "pgup", "pgdown", "up", "down":
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// execute runs one shell command line against the tree.
func (m *shellModel[T]) execute(line string) (string, error) {
	words, err := splitItems(line)
	if err != nil {
		return "", err
	}
	if len(words) == 0 {
		return "", nil
	}

	m.showHelp = false
	command, args := strings.ToLower(words[0]), words[1:]

	switch command {
	case "put", "insert", "add":
		if len(args) == 0 {
			return "", fmt.Errorf("usage: put <items...>")
		}
		items, err := parseAll(args, m.parse)
		if err != nil {
			return "", err
		}
		for _, item := range items {
			m.tree.PutItem(item)
		}
		m.revision++
		return fmt.Sprintf("Inserted %d item(s)", len(items)), nil

	case "del", "delete", "rm":
		if len(args) == 0 {
			return "", fmt.Errorf("usage: del <items...>")
		}
		items, err := parseAll(args, m.parse)
		if err != nil {
			return "", err
		}
		removed, missing, err := deleteItems(m.tree, items)
		if removed > 0 {
			m.revision++
		}
		if err != nil {
			return "", err
		}
		if len(missing) > 0 {
			return "", fmt.Errorf("deleted %d item(s), not in tree: %s: %w", removed, formatItems(missing), bst.ErrNotFound)
		}
		return fmt.Sprintf("Deleted %d item(s)", removed), nil

	case "find":
		if len(args) != 1 {
			return "", fmt.Errorf("usage: find <item>")
		}
		item, err := m.parse(args[0])
		if err != nil {
			return "", err
		}
		if m.tree.Find(item) {
			return fmt.Sprintf("%v is in the tree", item), nil
		}
		return fmt.Sprintf("%v is not in the tree", item), nil

	case "clear":
		m.tree.Clear()
		m.revision++
		return "Cleared the tree", nil

	case "help":
		m.showHelp = true
		return "Showing help, run any command to return to the tree", nil
	}

	return "", fmt.Errorf("%q: %w", command, errUnknownCommand)
}

func (m *shellModel[T]) setStatus(result string, err error) {
	if err != nil {
		m.status = err.Error()
		m.statusErr = true
		return
	}
	m.status = result
	m.statusErr = false
}

func (m *shellModel[T]) updateLayout() {
	// Title, stats, input box and footer take ten lines
	contentHeight := max(m.height-10, 3)
	m.viewport.Width = max(m.width-4, 10)
	m.viewport.Height = contentHeight
	m.input.Width = max(m.width-8, 10)
}

func (m *shellModel[T]) refreshContent() {
	if m.showHelp {
		m.viewport.SetContent(GetOrRender(m.renderCache, helpCacheKey, m.renderHelp))
		return
	}
	m.viewport.SetContent(GetOrRender(m.renderCache, diagramKey(m.revision), m.renderTree))
}

func (m *shellModel[T]) renderHelp() string {
	if m.glamourRenderer == nil {
		return shellHelp
	}
	rendered, err := m.glamourRenderer.Render(shellHelp)
	if err != nil {
		return shellHelp
	}
	return rendered
}

func (m *shellModel[T]) renderTree() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "items: %d   height: %d   kind: %s\n\n",
		m.tree.GetLength(), m.tree.Height(), m.kind)
	m.tree.Dump(&sb)
	sb.WriteString("\n")
	m.tree.PrintTree(&sb)
	return sb.String()
}

// View renders the UI
func (m shellModel[T]) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	title := m.styles.Title.Render(fmt.Sprintf("🌳 bstree shell (%s)", m.kind))

	treeBox := m.styles.BorderFocused.
		Width(m.width - 2).
		Render(m.viewport.View())

	inputBox := m.styles.BorderFocused.
		Width(m.width-2).
		Padding(0, 1).
		Render(m.styles.InputPrompt.Render("> ") + m.input.View())

	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		treeBox,
		inputBox,
		status,
		m.renderFooter(),
	)
}

func (m shellModel[T]) renderFooter() string {
	keys := []struct{ key, desc string }{
		{"enter", "run"},
		{"ctrl+y", "copy items"},
		{"pgup/pgdown", "scroll"},
		{"esc", "quit"},
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, m.styles.HelpKey.Render(k.key)+" "+m.styles.HelpDesc.Render(k.desc))
	}
	return strings.Join(parts, m.styles.HelpDesc.Render(" • "))
}

// formatItems joins items with spaces, the same way PrintTree does.
func formatItems[T any](items []T) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprint(item))
	}
	return strings.Join(parts, " ")
}

// runShell starts the interactive shell over tree
func runShell[T any](tree *bst.Tree[T], parse ParseFunc[T], kind string, rc *cache.Cache) error {
	p := tea.NewProgram(newShellModel(tree, parse, kind, rc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
