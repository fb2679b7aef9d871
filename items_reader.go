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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Item kinds a tree can be built over
const (
	KindInt    = "int"
	KindFloat  = "float"
	KindString = "string"
)

var itemKinds = map[string]struct{}{
	KindInt:    {},
	KindFloat:  {},
	KindString: {},
}

// ParseFunc turns one raw token into a tree item.
type ParseFunc[T any] func(token string) (T, error)

func parseInt(token string) (int, error) {
	v, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("invalid int item %q", token)
	}
	return v, nil
}

func parseFloat(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float item %q", token)
	}
	return v, nil
}

func parseString(token string) (string, error) {
	return token, nil
}

// parseAll parses every token or none of them.
func parseAll[T any](tokens []string, parse ParseFunc[T]) ([]T, error) {
	items := make([]T, 0, len(tokens))
	for _, token := range tokens {
		item, err := parse(token)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// splitItems splits a line into item tokens using shell quoting rules, so
// 'new york' stays a single item.
func splitItems(line string) ([]string, error) {
	tokens, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse items %q: %v", line, err)
	}
	return tokens, nil
}

// readItemsFile reads item tokens from a file. Blank lines and lines starting
// with '#' are skipped; any other line may hold several items.
func readItemsFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("items file %s not found", path)
		}
		return nil, err
	}
	defer file.Close()

	var tokens []string
	scanner := bufio.NewScanner(file)
	// Allow long lines of items
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts, err := splitItems(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %v", path, lineNo, err)
		}
		tokens = append(tokens, parts...)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

// collectTokens gathers tokens from positional args, an inline --items string
// and an optional file, in that order.
func collectTokens(args []string, inline string, path string) ([]string, error) {
	tokens := append([]string{}, args...)

	if inline != "" {
		parts, err := splitItems(inline)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, parts...)
	}

	if path != "" {
		parts, err := readItemsFile(path)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, parts...)
	}

	return tokens, nil
}
