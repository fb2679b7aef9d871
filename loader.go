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
	"io"
	"log"
	"os"

	"github.com/cybrota/bstree/bst"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

type loadOptions struct {
	ShowProgress      bool
	ProgressThreshold int
	BloomFilterSize   uint
	BloomFilterHashes uint
	WarnDuplicates    bool
	ProgressWriter    io.Writer
}

type loadStats struct {
	Inserted   int
	Duplicates int
}

func loadOptionsFromConfig(config *Config) loadOptions {
	return loadOptions{
		ShowProgress:      config.Display.ShowProgress,
		ProgressThreshold: config.Loader.ProgressThreshold,
		BloomFilterSize:   config.Loader.BloomFilterSize,
		BloomFilterHashes: config.Loader.BloomFilterHashes,
		WarnDuplicates:    config.Loader.WarnDuplicates,
		ProgressWriter:    os.Stderr,
	}
}

// loadItems parses tokens and inserts them into tree. Nothing is inserted
// unless every token parses.
//
// Duplicates are still inserted. A bloom filter keeps the common case of a
// fresh item from paying for a Find, which is linear on a degenerate tree.
func loadItems[T any](tree *bst.Tree[T], tokens []string, parse ParseFunc[T], opts loadOptions) (loadStats, error) {
	items, err := parseAll(tokens, parse)
	if err != nil {
		return loadStats{}, err
	}

	filter := bloom.New(opts.BloomFilterSize, opts.BloomFilterHashes)
	for item := range tree.All() {
		filter.AddString(fmt.Sprint(item))
	}

	var bar *progressbar.ProgressBar
	if opts.ShowProgress && len(items) >= opts.ProgressThreshold {
		w := opts.ProgressWriter
		if w == nil {
			w = os.Stderr
		}
		bar = progressbar.NewOptions(len(items),
			progressbar.OptionSetWriter(w),
			progressbar.OptionSetDescription("🌳 Inserting items..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(w)
			}),
		)
	}

	var stats loadStats
	for _, item := range items {
		key := fmt.Sprint(item)
		if filter.TestString(key) && tree.Find(item) {
			stats.Duplicates++
			if opts.WarnDuplicates {
				log.Printf("Duplicate item %v placed to the right of its equal", item)
			}
		}
		filter.AddString(key)

		tree.PutItem(item)
		stats.Inserted++

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return stats, nil
}

// deleteItems removes one node per item and reports the items that were not
// in the tree.
func deleteItems[T any](tree *bst.Tree[T], items []T) (int, []T, error) {
	removed := 0
	var missing []T
	for _, item := range items {
		err := tree.DeleteItem(item)
		switch {
		case err == nil:
			removed++
		case errors.Is(err, bst.ErrNotFound):
			missing = append(missing, item)
		default:
			return removed, missing, fmt.Errorf("failed to delete %v: %w", item, err)
		}
	}
	return removed, missing, nil
}
