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
	"fmt"
	"io"
	"log"

	"github.com/cybrota/bstree/bst"
)

type buildOptions struct {
	Args        []string
	Items       string
	File        string
	Delete      string
	ShowDiagram bool
	Load        loadOptions
	Out         io.Writer
}

// buildTree loads every item, applies the deletes and prints a summary.
// Deleting an item that is not in the tree is only a warning.
func buildTree[T any](tree *bst.Tree[T], parse ParseFunc[T], opts buildOptions) error {
	tokens, err := collectTokens(opts.Args, opts.Items, opts.File)
	if err != nil {
		return err
	}

	// Parse deletes up front so a typo does not leave a half-applied run
	var toDelete []T
	if opts.Delete != "" {
		deleteTokens, err := splitItems(opts.Delete)
		if err != nil {
			return err
		}
		toDelete, err = parseAll(deleteTokens, parse)
		if err != nil {
			return err
		}
	}

	stats, err := loadItems(tree, tokens, parse, opts.Load)
	if err != nil {
		return err
	}

	removed, missing, err := deleteItems(tree, toDelete)
	if err != nil {
		return err
	}
	for _, item := range missing {
		log.Printf("Cannot delete %v: %v", item, bst.ErrNotFound)
	}

	fmt.Fprintf(opts.Out, "Inserted: %d (duplicates: %d)  Deleted: %d\n", stats.Inserted, stats.Duplicates, removed)
	printTree(opts.Out, tree, opts.ShowDiagram)
	return nil
}

func printTree[T any](w io.Writer, tree *bst.Tree[T], showDiagram bool) {
	fmt.Fprintf(w, "Length: %d\n", tree.GetLength())
	fmt.Fprintf(w, "Height: %d\n", tree.Height())
	tree.PrintTree(w)
	if showDiagram {
		fmt.Fprintln(w)
		tree.Dump(w)
	}
}

// runDemo builds the classic four item tree and removes its root.
func runDemo(w io.Writer) {
	fmt.Fprintln(w, "I'm a tree")

	tree := bst.New[int]()
	for _, item := range []int{10, 3, 19, 14} {
		tree.PutItem(item)
	}
	printTree(w, tree, true)

	fmt.Fprintf(w, "\n%sDeleting 10%s\n", Info, Reset)
	if err := tree.DeleteItem(10); err != nil {
		log.Printf("Cannot delete 10: %v", err)
	}
	printTree(w, tree, true)
}
