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

package bst

import (
	"fmt"
	"io"
)

// PrintTree writes the items in ascending order on a single line.
func (t *Tree[T]) PrintTree(w io.Writer) {
	fmt.Fprint(w, "Tree contents:")
	for item := range t.All() {
		fmt.Fprintf(w, " %v", item)
	}
	fmt.Fprintln(w)
}

// Dump writes the shape of the tree, one node per line. Children are labelled
// L or R so that a lone child shows which side it hangs from.
//
//	10
//	├── L: 3
//	└── R: 19
//	    └── L: 14
func (t *Tree[T]) Dump(w io.Writer) {
	if t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	fmt.Fprintf(w, "%v\n", t.root.item)
	dumpChildren(w, t.root, "")
}

func dumpChildren[T any](w io.Writer, node *Node[T], prefix string) {
	var labels []string
	var children []*Node[T]
	if node.left != nil {
		labels, children = append(labels, "L"), append(children, node.left)
	}
	if node.right != nil {
		labels, children = append(labels, "R"), append(children, node.right)
	}

	for i, child := range children {
		connector, indent := "├── ", "│   "
		if i == len(children)-1 {
			connector, indent = "└── ", "    "
		}
		fmt.Fprintf(w, "%s%s%s: %v\n", prefix, connector, labels[i], child.item)
		dumpChildren(w, child, prefix+indent)
	}
}
