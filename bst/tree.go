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

// Package bst implements an unbalanced binary search tree that is generic over
// its item type.
//
// Items smaller than a node go to its left subtree and everything else,
// equal items included, goes to its right subtree. There is no rebalancing, so
// inserting sorted input degrades the tree into a list. A Tree is not safe for
// concurrent use.
package bst

import (
	"cmp"
	"errors"
	"iter"
)

// ErrNotFound is returned by DeleteItem when no node holds the item.
var ErrNotFound = errors.New("bst: item not found")

// Tree is a binary search tree of T ordered by its compare function.
type Tree[T any] struct {
	root    *Node[T]
	compare func(a, b T) int
}

// New returns an empty tree for types that support the < operator.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	if compare == nil {
		panic("bst: nil compare func")
	}
	return &Tree[T]{compare: compare}
}

// PutItem inserts item into the tree. Duplicates are accepted and placed in
// the right subtree of their equal.
func (t *Tree[T]) PutItem(item T) {
	t.root = t.insertRecursive(t.root, item)
}

func (t *Tree[T]) insertRecursive(node *Node[T], item T) *Node[T] {
	if node == nil {
		return &Node[T]{item: item}
	}

	if t.compare(item, node.item) < 0 {
		node.left = t.insertRecursive(node.left, item)
	} else {
		node.right = t.insertRecursive(node.right, item)
	}
	return node
}

// DeleteItem removes one node holding item. If item is not in the tree the
// tree is left untouched and ErrNotFound is returned.
func (t *Tree[T]) DeleteItem(item T) error {
	root, err := t.deleteRecursive(t.root, item)
	if err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Tree[T]) deleteRecursive(node *Node[T], item T) (*Node[T], error) {
	if node == nil {
		return nil, ErrNotFound
	}

	var err error
	switch c := t.compare(item, node.item); {
	case c < 0:
		node.left, err = t.deleteRecursive(node.left, item)
	case c > 0:
		node.right, err = t.deleteRecursive(node.right, item)
	default:
		return t.deleteNode(node), nil
	}
	return node, err
}

// deleteNode unlinks node and returns whatever must take its slot in the
// parent.
func (t *Tree[T]) deleteNode(node *Node[T]) *Node[T] {
	// Case 1: No children
	if node.isLeaf() {
		return nil
	}
	// Case 2: Only a right child
	if node.left == nil {
		return node.right
	}
	// Case 3: Only a left child
	if node.right == nil {
		return node.left
	}

	// Case 4: Two children. Take the value of the largest node on the left.
	// If that value occurs twice on the left, moving one copy up would leave
	// its twin in the left subtree of an equal item, so the smallest node on
	// the right is used instead.
	var replacement *Node[T]
	if t.maxIsDuplicated(node.left) {
		node.right, replacement = detachMin(node.right)
	} else {
		node.left, replacement = detachMax(node.left)
	}
	node.item = replacement.item
	return node
}

// detachMax unlinks the rightmost node of the subtree rooted at n. It returns
// the new subtree root and the detached node.
func detachMax[T any](n *Node[T]) (*Node[T], *Node[T]) {
	if n.right == nil {
		rest := n.left
		n.left = nil
		return rest, n
	}

	var detached *Node[T]
	n.right, detached = detachMax(n.right)
	return n, detached
}

func detachMin[T any](n *Node[T]) (*Node[T], *Node[T]) {
	if n.left == nil {
		rest := n.right
		n.right = nil
		return rest, n
	}

	var detached *Node[T]
	n.left, detached = detachMin(n.left)
	return n, detached
}

// maxIsDuplicated reports whether the largest item below n occurs more than
// once. Equal items sit next to each other in order, so it is enough to look
// at the in-order neighbour of the rightmost node.
func (t *Tree[T]) maxIsDuplicated(n *Node[T]) bool {
	var parent *Node[T]
	for n.right != nil {
		parent, n = n, n.right
	}

	if n.left != nil {
		return t.compare(rightmost(n.left).item, n.item) == 0
	}
	return parent != nil && t.compare(parent.item, n.item) == 0
}

// Find reports whether item is in the tree.
func (t *Tree[T]) Find(item T) bool {
	return t.search(t.root, item) != nil
}

func (t *Tree[T]) search(node *Node[T], item T) *Node[T] {
	if node == nil {
		return nil
	}

	switch c := t.compare(item, node.item); {
	case c < 0:
		return t.search(node.left, item)
	case c > 0:
		return t.search(node.right, item)
	default:
		return node
	}
}

// GetLength counts the nodes in the tree. The count is not cached, so every
// call walks the whole tree.
func (t *Tree[T]) GetLength() int {
	return countNodes(t.root)
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

// Min returns the smallest item, or false when the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return leftmost(t.root).item, true
}

// Max returns the largest item, or false when the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	if t.root == nil {
		var zero T
		return zero, false
	}
	return rightmost(t.root).item, true
}

// Clear drops every node in the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// All returns the items in ascending order. Every call to the returned
// sequence walks the tree from the root again.
func (t *Tree[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[T any](node *Node[T], yield func(T) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.left, yield) && yield(node.item) && inOrder(node.right, yield)
}

// Items collects the in-order traversal into a slice.
func (t *Tree[T]) Items() []T {
	items := []T{}
	for item := range t.All() {
		items = append(items, item)
	}
	return items
}
