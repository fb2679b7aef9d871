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

// Node holds one item and owns its two subtrees.
type Node[T any] struct {
	item  T
	left  *Node[T]
	right *Node[T]
}

// Item returns the value stored in the node.
func (n *Node[T]) Item() T {
	return n.item
}

func (n *Node[T]) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// rightmost follows right links until there are none left.
func rightmost[T any](n *Node[T]) *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func leftmost[T any](n *Node[T]) *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func countNodes[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + countNodes(n.left) + countNodes(n.right)
}

func height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	return max(height(n.left), height(n.right)) + 1
}
