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

// Package avl implements a height-balanced binary search tree over integer
// keys. Every insertion records the rotations it performed in a change log
// that callers drain after the call.
package avl

import "fmt"

// Node is a single tree element. A node owns its children exclusively; there
// are no parent pointers.
type Node struct {
	Key   int
	Left  *Node
	Right *Node

	height int // leaf = 1
}

func newLeaf(key int) *Node {
	return &Node{Key: key, height: 1}
}

// Height returns the cached height of the subtree rooted at n. The empty
// subtree has height 0.
func Height(n *Node) int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor returns Height(n.Right) - Height(n.Left), or 0 for nil.
func BalanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return Height(n.Right) - Height(n.Left)
}

// Height is the nil-safe method form of Height.
func (n *Node) Height() int {
	return Height(n)
}

// BalanceFactor is the nil-safe method form of BalanceFactor.
func (n *Node) BalanceFactor() int {
	return BalanceFactor(n)
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n != nil && n.Left == nil && n.Right == nil
}

// recomputeHeight must run before n's balance factor is read and before n is
// handed back as a subtree root.
func recomputeHeight(n *Node) {
	n.height = 1 + max(Height(n.Left), Height(n.Right))
}

// Clone returns a deep copy of the subtree rooted at n. No node of the copy
// is shared with n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{
		Key:    n.Key,
		Left:   n.Left.Clone(),
		Right:  n.Right.Clone(),
		height: n.height,
	}
}

func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%d[h=%d,bf=%d]", n.Key, n.height, BalanceFactor(n))
}
