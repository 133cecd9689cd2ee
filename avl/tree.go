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

package avl

// rebalancer is applied to every ancestor of a new leaf on the way back up,
// after its child slot has been replaced. It returns the node that takes the
// ancestor's place.
type rebalancer func(n *Node, log *ChangeLog) *Node

// Tree is an AVL tree over unique int keys. It is meant for a single owner;
// take a Snapshot or Clone to hand state to anyone else.
type Tree struct {
	root *Node
	log  ChangeLog
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Insert adds key and rebalances the path back to the root. The change log
// is reset first and afterwards holds every rotation performed, or a single
// duplicate entry when key was already present. It reports whether key was
// added.
func (t *Tree) Insert(key int) bool {
	return t.insertWith(key, rebalance)
}

// InsertUnbalanced adds key like Insert but only maintains heights; it never
// rotates. It exists to show the state a rebalancing insertion starts from
// and leaves the AVL invariant broken in general.
func (t *Tree) InsertUnbalanced(key int) bool {
	return t.insertWith(key, keepShape)
}

func (t *Tree) insertWith(key int, step rebalancer) bool {
	t.log.Reset()
	var added bool
	t.root = insert(t.root, key, step, &t.log, &added)
	if added {
		t.size++
	}
	return added
}

func insert(n *Node, key int, step rebalancer, log *ChangeLog, added *bool) *Node {
	if n == nil {
		*added = true
		return newLeaf(key)
	}

	switch {
	case key < n.Key:
		n.Left = insert(n.Left, key, step, log, added)
	case key > n.Key:
		n.Right = insert(n.Right, key, step, log, added)
	default:
		log.record(Change{Kind: Duplicate, Key: key})
		return n
	}

	recomputeHeight(n)
	return step(n, log)
}

func keepShape(n *Node, _ *ChangeLog) *Node {
	return n
}

func rebalance(n *Node, log *ChangeLog) *Node {
	bf := BalanceFactor(n)
	switch {
	case bf < -1:
		// A zero inner balance factor cannot follow a single insertion, so
		// it is folded into the single-rotation case.
		if BalanceFactor(n.Left) <= 0 {
			log.record(Change{Kind: RotateLL, Key: n.Key, BalanceFactor: bf})
			return rotateRight(n)
		}
		log.record(Change{Kind: RotateLR, Key: n.Key, BalanceFactor: bf, Child: n.Left.Key})
		n.Left = rotateLeft(n.Left)
		return rotateRight(n)

	case bf > 1:
		if BalanceFactor(n.Right) >= 0 {
			log.record(Change{Kind: RotateRR, Key: n.Key, BalanceFactor: bf})
			return rotateLeft(n)
		}
		log.record(Change{Kind: RotateRL, Key: n.Key, BalanceFactor: bf, Child: n.Right.Key})
		n.Right = rotateRight(n.Right)
		return rotateLeft(n)
	}
	return n
}

// DrainLog returns the messages recorded by the most recent insertion and
// clears them. A second call without an insertion in between returns nothing.
func (t *Tree) DrainLog() []string {
	return Messages(t.log.drain())
}

// DrainChanges is the structured form of DrainLog. It clears the log too.
func (t *Tree) DrainChanges() []Change {
	return t.log.drain()
}

// Root exposes the root for read-only inspection. Callers must not modify
// the returned nodes; use Snapshot for a copy that may be changed.
func (t *Tree) Root() *Node {
	return t.root
}

// Snapshot returns a deep copy of the current root.
func (t *Tree) Snapshot() *Node {
	return t.root.Clone()
}

// Clone returns an independent tree with the same shape and an empty
// change log.
func (t *Tree) Clone() *Tree {
	return &Tree{root: t.root.Clone(), size: t.size}
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the height of the whole tree, 0 when empty.
func (t *Tree) Height() int {
	return Height(t.root)
}

// Contains reports whether key is present.
func (t *Tree) Contains(key int) bool {
	n := t.root
	for n != nil {
		switch {
		case key < n.Key:
			n = n.Left
		case key > n.Key:
			n = n.Right
		default:
			return true
		}
	}
	return false
}

// InorderKeys returns every key in ascending order.
func (t *Tree) InorderKeys() []int {
	keys := make([]int, 0, t.size)
	inorder(t.root, &keys)
	return keys
}

func inorder(n *Node, keys *[]int) {
	if n == nil {
		return
	}
	inorder(n.Left, keys)
	*keys = append(*keys, n.Key)
	inorder(n.Right, keys)
}
