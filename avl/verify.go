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

import "github.com/cockroachdb/errors"

// Keys returns the keys of the subtree rooted at n in order. It is the
// snapshot counterpart of Tree.InorderKeys.
func Keys(n *Node) []int {
	var keys []int
	inorder(n, &keys)
	return keys
}

// Verify checks ordering, cached heights and the AVL balance bound on every
// node reachable from root and returns the first violation found.
func Verify(root *Node) error {
	_, err := check(root, nil, nil, true)
	return err
}

// VerifyShape is Verify without the balance bound, for trees built with
// InsertUnbalanced.
func VerifyShape(root *Node) error {
	_, err := check(root, nil, nil, false)
	return err
}

// check returns the true height of n. Keys must lie strictly between lo and
// hi; a nil bound is open.
func check(n *Node, lo, hi *int, balanced bool) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && n.Key <= *lo {
		return 0, errors.Newf("key %d out of order: not above %d", n.Key, *lo)
	}
	if hi != nil && n.Key >= *hi {
		return 0, errors.Newf("key %d out of order: not below %d", n.Key, *hi)
	}
	lh, err := check(n.Left, lo, &n.Key, balanced)
	if err != nil {
		return 0, err
	}
	rh, err := check(n.Right, &n.Key, hi, balanced)
	if err != nil {
		return 0, err
	}
	h := 1 + max(lh, rh)
	if n.height != h {
		return 0, errors.Newf("node %d caches height %d, actual %d", n.Key, n.height, h)
	}
	if bf := rh - lh; balanced && (bf < -1 || bf > 1) {
		return 0, errors.Newf("node %d out of balance: bf=%d", n.Key, bf)
	}
	return h, nil
}

// NodeInfo is the per-node balance report shown next to a rendered tree.
type NodeInfo struct {
	Key           int
	Height        int
	BalanceFactor int
	Depth         int
	Balanced      bool
}

// Describe lists every node of the subtree in pre-order together with its
// height, balance factor and depth below n.
func Describe(n *Node) []NodeInfo {
	var out []NodeInfo
	describe(n, 0, &out)
	return out
}

func describe(n *Node, depth int, out *[]NodeInfo) {
	if n == nil {
		return
	}
	bf := BalanceFactor(n)
	*out = append(*out, NodeInfo{
		Key:           n.Key,
		Height:        n.height,
		BalanceFactor: bf,
		Depth:         depth,
		Balanced:      bf >= -1 && bf <= 1,
	})
	describe(n.Left, depth+1, out)
	describe(n.Right, depth+1, out)
}
