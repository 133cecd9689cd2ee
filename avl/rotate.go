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

// rotateRight lifts a.Left into a's position (LL case).
//
//	    a          b
//	   / \        / \
//	  b   z  ->  x   a
//	 / \            / \
//	x   y          y   z
func rotateRight(a *Node) *Node {
	if a == nil || a.Left == nil {
		panic(errors.AssertionFailedf("rotateRight on %s without left child", a))
	}
	b := a.Left
	a.Left = b.Right
	b.Right = a

	// a is now b's child, so its height has to be settled first.
	recomputeHeight(a)
	recomputeHeight(b)
	return b
}

// rotateLeft lifts a.Right into a's position (RR case).
//
//	  a              c
//	 / \            / \
//	x   c    ->    a   z
//	   / \        / \
//	  y   z      x   y
func rotateLeft(a *Node) *Node {
	if a == nil || a.Right == nil {
		panic(errors.AssertionFailedf("rotateLeft on %s without right child", a))
	}
	c := a.Right
	a.Right = c.Left
	c.Left = a

	recomputeHeight(a)
	recomputeHeight(c)
	return c
}
