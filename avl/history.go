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

// Step records one insertion of a replayed sequence.
type Step struct {
	Index   int // 1-based
	Key     int
	Changes []Change
	Log     []string
	// Preview is the tree after the plain BST insertion, before any
	// rotation was applied.
	Preview *Node
	// Root is the tree after the rebalancing insertion.
	Root *Node
}

// Rotated reports whether the step restructured the tree.
func (s Step) Rotated() bool {
	for _, c := range s.Changes {
		if c.Kind != Duplicate {
			return true
		}
	}
	return false
}

// History is a step-by-step replay of a key sequence. Every snapshot is a
// deep copy, independent of the other steps and of the final tree.
type History struct {
	steps []Step
	final *Tree
}

// Replay inserts keys one by one into an empty tree and records each step.
func Replay(keys []int) *History {
	t := New()
	h := &History{steps: make([]Step, 0, len(keys)), final: t}
	for i, key := range keys {
		h.steps = append(h.steps, record(t, i+1, key))
	}
	return h
}

func record(t *Tree, index, key int) Step {
	preview := t.Clone()
	preview.InsertUnbalanced(key)

	t.Insert(key)
	changes := t.DrainChanges()
	return Step{
		Index:   index,
		Key:     key,
		Changes: changes,
		Log:     Messages(changes),
		Preview: preview.root,
		Root:    t.Snapshot(),
	}
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	return len(h.steps)
}

// At returns step i, counted from 1. Step 0 is the empty tree.
func (h *History) At(i int) (Step, bool) {
	if i < 1 || i > len(h.steps) {
		return Step{}, false
	}
	return h.steps[i-1], true
}

// Steps returns all recorded steps in insertion order.
func (h *History) Steps() []Step {
	return h.steps
}

// Final returns a copy of the tree after the last step.
func (h *History) Final() *Tree {
	return h.final.Clone()
}
