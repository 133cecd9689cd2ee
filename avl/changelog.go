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

import "fmt"

// ChangeKind classifies an entry of the change log.
type ChangeKind int

const (
	Duplicate ChangeKind = iota
	RotateLL
	RotateLR
	RotateRR
	RotateRL
)

func (k ChangeKind) String() string {
	switch k {
	case Duplicate:
		return "duplicate"
	case RotateLL:
		return "LL"
	case RotateLR:
		return "LR"
	case RotateRR:
		return "RR"
	case RotateRL:
		return "RL"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// Change is one structural event of an insertion.
type Change struct {
	Kind ChangeKind
	// Key is the node where the imbalance was found, or the rejected key
	// for Duplicate.
	Key int
	// BalanceFactor is Key's balance factor before rotating.
	BalanceFactor int
	// Child is the key of the child rotated first in LR and RL cases.
	Child int
}

func (c Change) String() string {
	switch c.Kind {
	case Duplicate:
		return fmt.Sprintf("key %d already present: ignored", c.Key)
	case RotateLL:
		return fmt.Sprintf("imbalance at %d (bf=%d): LL pattern, single right rotation at %d",
			c.Key, c.BalanceFactor, c.Key)
	case RotateRR:
		return fmt.Sprintf("imbalance at %d (bf=%d): RR pattern, single left rotation at %d",
			c.Key, c.BalanceFactor, c.Key)
	case RotateLR:
		return fmt.Sprintf("imbalance at %d (bf=%d): LR pattern, left rotation at %d then right rotation at %d",
			c.Key, c.BalanceFactor, c.Child, c.Key)
	case RotateRL:
		return fmt.Sprintf("imbalance at %d (bf=%d): RL pattern, right rotation at %d then left rotation at %d",
			c.Key, c.BalanceFactor, c.Child, c.Key)
	default:
		return c.Kind.String()
	}
}

// ChangeLog collects the changes made by a single insertion. It is threaded
// through the recursive descent explicitly.
type ChangeLog struct {
	changes []Change
}

// Reset empties the log.
func (l *ChangeLog) Reset() {
	l.changes = l.changes[:0]
}

// Len returns the number of recorded changes.
func (l *ChangeLog) Len() int {
	return len(l.changes)
}

func (l *ChangeLog) record(c Change) {
	l.changes = append(l.changes, c)
}

// drain hands out the recorded changes and leaves the log empty. The
// returned slice is owned by the caller.
func (l *ChangeLog) drain() []Change {
	if len(l.changes) == 0 {
		return nil
	}
	out := l.changes
	l.changes = nil
	return out
}

// Messages renders every change as a human-readable line.
func Messages(changes []Change) []string {
	if len(changes) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(changes))
	for _, c := range changes {
		msgs = append(msgs, c.String())
	}
	return msgs
}
