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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReplay(t *testing.T) {
	h := Replay([]int{10, 20, 30, 40, 50, 25})
	require.Equal(t, 6, h.Len())

	_, ok := h.At(0)
	require.False(t, ok)
	_, ok = h.At(7)
	require.False(t, ok)

	step, ok := h.At(3)
	require.True(t, ok)
	require.Equal(t, 3, step.Index)
	require.Equal(t, 30, step.Key)
	require.True(t, step.Rotated())
	require.Equal(t, []string{"imbalance at 10 (bf=2): RR pattern, single left rotation at 10"}, step.Log)
	// Before rebalancing the three keys form a right-leaning chain.
	require.Equal(t, 10, step.Preview.Key)
	require.Equal(t, 3, step.Preview.Height())
	require.Equal(t, 20, step.Root.Key)
	require.Equal(t, 2, step.Root.Height())

	step, _ = h.At(4)
	require.False(t, step.Rotated())
	require.Empty(t, step.Log)
	require.Equal(t, Describe(step.Preview), Describe(step.Root))

	step, _ = h.At(6)
	require.Equal(t, RotateRL, step.Changes[0].Kind)
	require.Equal(t, 40, step.Changes[0].Child)
	require.Error(t, Verify(step.Preview))
	require.NoError(t, Verify(step.Root))

	final := h.Final()
	require.Equal(t, []int{10, 20, 25, 30, 40, 50}, final.InorderKeys())
	require.Equal(t, 3, final.Height())
}

func TestReplaySnapshotsAreIndependent(t *testing.T) {
	h := Replay([]int{1, 2, 3, 4})
	steps := h.Steps()
	require.Len(t, steps, 4)

	for i, s := range steps {
		require.Len(t, Keys(s.Root), i+1)
		require.NoError(t, Verify(s.Root))
	}

	// Mutating one snapshot must not leak into any other step.
	steps[1].Root.Key = 100
	s3, _ := h.At(3)
	require.Equal(t, []int{1, 2, 3}, Keys(s3.Root))

	final := h.Final()
	final.Insert(5)
	require.Equal(t, []int{1, 2, 3, 4}, h.Final().InorderKeys())
}

func TestReplayDuplicate(t *testing.T) {
	h := Replay([]int{5, 5})
	step, _ := h.At(2)
	require.False(t, step.Rotated())
	require.Equal(t, []string{"key 5 already present: ignored"}, step.Log)
	require.Equal(t, 1, h.Final().Len())
}
