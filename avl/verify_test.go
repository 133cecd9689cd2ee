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

func TestVerifyDetectsViolations(t *testing.T) {
	testCases := []struct {
		name    string
		root    *Node
		wantErr string
	}{
		{
			name: "valid",
			root: join(leaf(1), 2, leaf(3)),
		},
		{
			name:    "order",
			root:    join(leaf(5), 2, leaf(3)),
			wantErr: "key 5 out of order: not below 2",
		},
		{
			name:    "deep order",
			root:    join(join(leaf(1), 3, leaf(9)), 5, leaf(7)),
			wantErr: "key 9 out of order: not below 5",
		},
		{
			name:    "stale height",
			root:    &Node{Key: 2, Left: leaf(1), height: 1},
			wantErr: "node 2 caches height 1, actual 2",
		},
		{
			name:    "balance",
			root:    join(join(leaf(1), 2, nil), 3, nil),
			wantErr: "node 3 out of balance: bf=-2",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Verify(tc.root)
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tc.wantErr)
		})
	}
}

func TestVerifyShapeIgnoresBalance(t *testing.T) {
	chain := join(join(leaf(1), 2, nil), 3, nil)
	require.NoError(t, VerifyShape(chain))
	require.Error(t, VerifyShape(join(leaf(4), 3, nil)))
}

func TestDescribe(t *testing.T) {
	tree := New()
	tree.InsertUnbalanced(3)
	tree.InsertUnbalanced(2)
	tree.InsertUnbalanced(1)

	require.Equal(t, []NodeInfo{
		{Key: 3, Height: 3, BalanceFactor: -2, Depth: 0, Balanced: false},
		{Key: 2, Height: 2, BalanceFactor: -1, Depth: 1, Balanced: true},
		{Key: 1, Height: 1, BalanceFactor: 0, Depth: 2, Balanced: true},
	}, Describe(tree.Root()))
	require.Nil(t, Describe(nil))
}
