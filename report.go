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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlstep/avl"
	"github.com/olekukonko/tablewriter"
)

// writeReplay prints every step of h: the inserted key, the change log, the
// resulting in-order keys and the per-node balance table.
func writeReplay(p *printer, h *avl.History, preview bool) {
	p.heading(fmt.Sprintf("=== Step-by-step AVL insertion (bf = height(right) - height(left)), %d keys ===", h.Len()))
	for _, step := range h.Steps() {
		p.linef("")
		writeStep(p, step, preview)
	}

	final := h.Final()
	p.linef("")
	p.linef("In-order: %s", formatKeys(final.InorderKeys()))
	if err := avl.Verify(final.Root()); err != nil {
		p.status(false, fmt.Sprintf("Final tree violates the AVL invariant: %v", err))
		return
	}
	p.status(true, fmt.Sprintf("Final tree is AVL (|bf| <= 1 on all %d nodes, height %d).", final.Len(), final.Height()))
}

func writeStep(p *printer, step avl.Step, preview bool) {
	p.heading(fmt.Sprintf("Step %d: insert %d", step.Index, step.Key))

	if preview && step.Rotated() {
		p.muted(fmt.Sprintf("  before rebalancing: height %d, in-order %s",
			step.Preview.Height(), formatKeys(avl.Keys(step.Preview))))
		writeBalanceTable(p, step.Preview)
	}

	if len(step.Changes) == 0 {
		p.muted("  simple insertion (no rotations)")
	}
	for _, c := range step.Changes {
		if c.Kind == avl.Duplicate {
			p.notice(c.String())
		} else {
			p.rotation(c.String())
		}
	}

	p.linef("  in-order: %s", formatKeys(avl.Keys(step.Root)))
	writeBalanceTable(p, step.Root)
}

// writeBalanceTable lists each node in pre-order, indented by depth.
func writeBalanceTable(p *printer, root *avl.Node) {
	infos := avl.Describe(root)
	if len(infos) == 0 {
		p.muted("  (empty tree)")
		return
	}

	tbl := tablewriter.NewWriter(p.w)
	tbl.SetHeader([]string{"Node", "Height", "BF", "Status"})
	tbl.SetAutoFormatHeaders(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, info := range infos {
		status := "balanced"
		if !info.Balanced {
			status = "UNBALANCED"
		}
		tbl.Append([]string{
			strings.Repeat("  ", info.Depth) + strconv.Itoa(info.Key),
			strconv.Itoa(info.Height),
			strconv.Itoa(info.BalanceFactor),
			status,
		})
	}
	tbl.Render()
}

func formatKeys(keys []int) string {
	strs := make([]string, len(keys))
	for i, k := range keys {
		strs[i] = strconv.Itoa(k)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
