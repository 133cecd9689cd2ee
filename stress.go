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
	"io"
	"math/rand"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cybrota/avlstep/avl"
	"github.com/olekukonko/tablewriter"
	"github.com/schollz/progressbar/v3"
	"github.com/willf/bloom"
)

// stressResult summarises a verify run.
type stressResult struct {
	Inserted  int
	Height    int
	MaxHeight int
	Rotations map[avl.ChangeKind]int
}

// distinctKeys draws count keys from [0, maxKey) without repeats. The bloom
// filter answers most lookups; its hits are confirmed against the exact set
// so a false positive never blocks a key that was not drawn yet.
func distinctKeys(rng *rand.Rand, count, maxKey int) ([]int, error) {
	if count < 0 {
		return nil, errors.Newf("cannot draw a negative number of keys: %d", count)
	}
	if count > maxKey {
		return nil, errors.Newf("cannot draw %d distinct keys below %d", count, maxKey)
	}
	filter := bloom.NewWithEstimates(uint(max(count, 1)), 0.001)
	drawn := make(map[int]struct{}, count)
	keys := make([]int, 0, count)
	for len(keys) < count {
		k := rng.Intn(maxKey)
		s := strconv.Itoa(k)
		if filter.TestString(s) {
			if _, ok := drawn[k]; ok {
				continue
			}
		}
		filter.AddString(s)
		drawn[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys, nil
}

// maxAVLHeight is the worst-case height of an AVL tree with n nodes: the
// largest h whose sparsest AVL tree, N(h) = N(h-1) + N(h-2) + 1, fits in n.
func maxAVLHeight(n int) int {
	h := 0
	for sparse, next := 1, 2; sparse <= n; sparse, next = next, sparse+next+1 {
		h++
	}
	return h
}

// runStress inserts the configured number of random keys and checks the
// tree after every insertion. Progress goes to progress, nil keeps it quiet.
func runStress(config VerifyConfig, progress io.Writer) (*stressResult, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}
	keys, err := distinctKeys(rand.New(rand.NewSource(config.Seed)), config.Count, config.MaxKey)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(len(keys),
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("Inserting keys..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "=",
				SaucerHead:    ">",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(progress)
			}),
		)
	}

	tree := avl.New()
	res := &stressResult{Rotations: make(map[avl.ChangeKind]int)}
	for _, k := range keys {
		if !tree.Insert(k) {
			return nil, errors.AssertionFailedf("key %d reported as duplicate", k)
		}
		for _, c := range tree.DrainChanges() {
			res.Rotations[c.Kind]++
		}
		if err := avl.Verify(tree.Root()); err != nil {
			return nil, errors.Wrapf(err, "after inserting %d (%d keys in tree)", k, tree.Len())
		}
		if bar != nil {
			_ = bar.Add(1)
		}
	}

	res.Inserted = tree.Len()
	res.Height = tree.Height()
	res.MaxHeight = maxAVLHeight(res.Inserted)
	if res.Height > res.MaxHeight {
		return nil, errors.Newf("height %d exceeds AVL bound %d for %d keys", res.Height, res.MaxHeight, res.Inserted)
	}
	return res, nil
}

func writeStressResult(p *printer, res *stressResult) {
	p.heading(fmt.Sprintf("Inserted %d keys: height %d (AVL bound %d)", res.Inserted, res.Height, res.MaxHeight))

	tbl := tablewriter.NewWriter(p.w)
	tbl.SetHeader([]string{"Pattern", "Rotations"})
	tbl.SetAutoFormatHeaders(false)
	total := 0
	for _, kind := range []avl.ChangeKind{avl.RotateLL, avl.RotateLR, avl.RotateRR, avl.RotateRL} {
		n := res.Rotations[kind]
		total += n
		tbl.Append([]string{kind.String(), strconv.Itoa(n)})
	}
	tbl.SetFooter([]string{"Total", strconv.Itoa(total)})
	tbl.Render()
	p.status(true, "balance, ordering and height invariants held after every insertion")
}
