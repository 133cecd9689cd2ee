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
	"bytes"
	"os"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	writeConfig(t, "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name: "LL",
			args: []string{"run", "--no-color", "30", "20", "10"},
			contains: []string{
				"Step 1: insert 30",
				"simple insertion (no rotations)",
				"Step 3: insert 10",
				"-> imbalance at 30 (bf=-2): LL pattern, single right rotation at 30",
				"In-order: [10 20 30]",
				"Final tree is AVL (|bf| <= 1 on all 3 nodes, height 2).",
			},
		},
		{
			name: "LR with preview",
			args: []string{"run", "--no-color", "--preview", "--keys", "30,10,20"},
			contains: []string{
				"before rebalancing: height 3, in-order [10 20 30]",
				"UNBALANCED",
				"left rotation at 10 then right rotation at 30",
			},
		},
		{
			name: "configured default sequence",
			args: []string{"--no-color"},
			contains: []string{
				"6 keys",
				"RL pattern, right rotation at 40 then left rotation at 20",
				"In-order: [10 20 25 30 40 50]",
				"height 3",
			},
		},
		{
			name: "duplicate",
			args: []string{"run", "--no-color", "7", "7"},
			contains: []string{
				"-> key 7 already present: ignored",
				"on all 1 nodes",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, tc.args...)
			if err != nil {
				t.Fatalf("execute %v returned error: %v", tc.args, err)
			}
			for _, want := range tc.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRunCommandRejectsBadKeys(t *testing.T) {
	for _, args := range [][]string{
		{"run", "10", "x"},
		{"run", "--keys", "1,-2"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("execute %v: expected error", args)
		}
	}
}

func TestVerifyCommand(t *testing.T) {
	out, err := execute(t, "verify", "--quiet", "--no-color", "--count", "300", "--seed", "7")
	if err != nil {
		t.Fatalf("verify returned error: %v", err)
	}
	for _, want := range []string{"Inserted 300 keys", "Pattern", "invariants held"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version returned error: %v", err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("expected %q, got %q", version, out)
	}
}

func TestVerifyCommandRejectsBadCount(t *testing.T) {
	for _, args := range [][]string{
		{"verify", "--quiet", "--no-color", "--count", "-1"},
		{"verify", "--quiet", "--no-color", "--count", "2000000"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("execute %v: expected error", args)
		}
	}
}

func TestSettingsCommandCreatesConfig(t *testing.T) {
	path := writeConfig(t, "")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"settings"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("settings returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file at %s: %v", path, err)
	}
	for _, want := range []string{path + " (newly created)", "run.sequence: [10 20 30 40 50 25]", "verify.count:   1000"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}

	// A second run finds the file it wrote.
	out.Reset()
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"settings"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("settings returned error: %v", err)
	}
	if strings.Contains(out.String(), "newly created") {
		t.Errorf("expected existing config file, got:\n%s", out.String())
	}
}
