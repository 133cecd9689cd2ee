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
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/mattn/go-shellwords"
)

// parseKeys turns user text such as "10, 20 30" into keys. Commas and
// whitespace both separate items; every item must be a non-negative integer.
func parseKeys(text string) ([]int, error) {
	words, err := shellwords.Parse(strings.ReplaceAll(text, ",", " "))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to split key sequence %q", text)
	}
	if len(words) == 0 {
		return nil, errors.New("no keys given")
	}

	keys := make([]int, 0, len(words))
	for _, w := range words {
		k, err := strconv.Atoi(w)
		if err != nil {
			return nil, errors.Newf("invalid key %q: not an integer", w)
		}
		if k < 0 {
			return nil, errors.Newf("invalid key %d: keys must not be negative", k)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// resolveSequence picks the keys for a run: positional arguments win over
// the --keys flag, which wins over the configured sequence.
func resolveSequence(args []string, flag string, config *Config) ([]int, error) {
	switch {
	case len(args) > 0:
		return parseKeys(strings.Join(args, " "))
	case flag != "":
		return parseKeys(flag)
	case len(config.Run.Sequence) > 0:
		return config.Run.Sequence, nil
	default:
		return nil, errors.New("no keys given and no run.sequence configured")
	}
}
