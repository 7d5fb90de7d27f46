//  Copyright (c) 2017 Couchbase, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// 		http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package editfst computes weighted string-edit relationships by
// modeling edit operations as a weighted finite state transducer.
//
// An EditTransducer realizes a CostModel (per-symbol insertion and
// deletion costs, scalar or pairwise substitution costs) over a
// finite Alphabet.  It answers pairwise edit-distance queries, with
// optional alignments, and builds bounded-distance acceptors
// ("Levenshtein automatons") and lexicon matchers.  All handles are
// immutable once built and safe for concurrent queries.
//
// The weighted-automaton machinery itself, composition with epsilon
// filtering, shortest distance and determinization over the tropical
// semiring, lives in the wfst subpackage.
package editfst

// Distance returns the classic unit-cost Levenshtein distance between
// s1 and s2, building a throwaway transducer over the runes of the
// two strings.  Callers computing many distances should build an
// EditTransducer once and reuse it.
func Distance(s1, s2 string) (float64, error) {
	if s1 == "" && s2 == "" {
		return 0, nil
	}
	a, err := AlphabetOf(s1, s2)
	if err != nil {
		return 0, err
	}
	t, err := NewEditTransducer(UnitCosts(a), StrategyAuto)
	if err != nil {
		return 0, err
	}
	return t.Distance(s1, s2)
}
