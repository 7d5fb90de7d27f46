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

package editfst

import (
	"sort"

	"github.com/couchbase/editfst/wfst"
)

// Matcher answers closest-match queries against a fixed lexicon.  The
// lexicon is compiled once into a prefix-sharing acceptor and
// pre-composed with the edit machine's output side, so each query
// pays only for its own lattice.  A Matcher is immutable and safe for
// concurrent queries.
type Matcher struct {
	t *EditTransducer

	// the edit machine's output side composed with the lexicon; for
	// the factored strategy this is the right factor, leaving the
	// left factor to be applied per query
	lexSide *wfst.FST
}

// NewMatcher compiles the lexicon and pre-composes it with the
// transducer.  Returns ErrInvalidSymbol if any lexicon entry leaves
// the alphabet.
func NewMatcher(t *EditTransducer, lexicon []string) (*Matcher, error) {
	seqs := make([][]int, 0, len(lexicon))
	for _, w := range lexicon {
		codes, err := t.cm.alphabet.Encode(w)
		if err != nil {
			return nil, err
		}
		seqs = append(seqs, codes)
	}
	lex := wfst.StringUnion(t.semi, seqs)

	m := &Matcher{t: t}
	if t.direct != nil {
		m.lexSide = wfst.Compose(t.direct, lex)
	} else {
		m.lexSide = wfst.Compose(t.right, lex)
	}
	return m, nil
}

// lattice builds the query lattice against the whole lexicon.
func (m *Matcher) lattice(query string) (*wfst.FST, error) {
	codes, err := m.t.cm.alphabet.Encode(query)
	if err != nil {
		return nil, err
	}
	in := wfst.LinearAcceptor(m.t.semi, codes)
	if m.t.direct != nil {
		return wfst.Compose(in, m.lexSide), nil
	}
	return wfst.Compose(wfst.Compose(in, m.t.left), m.lexSide), nil
}

// ClosestMatch returns the lexicon string nearest to the query and
// its distance.  Ties are broken deterministically but the choice
// among equally close strings is unspecified.  Returns
// ErrEmptyLattice when the lexicon is empty.
func (m *Matcher) ClosestMatch(query string) (string, float64, error) {
	lattice, err := m.lattice(query)
	if err != nil {
		return "", 0, err
	}
	arcs, weight, ok := wfst.ShortestPath(lattice)
	if !ok {
		return "", 0, ErrEmptyLattice
	}
	outs := make([]int, 0, len(arcs))
	for _, a := range arcs {
		outs = append(outs, a.Out)
	}
	return m.t.cm.alphabet.Decode(outs), weight, nil
}

// ClosestMatches returns every lexicon string at the minimum distance
// from the query, sorted, along with that distance.
func (m *Matcher) ClosestMatches(query string) ([]string, float64, error) {
	lattice, err := m.lattice(query)
	if err != nil {
		return nil, 0, err
	}
	best := wfst.ShortestDistance(lattice)
	if best == m.t.semi.Zero() {
		return nil, 0, ErrEmptyLattice
	}

	// prune to the best weight and enumerate the surviving outputs
	lattice.ProjectOutput()
	pruned, err := pruneByWeight(lattice, best)
	if err != nil {
		return nil, 0, err
	}
	dfa := wfst.Minimize(wfst.Determinize(pruned))
	a := &Automaton{
		alphabet:    m.t.cm.alphabet,
		dfa:         dfa,
		maxDistance: best,
	}

	// the pruned machine is acyclic, so no accepted string can be
	// longer than its state count
	seen := make(map[string]struct{})
	var matches []string
	it := a.Iterator(dfa.NumStates())
	for {
		w, err := it.Next()
		if err == ErrIteratorDone {
			break
		}
		if _, dup := seen[w]; !dup {
			seen[w] = struct{}{}
			matches = append(matches, w)
		}
	}
	sort.Strings(matches)
	return matches, best, nil
}
