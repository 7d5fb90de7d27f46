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
	"io"
	"sort"

	"github.com/couchbase/editfst/wfst"
)

// Automaton is a bounded-distance acceptor: it recognizes exactly the
// strings within MaxDistance of the source string it was built from,
// under the cost model of the building transducer.  It owns its state
// and arc storage, is immutable, and is safe for concurrent
// membership queries.
type Automaton struct {
	alphabet    *Alphabet
	dfa         *wfst.FST
	maxDistance float64

	closer io.Closer // backing mmap, when created by Open
}

type expandKey struct {
	state int
	cost  float64
}

// BuildAutomaton constructs the acceptor of all strings within
// maxDistance of s.  The lattice of s against every string is
// expanded with pruning at each step, so no partial path ever exceeds
// the threshold, then determinized and minimized.  Returns
// ErrInvalidThreshold if maxDistance is negative, ErrInvalidSymbol if
// s leaves the alphabet, and ErrTooManyStates if the pruned expansion
// exceeds StateLimit states.
func (t *EditTransducer) BuildAutomaton(s string, maxDistance float64) (*Automaton, error) {
	if maxDistance < 0 {
		return nil, ErrInvalidThreshold
	}
	codes, err := t.cm.alphabet.Encode(s)
	if err != nil {
		return nil, err
	}

	lattice := t.latticeToAll(codes)
	lattice.ProjectOutput()

	pruned, err := pruneByWeight(lattice, maxDistance)
	if err != nil {
		return nil, err
	}

	dfa := wfst.Minimize(wfst.Determinize(pruned))
	return &Automaton{
		alphabet:    t.cm.alphabet,
		dfa:         dfa,
		maxDistance: maxDistance,
	}, nil
}

// pruneByWeight unrolls the acceptor into (state, accumulated cost)
// pairs, dropping any expansion whose cost exceeds the budget.  The
// result is acyclic whenever every cycle in the input has positive
// weight.
func pruneByWeight(f *wfst.FST, budget float64) (*wfst.FST, error) {
	semi := f.Semiring()
	out := wfst.NewFST(semi)
	if f.Empty() {
		return out, nil
	}

	index := make(map[expandKey]int)
	var queue []expandKey

	discover := func(k expandKey) (int, error) {
		if s, ok := index[k]; ok {
			return s, nil
		}
		if len(index) >= StateLimit {
			return wfst.NoState, ErrTooManyStates
		}
		s := out.AddState()
		index[k] = s
		queue = append(queue, k)
		if f.IsFinal(k.state) {
			final := semi.Times(k.cost, f.FinalWeight(k.state))
			if !semi.Less(budget, final) {
				// final weight carries the whole accumulated cost, so
				// the determinized machine reports bounded distances
				out.SetFinal(s, final)
			}
		}
		return s, nil
	}

	start := expandKey{state: f.Start(), cost: semi.One()}
	startID, err := discover(start)
	if err != nil {
		return nil, err
	}
	out.SetStart(startID)

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		src := index[k]
		for _, a := range f.Arcs(k.state) {
			cost := semi.Times(k.cost, a.Weight)
			if semi.Less(budget, cost) {
				continue
			}
			dst, err := discover(expandKey{state: a.Next, cost: cost})
			if err != nil {
				return nil, err
			}
			// the accumulated cost lives on the final weights; arcs
			// carry no weight of their own after unrolling
			out.AddArc(src, wfst.Arc{In: a.In, Out: a.In, Weight: semi.One(), Next: dst})
		}
	}

	out.Connect()
	return out, nil
}

// MaxDistance returns the threshold the automaton was built with.
func (a *Automaton) MaxDistance() float64 {
	return a.maxDistance
}

// NumStates returns the number of states of the minimized acceptor.
func (a *Automaton) NumStates() int {
	return a.dfa.NumStates()
}

// step follows the arc labeled code out of state s, or returns
// wfst.NoState and the zero weight.
func (a *Automaton) step(s, code int) (int, float64) {
	arcs := a.dfa.Arcs(s)
	i := sort.Search(len(arcs), func(i int) bool { return arcs[i].In >= code })
	if i < len(arcs) && arcs[i].In == code {
		return arcs[i].Next, arcs[i].Weight
	}
	return wfst.NoState, a.dfa.Semiring().Zero()
}

// Accepts reports whether w is within MaxDistance of the source
// string, by automaton traversal alone.  Runes outside the alphabet
// match no arc.
func (a *Automaton) Accepts(w string) bool {
	if a.dfa.Empty() {
		return false
	}
	s := a.dfa.Start()
	for _, r := range w {
		code, ok := a.alphabet.Code(r)
		if !ok {
			return false
		}
		s, _ = a.step(s, code)
		if s == wfst.NoState {
			return false
		}
	}
	return a.dfa.IsFinal(s)
}

// EvalDistance returns the edit distance from the source string to w
// when that distance is within MaxDistance, as carried on the
// automaton's weights.  ok is false when w is not accepted.
func (a *Automaton) EvalDistance(w string) (float64, bool) {
	if a.dfa.Empty() {
		return 0, false
	}
	semi := a.dfa.Semiring()
	s := a.dfa.Start()
	total := semi.One()
	for _, r := range w {
		code, ok := a.alphabet.Code(r)
		if !ok {
			return 0, false
		}
		var weight float64
		s, weight = a.step(s, code)
		if s == wfst.NoState {
			return 0, false
		}
		total = semi.Times(total, weight)
	}
	if !a.dfa.IsFinal(s) {
		return 0, false
	}
	return semi.Times(total, a.dfa.FinalWeight(s)), true
}

// LanguageSize returns the number of accepted strings of length at
// most maxLength.
func (a *Automaton) LanguageSize(maxLength int) int {
	if a.dfa.Empty() || maxLength < 0 {
		return 0
	}
	n := a.dfa.NumStates()
	counts := make([]int, n)
	counts[a.dfa.Start()] = 1

	total := 0
	for length := 0; ; length++ {
		for s := 0; s < n; s++ {
			if counts[s] > 0 && a.dfa.IsFinal(s) {
				total += counts[s]
			}
		}
		if length == maxLength {
			break
		}
		next := make([]int, n)
		any := false
		for s := 0; s < n; s++ {
			if counts[s] == 0 {
				continue
			}
			for _, arc := range a.dfa.Arcs(s) {
				next[arc.Next] += counts[s]
				any = true
			}
		}
		if !any {
			break
		}
		counts = next
	}
	return total
}

// Close releases the backing mmap for automatons created by Open; it
// is a no-op otherwise.  You MUST call Close on any Automaton
// returned by Open.
func (a *Automaton) Close() error {
	if a.closer != nil {
		return a.closer.Close()
	}
	return nil
}
