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

package wfst

import "sort"

// Determinize returns a deterministic acceptor with the same weighted
// language as the input acceptor: one state per distinct weighted
// subset, at most one arc per label leaving each state, and arcs
// sorted by label.  Epsilon arcs in the input are eliminated by
// weighted closure.  Input labels are used; callers determinizing a
// transducer must project first.  Termination requires the input to
// have no cheapening cycle reachable with the same residual pattern,
// which holds for the pruned acyclic machines built by this package.
func Determinize(f *FST) *FST {
	semi := f.semi
	out := NewFST(semi)
	if f.Empty() {
		return out
	}

	registry := newSubsetRegistry()
	var subsets []weightedSubset

	discover := func(ws weightedSubset) (int, bool) {
		id, known := registry.entry(ws, len(subsets))
		if !known {
			subsets = append(subsets, ws)
			s := out.AddState()
			final := semi.Zero()
			for _, p := range ws {
				if f.IsFinal(p.state) {
					final = semi.Plus(final, semi.Times(p.residual, f.FinalWeight(p.state)))
				}
			}
			if final != semi.Zero() {
				out.SetFinal(s, final)
			}
		}
		return id, known
	}

	start := epsilonClosure(f, weightedSubset{{state: f.Start(), residual: semi.One()}})
	startID, _ := discover(start)
	out.SetStart(startID)

	for next := 0; next < len(subsets); next++ {
		ws := subsets[next]

		// group successor pairs by label
		byLabel := make(map[int]map[int]float64)
		for _, p := range ws {
			for _, a := range f.Arcs(p.state) {
				if a.In == Epsilon {
					continue
				}
				targets := byLabel[a.In]
				if targets == nil {
					targets = make(map[int]float64)
					byLabel[a.In] = targets
				}
				w := semi.Times(p.residual, a.Weight)
				if have, ok := targets[a.Next]; !ok || semi.Less(w, have) {
					targets[a.Next] = w
				}
			}
		}

		labels := make([]int, 0, len(byLabel))
		for label := range byLabel {
			labels = append(labels, label)
		}
		sort.Ints(labels)

		for _, label := range labels {
			targets := byLabel[label]
			dest := make(weightedSubset, 0, len(targets))
			for s, w := range targets {
				dest = append(dest, weightedPair{state: s, residual: w})
			}
			sort.Slice(dest, func(i, j int) bool { return dest[i].state < dest[j].state })
			dest = epsilonClosure(f, dest)

			// Extract the common weight, leaving residuals behind.
			// Residual extraction divides by the common weight, which
			// in the tropical semiring is subtraction.
			common := semi.Zero()
			for _, p := range dest {
				common = semi.Plus(common, p.residual)
			}
			for i := range dest {
				dest[i].residual = dest[i].residual - common
			}

			destID, _ := discover(dest)
			out.AddArc(next, Arc{In: label, Out: label, Weight: common, Next: destID})
		}
	}

	return out
}

// epsilonClosure relaxes epsilon arcs until no pair improves,
// returning the closed subset sorted by state id.
func epsilonClosure(f *FST, ws weightedSubset) weightedSubset {
	semi := f.semi
	best := make(map[int]float64, len(ws))
	var stack []int
	for _, p := range ws {
		if have, ok := best[p.state]; !ok || semi.Less(p.residual, have) {
			best[p.state] = p.residual
			stack = append(stack, p.state)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.Arcs(s) {
			if a.In != Epsilon {
				continue
			}
			w := semi.Times(best[s], a.Weight)
			if have, ok := best[a.Next]; !ok || semi.Less(w, have) {
				best[a.Next] = w
				stack = append(stack, a.Next)
			}
		}
	}

	closed := make(weightedSubset, 0, len(best))
	for s, w := range best {
		closed = append(closed, weightedPair{state: s, residual: w})
	}
	sort.Slice(closed, func(i, j int) bool { return closed[i].state < closed[j].state })
	return closed
}
