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

import (
	"fmt"
	"sort"
	"strings"
)

// Minimize merges equivalent states of a deterministic acceptor by
// iterative partition refinement over arc signatures, preserving the
// weighted language.  The input must be deterministic (one arc per
// label per state); the result has arcs sorted by label.
func Minimize(f *FST) *FST {
	semi := f.semi
	if f.Empty() {
		return NewFST(semi)
	}

	n := f.NumStates()
	class := make([]int, n)

	// initial partition: finality and final weight
	initial := make(map[string]int)
	for s := 0; s < n; s++ {
		key := "n"
		if f.IsFinal(s) {
			key = fmt.Sprintf("f%x", f.FinalWeight(s))
		}
		id, ok := initial[key]
		if !ok {
			id = len(initial)
			initial[key] = id
		}
		class[s] = id
	}
	numClasses := len(initial)

	for {
		next := make(map[string]int)
		newClass := make([]int, n)
		for s := 0; s < n; s++ {
			var sig strings.Builder
			fmt.Fprintf(&sig, "%d|", class[s])
			arcs := append([]Arc(nil), f.Arcs(s)...)
			sort.Slice(arcs, func(i, j int) bool { return arcs[i].In < arcs[j].In })
			for _, a := range arcs {
				fmt.Fprintf(&sig, "%d:%x:%d;", a.In, a.Weight, class[a.Next])
			}
			id, ok := next[sig.String()]
			if !ok {
				id = len(next)
				next[sig.String()] = id
			}
			newClass[s] = id
		}
		class = newClass
		if len(next) == numClasses {
			break
		}
		numClasses = len(next)
	}

	// rebuild with one state per class, start state's class first
	out := NewFST(semi)
	remap := make([]int, numClasses)
	for i := range remap {
		remap[i] = NoState
	}
	order := make([]int, 0, numClasses)
	order = append(order, class[f.Start()])
	remap[class[f.Start()]] = 0
	for s := 0; s < n; s++ {
		if remap[class[s]] == NoState {
			remap[class[s]] = len(order)
			order = append(order, class[s])
		}
	}
	rep := make([]int, numClasses)
	for s := n - 1; s >= 0; s-- {
		rep[class[s]] = s
	}
	for _, c := range order {
		s := rep[c]
		id := out.AddState()
		if f.IsFinal(s) {
			out.SetFinal(id, f.FinalWeight(s))
		}
	}
	out.SetStart(0)
	for _, c := range order {
		s := rep[c]
		arcs := append([]Arc(nil), f.Arcs(s)...)
		sort.Slice(arcs, func(i, j int) bool { return arcs[i].In < arcs[j].In })
		for _, a := range arcs {
			out.AddArc(remap[c], Arc{
				In:     a.In,
				Out:    a.In,
				Weight: a.Weight,
				Next:   remap[class[a.Next]],
			})
		}
	}
	return out
}
