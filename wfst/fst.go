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
	"github.com/willf/bitset"
)

// Epsilon is the reserved empty label, consuming and producing nothing.
const Epsilon = 0

// NoState marks the absence of a state, e.g. the start state of an
// FST with no states.
const NoState = -1

// Arc is a weighted transition.  In and Out are dense integer labels
// with 0 reserved for epsilon; acceptors keep In == Out.
type Arc struct {
	In     int
	Out    int
	Weight float64
	Next   int
}

type state struct {
	arcs        []Arc
	final       bool
	finalWeight float64
}

// FST is an arena-owned weighted finite state transducer.  States and
// arcs are addressed by dense integer indices inside the owning
// structure, so an FST holds no interior pointers and may be shared
// read-only once built.
type FST struct {
	semi   Semiring
	states []state
	start  int
}

// NewFST returns an empty FST over the given semiring.
func NewFST(semi Semiring) *FST {
	return &FST{
		semi:  semi,
		start: NoState,
	}
}

// Semiring returns the weight algebra this FST was built over.
func (f *FST) Semiring() Semiring {
	return f.semi
}

// AddState appends a new non-final state and returns its index.
func (f *FST) AddState() int {
	f.states = append(f.states, state{finalWeight: f.semi.Zero()})
	return len(f.states) - 1
}

// AddArc adds an arc leaving state s.
func (f *FST) AddArc(s int, a Arc) {
	f.states[s].arcs = append(f.states[s].arcs, a)
}

// SetStart designates the start state.
func (f *FST) SetStart(s int) {
	f.start = s
}

// Start returns the start state, or NoState if the FST is empty.
func (f *FST) Start() int {
	return f.start
}

// SetFinal marks s final with the given final weight.
func (f *FST) SetFinal(s int, w float64) {
	f.states[s].final = true
	f.states[s].finalWeight = w
}

// IsFinal reports whether s is a final state.
func (f *FST) IsFinal(s int) bool {
	return f.states[s].final
}

// FinalWeight returns the final weight of s, or the semiring zero if
// s is not final.
func (f *FST) FinalWeight(s int) float64 {
	return f.states[s].finalWeight
}

// Arcs returns the arcs leaving s.  The slice is owned by the FST and
// must not be mutated.
func (f *FST) Arcs(s int) []Arc {
	return f.states[s].arcs
}

// NumStates returns the number of states.
func (f *FST) NumStates() int {
	return len(f.states)
}

// NumArcs returns the total number of arcs.
func (f *FST) NumArcs() int {
	n := 0
	for i := range f.states {
		n += len(f.states[i].arcs)
	}
	return n
}

// Empty reports whether the FST accepts nothing for lack of a start
// state.
func (f *FST) Empty() bool {
	return f.start == NoState
}

// LinearAcceptor builds the chain acceptor recognizing exactly the
// given label sequence with weight One.
func LinearAcceptor(semi Semiring, labels []int) *FST {
	f := NewFST(semi)
	curr := f.AddState()
	f.SetStart(curr)
	for _, label := range labels {
		next := f.AddState()
		f.AddArc(curr, Arc{In: label, Out: label, Weight: semi.One(), Next: next})
		curr = next
	}
	f.SetFinal(curr, semi.One())
	return f
}

// SigmaStar builds the universal acceptor over the given label set: a
// single accepting state with a zero-weight self loop per label.
func SigmaStar(semi Semiring, labels []int) *FST {
	f := NewFST(semi)
	s := f.AddState()
	f.SetStart(s)
	f.SetFinal(s, semi.One())
	for _, label := range labels {
		f.AddArc(s, Arc{In: label, Out: label, Weight: semi.One(), Next: s})
	}
	return f
}

// StringUnion builds a prefix-sharing acceptor recognizing every
// label sequence in seqs with weight One.  Prefixes are shared the
// way the vellum builder shares them on insert; suffixes are not.
func StringUnion(semi Semiring, seqs [][]int) *FST {
	f := NewFST(semi)
	root := f.AddState()
	f.SetStart(root)
	for _, seq := range seqs {
		curr := root
		for _, label := range seq {
			next := NoState
			for _, a := range f.states[curr].arcs {
				if a.In == label {
					next = a.Next
					break
				}
			}
			if next == NoState {
				next = f.AddState()
				f.AddArc(curr, Arc{In: label, Out: label, Weight: semi.One(), Next: next})
			}
			curr = next
		}
		f.SetFinal(curr, semi.One())
	}
	return f
}

// ProjectOutput rewrites the FST in place into an acceptor over its
// output labels.
func (f *FST) ProjectOutput() {
	for i := range f.states {
		arcs := f.states[i].arcs
		for j := range arcs {
			arcs[j].In = arcs[j].Out
		}
	}
}

// Connect trims states that are unreachable from the start state or
// that cannot reach a final state, renumbering the survivors.  The
// accepted weighted language is unchanged.
func (f *FST) Connect() {
	n := len(f.states)
	if f.start == NoState || n == 0 {
		return
	}

	// forward reachability
	fwd := bitset.New(uint(n))
	stack := []int{f.start}
	fwd.Set(uint(f.start))
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range f.states[s].arcs {
			if !fwd.Test(uint(a.Next)) {
				fwd.Set(uint(a.Next))
				stack = append(stack, a.Next)
			}
		}
	}

	// backward reachability over reversed arcs
	rev := make([][]int, n)
	for s := range f.states {
		for _, a := range f.states[s].arcs {
			rev[a.Next] = append(rev[a.Next], s)
		}
	}
	bwd := bitset.New(uint(n))
	for s := range f.states {
		if f.states[s].final {
			bwd.Set(uint(s))
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range rev[s] {
			if !bwd.Test(uint(p)) {
				bwd.Set(uint(p))
				stack = append(stack, p)
			}
		}
	}

	keep := fwd.Intersection(bwd)
	if !keep.Test(uint(f.start)) {
		f.states = nil
		f.start = NoState
		return
	}

	remap := make([]int, n)
	kept := make([]state, 0, keep.Count())
	for s := 0; s < n; s++ {
		if keep.Test(uint(s)) {
			remap[s] = len(kept)
			kept = append(kept, f.states[s])
		} else {
			remap[s] = NoState
		}
	}
	for i := range kept {
		arcs := kept[i].arcs[:0]
		for _, a := range kept[i].arcs {
			if remap[a.Next] != NoState {
				a.Next = remap[a.Next]
				arcs = append(arcs, a)
			}
		}
		kept[i].arcs = arcs
	}
	f.start = remap[f.start]
	f.states = kept
}
