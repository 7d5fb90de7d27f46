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

import "testing"

// evalDfa walks a deterministic acceptor, returning the accepted
// weight, or ok false.
func evalDfa(f *FST, labels []int) (float64, bool) {
	if f.Empty() {
		return 0, false
	}
	semi := f.Semiring()
	s := f.Start()
	total := semi.One()
	for _, label := range labels {
		next := NoState
		for _, a := range f.Arcs(s) {
			if a.In == label {
				next = a.Next
				total = semi.Times(total, a.Weight)
				break
			}
		}
		if next == NoState {
			return 0, false
		}
		s = next
	}
	if !f.IsFinal(s) {
		return 0, false
	}
	return semi.Times(total, f.FinalWeight(s)), true
}

func isDeterministic(f *FST) bool {
	for s := 0; s < f.NumStates(); s++ {
		seen := map[int]struct{}{}
		for _, a := range f.Arcs(s) {
			if a.In == Epsilon {
				return false
			}
			if _, dup := seen[a.In]; dup {
				return false
			}
			seen[a.In] = struct{}{}
		}
	}
	return true
}

func TestDeterminizeMergesAmbiguity(t *testing.T) {
	// two paths spell "1 2" with weights 3 and 5; the determinized
	// machine must keep only the cheaper weight
	f := NewFST(Tropical{})
	s0 := f.AddState()
	a1 := f.AddState()
	a2 := f.AddState()
	b1 := f.AddState()
	b2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 3, Next: a1})
	f.AddArc(a1, Arc{In: 2, Out: 2, Weight: 0, Next: a2})
	f.SetFinal(a2, 0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 5, Next: b1})
	f.AddArc(b1, Arc{In: 2, Out: 2, Weight: 0, Next: b2})
	f.SetFinal(b2, 0)

	d := Determinize(f)
	if !isDeterministic(d) {
		t.Fatalf("expected deterministic result")
	}
	w, ok := evalDfa(d, []int{1, 2})
	if !ok {
		t.Fatalf("expected 1 2 accepted")
	}
	if w != 3 {
		t.Errorf("expected weight 3, got %v", w)
	}
	if _, ok := evalDfa(d, []int{1}); ok {
		t.Errorf("expected 1 rejected")
	}
}

func TestDeterminizeResiduals(t *testing.T) {
	// shared first label, weights diverging afterwards; residual
	// bookkeeping must keep both suffixes exact
	f := NewFST(Tropical{})
	s0 := f.AddState()
	a1 := f.AddState()
	a2 := f.AddState()
	b1 := f.AddState()
	b2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 2, Next: a1})
	f.AddArc(a1, Arc{In: 2, Out: 2, Weight: 0, Next: a2})
	f.SetFinal(a2, 0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 7, Next: b1})
	f.AddArc(b1, Arc{In: 3, Out: 3, Weight: 0, Next: b2})
	f.SetFinal(b2, 0)

	d := Determinize(f)
	if !isDeterministic(d) {
		t.Fatalf("expected deterministic result")
	}
	if w, ok := evalDfa(d, []int{1, 2}); !ok || w != 2 {
		t.Errorf("expected 1 2 accepted at 2, got %v %v", w, ok)
	}
	if w, ok := evalDfa(d, []int{1, 3}); !ok || w != 7 {
		t.Errorf("expected 1 3 accepted at 7, got %v %v", w, ok)
	}
}

func TestDeterminizeEpsilonClosure(t *testing.T) {
	// eps arcs with weight must fold into the surrounding path
	f := NewFST(Tropical{})
	s0 := f.AddState()
	s1 := f.AddState()
	s2 := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, Arc{In: Epsilon, Out: Epsilon, Weight: 4, Next: s1})
	f.AddArc(s1, Arc{In: 1, Out: 1, Weight: 1, Next: s2})
	f.SetFinal(s2, 0)

	d := Determinize(f)
	if !isDeterministic(d) {
		t.Fatalf("expected epsilon-free deterministic result")
	}
	if w, ok := evalDfa(d, []int{1}); !ok || w != 5 {
		t.Errorf("expected 1 accepted at 5, got %v %v", w, ok)
	}
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// two distinct but equivalent suffix states accepting label 3
	f := NewFST(Tropical{})
	s0 := f.AddState()
	a := f.AddState()
	b := f.AddState()
	af := f.AddState()
	bf := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 0, Next: a})
	f.AddArc(s0, Arc{In: 2, Out: 2, Weight: 0, Next: b})
	f.AddArc(a, Arc{In: 3, Out: 3, Weight: 0, Next: af})
	f.AddArc(b, Arc{In: 3, Out: 3, Weight: 0, Next: bf})
	f.SetFinal(af, 0)
	f.SetFinal(bf, 0)

	m := Minimize(f)
	if m.NumStates() != 3 {
		t.Errorf("expected 3 states after minimization, got %d", m.NumStates())
	}
	for _, labels := range [][]int{{1, 3}, {2, 3}} {
		if _, ok := evalDfa(m, labels); !ok {
			t.Errorf("expected %v accepted after minimization", labels)
		}
	}
	if _, ok := evalDfa(m, []int{1}); ok {
		t.Errorf("expected 1 rejected after minimization")
	}
}

func TestMinimizeKeepsDistinctWeights(t *testing.T) {
	// same shape but different arc weights must not merge
	f := NewFST(Tropical{})
	s0 := f.AddState()
	a := f.AddState()
	b := f.AddState()
	af := f.AddState()
	bf := f.AddState()
	f.SetStart(s0)
	f.AddArc(s0, Arc{In: 1, Out: 1, Weight: 0, Next: a})
	f.AddArc(s0, Arc{In: 2, Out: 2, Weight: 0, Next: b})
	f.AddArc(a, Arc{In: 3, Out: 3, Weight: 1, Next: af})
	f.AddArc(b, Arc{In: 3, Out: 3, Weight: 2, Next: bf})
	f.SetFinal(af, 0)
	f.SetFinal(bf, 0)

	m := Minimize(f)
	if w, ok := evalDfa(m, []int{1, 3}); !ok || w != 1 {
		t.Errorf("expected 1 3 at weight 1, got %v %v", w, ok)
	}
	if w, ok := evalDfa(m, []int{2, 3}); !ok || w != 2 {
		t.Errorf("expected 2 3 at weight 2, got %v %v", w, ok)
	}
}
