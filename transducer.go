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
	"github.com/couchbase/editfst/wfst"
)

// Strategy selects how the edit transducer realizes the substitution
// relation.
type Strategy int

const (
	// StrategyAuto uses the factored construction whenever the cost
	// model permits it, falling back to direct construction.
	StrategyAuto Strategy = iota

	// StrategyDirect materializes one arc per unequal symbol pair,
	// O(|alphabet|^2) arcs.  Always available; reference semantics.
	StrategyDirect

	// StrategyFactored routes substitutions through a marker label,
	// O(|alphabet|) arcs per factor.  Requires a scalar substitution
	// cost.
	StrategyFactored
)

// EditTransducer is a weighted transducer relating any two strings
// over its alphabet through insertion, deletion, substitution and
// identity arcs.  It is immutable once built and safe for concurrent
// use by any number of distance and automaton queries.
type EditTransducer struct {
	cm   *CostModel
	semi wfst.Semiring

	// direct realization, or the two factors
	direct *wfst.FST
	left   *wfst.FST
	right  *wfst.FST
}

// NewEditTransducer realizes the cost model as a weighted transducer
// using the given strategy.  Returns ErrUnsupportedCostShape if
// StrategyFactored is requested for a model whose substitution cost
// is not a single scalar.
func NewEditTransducer(cm *CostModel, strategy Strategy) (*EditTransducer, error) {
	t := &EditTransducer{
		cm:   cm,
		semi: wfst.Tropical{},
	}
	switch strategy {
	case StrategyAuto:
		if cm.Factorable() {
			t.buildFactored()
		} else {
			t.buildDirect()
		}
	case StrategyDirect:
		t.buildDirect()
	case StrategyFactored:
		if !cm.Factorable() {
			return nil, ErrUnsupportedCostShape
		}
		t.buildFactored()
	}
	return t, nil
}

// NewLevenshtein is shorthand for a unit-cost edit transducer over
// the runes of symbols.
func NewLevenshtein(symbols string) (*EditTransducer, error) {
	a, err := NewAlphabet(symbols)
	if err != nil {
		return nil, err
	}
	return NewEditTransducer(UnitCosts(a), StrategyAuto)
}

// CostModel returns the cost model the transducer was built from.
func (t *EditTransducer) CostModel() *CostModel {
	return t.cm
}

// Factored reports whether the two-factor construction is in use.
func (t *EditTransducer) Factored() bool {
	return t.direct == nil
}

// buildDirect materializes the one-state machine: identity, deletion
// and insertion self loops plus one substitution arc per unequal
// symbol pair.
func (t *EditTransducer) buildDirect() {
	f := wfst.NewFST(t.semi)
	s := f.AddState()
	f.SetStart(s)
	f.SetFinal(s, t.semi.One())
	for _, a := range t.cm.alphabet.symbolCodes() {
		f.AddArc(s, wfst.Arc{In: a, Out: a, Weight: t.semi.One(), Next: s})
		f.AddArc(s, wfst.Arc{In: a, Out: wfst.Epsilon, Weight: t.cm.DeleteCost(a), Next: s})
		f.AddArc(s, wfst.Arc{In: wfst.Epsilon, Out: a, Weight: t.cm.InsertCost(a), Next: s})
		for _, b := range t.cm.alphabet.symbolCodes() {
			if a == b {
				continue
			}
			f.AddArc(s, wfst.Arc{In: a, Out: b, Weight: t.cm.SubstituteCost(a, b), Next: s})
		}
	}
	t.direct = f
}

// buildFactored builds the two factors of the substitution relation.
// The left factor consumes an input symbol and emits either the
// symbol itself, epsilon (deletion) or the marker (substitution, full
// cost); the right factor emits an output symbol from the marker at
// no further cost, inserts, or passes identity through.  Their
// composition is tropical-weight-equivalent to the direct machine:
// the marker path from a symbol back to itself costs the substitution
// scalar and is dominated by the free identity arc.
func (t *EditTransducer) buildFactored() {
	marker := t.cm.alphabet.Size() + 1

	left := wfst.NewFST(t.semi)
	ls := left.AddState()
	left.SetStart(ls)
	left.SetFinal(ls, t.semi.One())
	for _, a := range t.cm.alphabet.symbolCodes() {
		left.AddArc(ls, wfst.Arc{In: a, Out: a, Weight: t.semi.One(), Next: ls})
		left.AddArc(ls, wfst.Arc{In: a, Out: wfst.Epsilon, Weight: t.cm.DeleteCost(a), Next: ls})
		left.AddArc(ls, wfst.Arc{In: a, Out: marker, Weight: t.cm.sub, Next: ls})
	}

	right := wfst.NewFST(t.semi)
	rs := right.AddState()
	right.SetStart(rs)
	right.SetFinal(rs, t.semi.One())
	for _, b := range t.cm.alphabet.symbolCodes() {
		right.AddArc(rs, wfst.Arc{In: b, Out: b, Weight: t.semi.One(), Next: rs})
		right.AddArc(rs, wfst.Arc{In: wfst.Epsilon, Out: b, Weight: t.cm.InsertCost(b), Next: rs})
		right.AddArc(rs, wfst.Arc{In: marker, Out: b, Weight: t.semi.One(), Next: rs})
	}

	t.left = left
	t.right = right
}

// lattice composes acceptor(s1) with the edit machine and
// acceptor(s2), yielding the weighted machine of all alignments
// between the two code sequences.
func (t *EditTransducer) lattice(s1, s2 []int) *wfst.FST {
	in := wfst.LinearAcceptor(t.semi, s1)
	out := wfst.LinearAcceptor(t.semi, s2)
	if t.direct != nil {
		return wfst.Compose(wfst.Compose(in, t.direct), out)
	}
	li := wfst.Compose(in, t.left)
	lo := wfst.Compose(t.right, out)
	return wfst.Compose(li, lo)
}

// latticeToAll composes acceptor(s) with the edit machine and the
// universal acceptor over the alphabet, yielding the weighted machine
// relating s to every string.
func (t *EditTransducer) latticeToAll(s []int) *wfst.FST {
	in := wfst.LinearAcceptor(t.semi, s)
	all := wfst.SigmaStar(t.semi, t.cm.alphabet.symbolCodes())
	if t.direct != nil {
		return wfst.Compose(wfst.Compose(in, t.direct), all)
	}
	li := wfst.Compose(in, t.left)
	lo := wfst.Compose(t.right, all)
	return wfst.Compose(li, lo)
}
