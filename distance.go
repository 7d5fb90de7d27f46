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

import "github.com/couchbase/editfst/wfst"

// Op identifies one kind of edit operation.
type Op int

const (
	// OpMatch consumes a symbol and reproduces it at no cost.
	OpMatch Op = iota

	// OpSubstitute rewrites one symbol as another.
	OpSubstitute

	// OpInsert produces a symbol from nothing.
	OpInsert

	// OpDelete consumes a symbol producing nothing.
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpMatch:
		return "match"
	case OpSubstitute:
		return "substitute"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// EditOp is one step of an alignment.  From is the zero rune for
// insertions, To for deletions.
type EditOp struct {
	Op   Op
	From rune
	To   rune
}

// Distance returns the minimum total edit cost transforming s1 into
// s2 under the transducer's cost model.  Returns ErrInvalidSymbol if
// either string contains a rune outside the alphabet; the error is
// local to this query.
func (t *EditTransducer) Distance(s1, s2 string) (float64, error) {
	c1, err := t.cm.alphabet.Encode(s1)
	if err != nil {
		return 0, err
	}
	c2, err := t.cm.alphabet.Encode(s2)
	if err != nil {
		return 0, err
	}
	lattice := t.lattice(c1, c2)
	if lattice.Empty() {
		return 0, ErrEmptyLattice
	}
	return wfst.ShortestDistance(lattice), nil
}

// Alignment returns the minimum edit cost together with one cheapest
// ordered operation sequence.  When several minimal alignments exist
// the choice is deterministic but unspecified.  Note that if the
// substitution cost exceeds insertion plus deletion for a pair, the
// cheapest path replaces the substitution with a combined arc, which
// is still reported as OpSubstitute.
func (t *EditTransducer) Alignment(s1, s2 string) (float64, []EditOp, error) {
	c1, err := t.cm.alphabet.Encode(s1)
	if err != nil {
		return 0, nil, err
	}
	c2, err := t.cm.alphabet.Encode(s2)
	if err != nil {
		return 0, nil, err
	}
	lattice := t.lattice(c1, c2)
	arcs, weight, ok := wfst.ShortestPath(lattice)
	if !ok {
		return 0, nil, ErrEmptyLattice
	}

	ops := make([]EditOp, 0, len(arcs))
	for _, a := range arcs {
		switch {
		case a.In == wfst.Epsilon && a.Out == wfst.Epsilon:
			// filter bookkeeping arc, nothing consumed or produced
		case a.In == wfst.Epsilon:
			ops = append(ops, EditOp{Op: OpInsert, To: t.cm.alphabet.Rune(a.Out)})
		case a.Out == wfst.Epsilon:
			ops = append(ops, EditOp{Op: OpDelete, From: t.cm.alphabet.Rune(a.In)})
		case a.In == a.Out:
			ops = append(ops, EditOp{Op: OpMatch, From: t.cm.alphabet.Rune(a.In), To: t.cm.alphabet.Rune(a.Out)})
		default:
			ops = append(ops, EditOp{Op: OpSubstitute, From: t.cm.alphabet.Rune(a.In), To: t.cm.alphabet.Rune(a.Out)})
		}
	}
	return weight, ops, nil
}
