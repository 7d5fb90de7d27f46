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

// CostOpts configures per-operation edit costs.  A nil function falls
// back to unit cost for that operation.  Substitute is the scalar
// cost applied to every unequal symbol pair; SubstituteFunc, when
// set, overrides it with a full pairwise cost function and makes the
// model ineligible for the factored construction.
type CostOpts struct {
	Insert         func(r rune) float64
	Delete         func(r rune) float64
	Substitute     float64
	SubstituteFunc func(a, b rune) float64
}

var defaultCostOpts = &CostOpts{
	Substitute: 1,
}

// CostModel is an immutable realization of per-operation edit costs
// over an alphabet.  All costs are validated non-negative at
// construction; identity pairs cost 0 by convention (the pairwise
// substitution function is the generalized extension point and is not
// held to that convention).
type CostModel struct {
	alphabet *Alphabet
	insert   []float64 // indexed by symbol code - 1
	delete   []float64
	sub      float64
	subMat   [][]float64 // nil when the scalar form is in use
}

// UnitCosts returns the classic Levenshtein cost model: every
// insertion, deletion and substitution costs 1.
func UnitCosts(a *Alphabet) *CostModel {
	cm, _ := NewCostModel(a, nil)
	return cm
}

// NewCostModel validates opts against the alphabet and returns an
// immutable cost model.  A nil opts selects unit costs.  Returns
// ErrInvalidCost if any cost is negative.
func NewCostModel(a *Alphabet, opts *CostOpts) (*CostModel, error) {
	if opts == nil {
		opts = defaultCostOpts
	}
	cm := &CostModel{
		alphabet: a,
		insert:   make([]float64, a.Size()),
		delete:   make([]float64, a.Size()),
		sub:      opts.Substitute,
	}
	for i, r := range a.runes {
		cm.insert[i] = 1
		if opts.Insert != nil {
			cm.insert[i] = opts.Insert(r)
		}
		cm.delete[i] = 1
		if opts.Delete != nil {
			cm.delete[i] = opts.Delete(r)
		}
		if cm.insert[i] < 0 || cm.delete[i] < 0 {
			return nil, ErrInvalidCost
		}
	}
	if opts.SubstituteFunc != nil {
		cm.subMat = make([][]float64, a.Size())
		for i, ra := range a.runes {
			cm.subMat[i] = make([]float64, a.Size())
			for j, rb := range a.runes {
				if i == j {
					continue
				}
				c := opts.SubstituteFunc(ra, rb)
				if c < 0 {
					return nil, ErrInvalidCost
				}
				cm.subMat[i][j] = c
			}
		}
	} else if cm.sub < 0 {
		return nil, ErrInvalidCost
	}
	return cm, nil
}

// Alphabet returns the alphabet the model is defined over.
func (cm *CostModel) Alphabet() *Alphabet {
	return cm.alphabet
}

// InsertCost returns the cost of producing the symbol with the given
// code from nothing.
func (cm *CostModel) InsertCost(code int) float64 {
	return cm.insert[code-1]
}

// DeleteCost returns the cost of consuming the symbol with the given
// code while producing nothing.
func (cm *CostModel) DeleteCost(code int) float64 {
	return cm.delete[code-1]
}

// SubstituteCost returns the cost of rewriting symbol a as symbol b,
// for a != b.
func (cm *CostModel) SubstituteCost(a, b int) float64 {
	if cm.subMat != nil {
		return cm.subMat[a-1][b-1]
	}
	return cm.sub
}

// Factorable reports whether the substitution cost is a single scalar
// for all unequal pairs, which permits the two-factor construction.
func (cm *CostModel) Factorable() bool {
	return cm.subMat == nil
}
