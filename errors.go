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

import "fmt"

// ErrEmptyAlphabet is returned when constructing an alphabet or cost
// model over an empty symbol set.
var ErrEmptyAlphabet = fmt.Errorf("alphabet is empty")

// ErrInvalidCost is returned at cost-model construction when any
// insertion, deletion or substitution cost is negative.  It is never
// raised later.
var ErrInvalidCost = fmt.Errorf("edit costs must be non-negative")

// ErrUnsupportedCostShape is returned when the factored construction
// strategy is requested for a cost model whose substitution cost is
// not a single scalar.
var ErrUnsupportedCostShape = fmt.Errorf("substitution cost is not factorable")

// ErrInvalidSymbol is returned when a query string contains a symbol
// outside the configured alphabet.  The shared transducer remains
// usable for subsequent queries.
var ErrInvalidSymbol = fmt.Errorf("symbol outside the alphabet")

// ErrInvalidThreshold is returned when a negative maximum distance is
// supplied to automaton construction.
var ErrInvalidThreshold = fmt.Errorf("maximum distance must be non-negative")

// ErrEmptyLattice is returned when a composition that should relate
// the operands produces an empty machine, e.g. matching against an
// empty lexicon.
var ErrEmptyLattice = fmt.Errorf("lattice is empty")

// StateLimit is the maximum number of pruned-expansion states allowed
// while building a bounded-distance automaton.
const StateLimit = 10000

// ErrTooManyStates is returned if you attempt to build an automaton
// which requires too many states.
var ErrTooManyStates = fmt.Errorf("automaton contains more than %d states", StateLimit)

// ErrIteratorDone is returned by an automaton iterator once all
// accepted strings have been enumerated.
var ErrIteratorDone = fmt.Errorf("iterator is done")
