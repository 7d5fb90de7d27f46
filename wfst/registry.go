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

import "math"

// weightedSubset is a determinization state: a set of substrate
// states with residual weights, kept sorted by state id.
type weightedSubset []weightedPair

type weightedPair struct {
	state    int
	residual float64
}

func (ws weightedSubset) equiv(o weightedSubset) bool {
	if len(ws) != len(o) {
		return false
	}
	for i := range ws {
		if ws[i].state != o[i].state || ws[i].residual != o[i].residual {
			return false
		}
	}
	return true
}

const fnvPrime = 1099511628211

func (ws weightedSubset) hash() uint64 {
	var h uint64 = 14695981039346656037
	for _, p := range ws {
		h ^= uint64(p.state) * fnvPrime
		h ^= math.Float64bits(p.residual) * fnvPrime
	}
	return h
}

type subsetEntry struct {
	subset weightedSubset
	id     int
}

// subsetRegistry interns weighted subsets, assigning each distinct
// subset a dense result-state id.
type subsetRegistry struct {
	table map[uint64][]subsetEntry
}

func newSubsetRegistry() *subsetRegistry {
	return &subsetRegistry{table: make(map[uint64][]subsetEntry)}
}

// entry returns the id for the subset and whether it was already
// registered.  nextID is used for a subset seen for the first time.
func (r *subsetRegistry) entry(ws weightedSubset, nextID int) (int, bool) {
	h := ws.hash()
	for _, e := range r.table[h] {
		if e.subset.equiv(ws) {
			return e.id, true
		}
	}
	r.table[h] = append(r.table[h], subsetEntry{subset: ws, id: nextID})
	return nextID, false
}
