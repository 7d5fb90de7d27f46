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

// Semiring describes the algebra used to combine and compare path
// weights.  Plus chooses between alternative paths, Times extends a
// path by an arc, Zero is the weight of no path at all and One the
// weight of the empty path.  The shortest-distance algorithms require
// the semiring to be k-closed (for tropical, 0-closed), which holds
// whenever all arc weights are non-negative.
type Semiring interface {
	Plus(a, b float64) float64
	Times(a, b float64) float64
	Zero() float64
	One() float64

	// Less reports whether a is strictly better than b under the
	// semiring's natural order.
	Less(a, b float64) bool
}

// Tropical is the (min, +) semiring over the non-negative reals, the
// weight domain of edit distance.
type Tropical struct{}

// Plus returns the minimum of the two weights.
func (Tropical) Plus(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Times returns the sum of the two weights.
func (Tropical) Times(a, b float64) float64 {
	return a + b
}

// Zero returns positive infinity, the weight of no path.
func (Tropical) Zero() float64 {
	return math.Inf(1)
}

// One returns 0, the weight of the empty path.
func (Tropical) One() float64 {
	return 0
}

// Less reports whether a is a strictly smaller weight than b.
func (Tropical) Less(a, b float64) bool {
	return a < b
}
