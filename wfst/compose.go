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

// Composition uses the standard three-state epsilon-sequencing
// filter, so that epsilon labels on the output side of the left
// machine and the input side of the right machine are matched without
// generating redundant interleaved epsilon paths.
//
// Filter states: 0 may take any move; 1 only left-alone epsilon moves
// or a real match; 2 only right-alone epsilon moves or a real match.
// The joint epsilon move is permitted from state 0 only.
const (
	filterAny = iota
	filterLeftEps
	filterRightEps
)

type composeKey struct {
	left   int
	right  int
	filter byte
}

// Compose returns the composition a ∘ b: a path for input x and
// output z exists iff a maps x to some y and b maps y to z, with the
// path weight the semiring product of the two.  Both operands must
// share the semiring of a.
func Compose(a, b *FST) *FST {
	semi := a.semi
	out := NewFST(semi)
	if a.Empty() || b.Empty() {
		return out
	}

	index := make(map[composeKey]int)
	var queue []composeKey

	discover := func(k composeKey) int {
		if s, ok := index[k]; ok {
			return s
		}
		s := out.AddState()
		index[k] = s
		queue = append(queue, k)
		if a.IsFinal(k.left) && b.IsFinal(k.right) {
			out.SetFinal(s, semi.Times(a.FinalWeight(k.left), b.FinalWeight(k.right)))
		}
		return s
	}

	startKey := composeKey{left: a.Start(), right: b.Start(), filter: filterAny}
	out.SetStart(discover(startKey))

	for len(queue) > 0 {
		k := queue[0]
		queue = queue[1:]
		src := index[k]

		leftArcs := a.Arcs(k.left)
		rightArcs := b.Arcs(k.right)

		for i := range leftArcs {
			la := &leftArcs[i]
			if la.Out == Epsilon {
				// left moves alone
				if k.filter != filterRightEps {
					dst := discover(composeKey{left: la.Next, right: k.right, filter: filterLeftEps})
					out.AddArc(src, Arc{In: la.In, Out: Epsilon, Weight: la.Weight, Next: dst})
				}
				// joint epsilon move
				if k.filter == filterAny {
					for j := range rightArcs {
						ra := &rightArcs[j]
						if ra.In != Epsilon {
							continue
						}
						dst := discover(composeKey{left: la.Next, right: ra.Next, filter: filterAny})
						out.AddArc(src, Arc{
							In:     la.In,
							Out:    ra.Out,
							Weight: semi.Times(la.Weight, ra.Weight),
							Next:   dst,
						})
					}
				}
				continue
			}
			// real match
			for j := range rightArcs {
				ra := &rightArcs[j]
				if ra.In != la.Out {
					continue
				}
				dst := discover(composeKey{left: la.Next, right: ra.Next, filter: filterAny})
				out.AddArc(src, Arc{
					In:     la.In,
					Out:    ra.Out,
					Weight: semi.Times(la.Weight, ra.Weight),
					Next:   dst,
				})
			}
		}

		// right moves alone
		if k.filter != filterLeftEps {
			for j := range rightArcs {
				ra := &rightArcs[j]
				if ra.In != Epsilon {
					continue
				}
				dst := discover(composeKey{left: k.left, right: ra.Next, filter: filterRightEps})
				out.AddArc(src, Arc{In: Epsilon, Out: ra.Out, Weight: ra.Weight, Next: dst})
			}
		}
	}

	out.Connect()
	return out
}
