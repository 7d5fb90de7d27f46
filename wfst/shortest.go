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
	"container/heap"

	"github.com/willf/bitset"
)

// ShortestDistance returns the semiring sum, over all accepting
// paths, of the path weight from the start state through a final
// state (final weight included).  Under the tropical semiring this is
// the cost of the cheapest accepting path.  The generic relaxation
// terminates whenever the semiring is k-closed over the FST's cycles,
// which holds for tropical weights when no cycle has negative weight.
func ShortestDistance(f *FST) float64 {
	semi := f.semi
	if f.Empty() {
		return semi.Zero()
	}

	n := f.NumStates()
	d := make([]float64, n)
	r := make([]float64, n)
	for i := range d {
		d[i] = semi.Zero()
		r[i] = semi.Zero()
	}
	d[f.Start()] = semi.One()
	r[f.Start()] = semi.One()

	queued := bitset.New(uint(n))
	queue := []int{f.Start()}
	queued.Set(uint(f.Start()))

	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		queued.Clear(uint(q))
		rq := r[q]
		r[q] = semi.Zero()
		for _, a := range f.Arcs(q) {
			w := semi.Times(rq, a.Weight)
			sum := semi.Plus(d[a.Next], w)
			if sum != d[a.Next] {
				d[a.Next] = sum
				r[a.Next] = semi.Plus(r[a.Next], w)
				if !queued.Test(uint(a.Next)) {
					queued.Set(uint(a.Next))
					queue = append(queue, a.Next)
				}
			}
		}
	}

	total := semi.Zero()
	for s := 0; s < n; s++ {
		if f.IsFinal(s) {
			total = semi.Plus(total, semi.Times(d[s], f.FinalWeight(s)))
		}
	}
	return total
}

type pathItem struct {
	state  int
	weight float64
	index  int
}

type pathHeap struct {
	items []*pathItem
	semi  Semiring
}

func (h *pathHeap) Len() int { return len(h.items) }

func (h *pathHeap) Less(i, j int) bool {
	return h.semi.Less(h.items[i].weight, h.items[j].weight)
}

func (h *pathHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.items[i].index = i
	h.items[j].index = j
}

func (h *pathHeap) Push(x interface{}) {
	item := x.(*pathItem)
	item.index = len(h.items)
	h.items = append(h.items, item)
}

func (h *pathHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]
	return item
}

// ShortestPath returns the arcs of one cheapest accepting path and
// its total weight.  Ties are broken by heap extraction order, which
// is deterministic for a fixed FST but otherwise unspecified.  All
// arc weights must be non-negative.  The second return is the path
// weight; ok is false if no accepting path exists.
func ShortestPath(f *FST) (arcs []Arc, weight float64, ok bool) {
	semi := f.semi
	if f.Empty() {
		return nil, semi.Zero(), false
	}

	n := f.NumStates()
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = semi.Zero()
	}
	type parent struct {
		state int
		arc   int
	}
	parents := make([]parent, n)
	for i := range parents {
		parents[i] = parent{state: NoState}
	}
	settled := bitset.New(uint(n))

	h := &pathHeap{semi: semi}
	dist[f.Start()] = semi.One()
	heap.Push(h, &pathItem{state: f.Start(), weight: semi.One()})

	for h.Len() > 0 {
		item := heap.Pop(h).(*pathItem)
		q := item.state
		if settled.Test(uint(q)) {
			continue
		}
		settled.Set(uint(q))
		for i, a := range f.Arcs(q) {
			w := semi.Times(dist[q], a.Weight)
			if semi.Less(w, dist[a.Next]) {
				dist[a.Next] = w
				parents[a.Next] = parent{state: q, arc: i}
				heap.Push(h, &pathItem{state: a.Next, weight: w})
			}
		}
	}

	best := NoState
	bestWeight := semi.Zero()
	for s := 0; s < n; s++ {
		if !f.IsFinal(s) {
			continue
		}
		w := semi.Times(dist[s], f.FinalWeight(s))
		if best == NoState || semi.Less(w, bestWeight) {
			best = s
			bestWeight = w
		}
	}
	if best == NoState {
		return nil, semi.Zero(), false
	}

	for s := best; parents[s].state != NoState; s = parents[s].state {
		arcs = append(arcs, f.Arcs(parents[s].state)[parents[s].arc])
	}
	for i, j := 0, len(arcs)-1; i < j; i, j = i+1, j-1 {
		arcs[i], arcs[j] = arcs[j], arcs[i]
	}
	return arcs, bestWeight, true
}
