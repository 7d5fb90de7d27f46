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

// Iterator is a structure for enumerating the accepted strings of an
// Automaton in lexicographic order, up to a maximum length.
// Iterators should be constructed with the Iterator method on the
// parent Automaton.
type Iterator struct {
	a         *Automaton
	maxLength int

	statesStack []iterFrame
	keysStack   []int
	started     bool
}

type iterFrame struct {
	state int
	arc   int
}

// Iterator returns an iterator over all accepted strings of length at
// most maxLength, in lexicographic order of their symbol codes.
func (a *Automaton) Iterator(maxLength int) *Iterator {
	return &Iterator{
		a:         a,
		maxLength: maxLength,
	}
}

// Next returns the next accepted string, or ErrIteratorDone once the
// language has been exhausted.
func (i *Iterator) Next() (string, error) {
	if !i.started {
		i.started = true
		if i.a.dfa.Empty() {
			return "", ErrIteratorDone
		}
		start := i.a.dfa.Start()
		i.statesStack = append(i.statesStack, iterFrame{state: start})
		if i.a.dfa.IsFinal(start) {
			return "", nil
		}
	}

	for len(i.statesStack) > 0 {
		top := &i.statesStack[len(i.statesStack)-1]
		arcs := i.a.dfa.Arcs(top.state)
		if len(i.keysStack) < i.maxLength && top.arc < len(arcs) {
			a := arcs[top.arc]
			top.arc++
			i.keysStack = append(i.keysStack, a.In)
			i.statesStack = append(i.statesStack, iterFrame{state: a.Next})
			if i.a.dfa.IsFinal(a.Next) {
				return i.a.alphabet.Decode(i.keysStack), nil
			}
			continue
		}
		i.statesStack = i.statesStack[:len(i.statesStack)-1]
		if len(i.keysStack) > 0 {
			i.keysStack = i.keysStack[:len(i.keysStack)-1]
		}
	}
	return "", ErrIteratorDone
}
