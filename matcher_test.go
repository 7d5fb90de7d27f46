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
	"reflect"
	"testing"
)

func TestClosestMatch(t *testing.T) {
	tr := mustLevenshtein(t, "abcdefghijklmnopqrstuvwxyz")
	m, err := NewMatcher(tr, []string{"cat", "hat", "dog", "cart"})
	if err != nil {
		t.Fatalf("error building matcher: %v", err)
	}

	tests := []struct {
		query string
		want  string
		dist  float64
	}{
		{query: "cat", want: "cat", dist: 0},
		{query: "cab", want: "cat", dist: 1},
		{query: "dig", want: "dog", dist: 1},
		{query: "carts", want: "cart", dist: 1},
		{query: "", want: "cat", dist: 3},
	}
	for _, test := range tests {
		got, d, err := m.ClosestMatch(test.query)
		if err != nil {
			t.Fatalf("error matching %q: %v", test.query, err)
		}
		if d != test.dist {
			t.Errorf("match(%q): expected distance %v, got %v", test.query, test.dist, d)
		}
		if test.query != "" && got != test.want {
			t.Errorf("match(%q): expected %q, got %q", test.query, test.want, got)
		}
	}
}

func TestClosestMatches(t *testing.T) {
	tr := mustLevenshtein(t, "abcdefghijklmnopqrstuvwxyz")
	m, err := NewMatcher(tr, []string{"cat", "hat", "bat", "dog"})
	if err != nil {
		t.Fatalf("error building matcher: %v", err)
	}

	matches, d, err := m.ClosestMatches("rat")
	if err != nil {
		t.Fatalf("error matching: %v", err)
	}
	if d != 1 {
		t.Errorf("expected distance 1, got %v", d)
	}
	if !reflect.DeepEqual(matches, []string{"bat", "cat", "hat"}) {
		t.Errorf("unexpected matches: %v", matches)
	}

	matches, d, err = m.ClosestMatches("dog")
	if err != nil {
		t.Fatalf("error matching: %v", err)
	}
	if d != 0 {
		t.Errorf("expected distance 0, got %v", d)
	}
	if !reflect.DeepEqual(matches, []string{"dog"}) {
		t.Errorf("unexpected matches: %v", matches)
	}
}

func TestMatcherAgreesWithDistance(t *testing.T) {
	tr := mustLevenshtein(t, "abc")
	lexicon := []string{"abc", "cab", "bb", "aaab", "c"}
	m, err := NewMatcher(tr, lexicon)
	if err != nil {
		t.Fatalf("error building matcher: %v", err)
	}
	for _, query := range []string{"", "a", "ab", "cba", "bbbb", "abca"} {
		best := -1.0
		for _, w := range lexicon {
			d, err := tr.Distance(query, w)
			if err != nil {
				t.Fatalf("error computing distance: %v", err)
			}
			if best < 0 || d < best {
				best = d
			}
		}
		got, d, err := m.ClosestMatch(query)
		if err != nil {
			t.Fatalf("error matching %q: %v", query, err)
		}
		if d != best {
			t.Errorf("match(%q): expected distance %v, got %v (%q)", query, best, d, got)
		}
		dw, err := tr.Distance(query, got)
		if err != nil {
			t.Fatalf("error computing distance: %v", err)
		}
		if dw != d {
			t.Errorf("match(%q) returned %q at %v but its distance is %v", query, got, d, dw)
		}
	}
}

func TestMatcherInvalidInputs(t *testing.T) {
	tr := mustLevenshtein(t, "ab")
	if _, err := NewMatcher(tr, []string{"ab", "zz"}); err != ErrInvalidSymbol {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	m, err := NewMatcher(tr, []string{"ab"})
	if err != nil {
		t.Fatalf("error building matcher: %v", err)
	}
	if _, _, err := m.ClosestMatch("zz"); err != ErrInvalidSymbol {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
}

func TestMatcherEmptyLexicon(t *testing.T) {
	tr := mustLevenshtein(t, "ab")
	m, err := NewMatcher(tr, nil)
	if err != nil {
		t.Fatalf("error building matcher: %v", err)
	}
	if _, _, err := m.ClosestMatch("ab"); err != ErrEmptyLattice {
		t.Errorf("expected ErrEmptyLattice, got %v", err)
	}
	if _, _, err := m.ClosestMatches("ab"); err != ErrEmptyLattice {
		t.Errorf("expected ErrEmptyLattice, got %v", err)
	}
}
