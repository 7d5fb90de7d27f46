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
	"math/rand"
	"testing"
)

func TestStrategySelection(t *testing.T) {
	a, err := NewAlphabet("ab")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}

	scalar := UnitCosts(a)
	pairwise, err := NewCostModel(a, &CostOpts{
		SubstituteFunc: func(x, y rune) float64 { return 2 },
	})
	if err != nil {
		t.Fatalf("error building cost model: %v", err)
	}

	tests := []struct {
		desc         string
		cm           *CostModel
		strategy     Strategy
		wantErr      error
		wantFactored bool
	}{
		{
			desc:         "auto picks factored for scalar costs",
			cm:           scalar,
			strategy:     StrategyAuto,
			wantFactored: true,
		},
		{
			desc:         "auto falls back to direct for pairwise costs",
			cm:           pairwise,
			strategy:     StrategyAuto,
			wantFactored: false,
		},
		{
			desc:         "direct always available",
			cm:           scalar,
			strategy:     StrategyDirect,
			wantFactored: false,
		},
		{
			desc:         "factored on scalar costs",
			cm:           scalar,
			strategy:     StrategyFactored,
			wantFactored: true,
		},
		{
			desc:     "factored rejected for pairwise costs",
			cm:       pairwise,
			strategy: StrategyFactored,
			wantErr:  ErrUnsupportedCostShape,
		},
	}
	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			tr, err := NewEditTransducer(test.cm, test.strategy)
			if err != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
			if err != nil {
				return
			}
			if tr.Factored() != test.wantFactored {
				t.Errorf("expected factored %t, got %t", test.wantFactored, tr.Factored())
			}
		})
	}
}

func TestFactoredMatchesDirect(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	cm, err := NewCostModel(a, &CostOpts{
		Insert:     func(rune) float64 { return 1.5 },
		Delete:     func(rune) float64 { return 0.75 },
		Substitute: 2,
	})
	if err != nil {
		t.Fatalf("error building cost model: %v", err)
	}
	direct, err := NewEditTransducer(cm, StrategyDirect)
	if err != nil {
		t.Fatalf("error building direct transducer: %v", err)
	}
	factored, err := NewEditTransducer(cm, StrategyFactored)
	if err != nil {
		t.Fatalf("error building factored transducer: %v", err)
	}

	rnd := rand.New(rand.NewSource(21))
	for i := 0; i < 100; i++ {
		s1 := randomString(rnd, "abc", 6)
		s2 := randomString(rnd, "abc", 6)
		dd, err := direct.Distance(s1, s2)
		if err != nil {
			t.Fatalf("error computing direct distance: %v", err)
		}
		df, err := factored.Distance(s1, s2)
		if err != nil {
			t.Fatalf("error computing factored distance: %v", err)
		}
		if dd != df {
			t.Errorf("distance(%q, %q): direct %v, factored %v", s1, s2, dd, df)
		}
	}
}

func TestPairwiseSubstitutionCosts(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	// a<->b are near neighbors, everything else is far
	cm, err := NewCostModel(a, &CostOpts{
		SubstituteFunc: func(x, y rune) float64 {
			if (x == 'a' && y == 'b') || (x == 'b' && y == 'a') {
				return 0.25
			}
			return 10
		},
	})
	if err != nil {
		t.Fatalf("error building cost model: %v", err)
	}
	tr, err := NewEditTransducer(cm, StrategyAuto)
	if err != nil {
		t.Fatalf("error building transducer: %v", err)
	}
	if tr.Factored() {
		t.Fatalf("expected direct strategy for pairwise costs")
	}

	d, err := tr.Distance("aa", "bb")
	if err != nil {
		t.Fatalf("error computing distance: %v", err)
	}
	if d != 0.5 {
		t.Errorf("expected 0.5, got %v", d)
	}
	// a->c substitution at 10 loses to delete a, insert c at 2
	d, err = tr.Distance("a", "c")
	if err != nil {
		t.Fatalf("error computing distance: %v", err)
	}
	if d != 2 {
		t.Errorf("expected 2, got %v", d)
	}
}

func TestFreeSubstitution(t *testing.T) {
	// zero-cost substitutions collapse distance to the length gap
	a, err := NewAlphabet("ab")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	cm, err := NewCostModel(a, &CostOpts{Substitute: 0})
	if err != nil {
		t.Fatalf("error building cost model: %v", err)
	}
	for _, strategy := range []Strategy{StrategyDirect, StrategyFactored} {
		tr, err := NewEditTransducer(cm, strategy)
		if err != nil {
			t.Fatalf("error building transducer: %v", err)
		}
		d, err := tr.Distance("aaaa", "bb")
		if err != nil {
			t.Fatalf("error computing distance: %v", err)
		}
		if d != 2 {
			t.Errorf("expected 2, got %v", d)
		}
	}
}
