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

func TestNewAlphabet(t *testing.T) {
	a, err := NewAlphabet("abcabc")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	if a.Size() != 3 {
		t.Errorf("expected size 3, got %d", a.Size())
	}
	// codes are dense, stable, first-appearance ordered
	for i, r := range "abc" {
		c, ok := a.Code(r)
		if !ok {
			t.Fatalf("expected %q in alphabet", r)
		}
		if c != i+1 {
			t.Errorf("expected code %d for %q, got %d", i+1, r, c)
		}
		if a.Rune(c) != r {
			t.Errorf("expected rune %q for code %d, got %q", r, c, a.Rune(c))
		}
	}
	if _, ok := a.Code('z'); ok {
		t.Errorf("expected z outside the alphabet")
	}
}

func TestNewAlphabetEmpty(t *testing.T) {
	if _, err := NewAlphabet(""); err != ErrEmptyAlphabet {
		t.Errorf("expected ErrEmptyAlphabet, got %v", err)
	}
}

func TestAlphabetUnicode(t *testing.T) {
	a, err := NewAlphabet("héllo")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	if a.Size() != 4 {
		t.Errorf("expected size 4, got %d", a.Size())
	}
	codes, err := a.Encode("héllo")
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if got := a.Decode(codes); got != "héllo" {
		t.Errorf("expected round trip, got %q", got)
	}
}

func TestAlphabetOf(t *testing.T) {
	a, err := AlphabetOf("kitten", "sitting")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	for _, r := range "kitensg" {
		if _, ok := a.Code(r); !ok {
			t.Errorf("expected %q in alphabet", r)
		}
	}
	if a.Size() != 7 {
		t.Errorf("expected size 7, got %d", a.Size())
	}
}

func TestEncodeDecode(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("error building alphabet: %v", err)
	}
	codes, err := a.Encode("cab")
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if !reflect.DeepEqual(codes, []int{3, 1, 2}) {
		t.Errorf("unexpected codes: %v", codes)
	}
	if _, err := a.Encode("abz"); err != ErrInvalidSymbol {
		t.Errorf("expected ErrInvalidSymbol, got %v", err)
	}
	// epsilon is skipped on decode
	if got := a.Decode([]int{0, 3, 0, 1, 2, 0}); got != "cab" {
		t.Errorf("expected %q, got %q", "cab", got)
	}
	codes, err = a.Encode("")
	if err != nil {
		t.Fatalf("error encoding empty string: %v", err)
	}
	if len(codes) != 0 {
		t.Errorf("expected no codes, got %v", codes)
	}
}
