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

// Alphabet maps the runes of a finite symbol set to stable dense
// integer codes.  Code 0 is reserved for epsilon; symbol codes start
// at 1.  An Alphabet is immutable once constructed and may be shared
// freely.
type Alphabet struct {
	runes []rune
	codes map[rune]int
}

// NewAlphabet builds an alphabet from the distinct runes of symbols,
// in first-appearance order.  Duplicates are collapsed.  Returns
// ErrEmptyAlphabet if symbols contains no runes.
func NewAlphabet(symbols string) (*Alphabet, error) {
	a := &Alphabet{
		codes: make(map[rune]int),
	}
	for _, r := range symbols {
		if _, ok := a.codes[r]; ok {
			continue
		}
		a.runes = append(a.runes, r)
		a.codes[r] = len(a.runes)
	}
	if len(a.runes) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return a, nil
}

// AlphabetOf builds the alphabet covering every rune appearing in any
// of the given strings.
func AlphabetOf(ss ...string) (*Alphabet, error) {
	var all []rune
	for _, s := range ss {
		all = append(all, []rune(s)...)
	}
	return NewAlphabet(string(all))
}

// Size returns the number of symbols, excluding epsilon.
func (a *Alphabet) Size() int {
	return len(a.runes)
}

// Code returns the code for r, or false if r is not in the alphabet.
func (a *Alphabet) Code(r rune) (int, bool) {
	c, ok := a.codes[r]
	return c, ok
}

// Rune returns the rune for a symbol code.  It panics on code 0
// (epsilon) or an out-of-range code.
func (a *Alphabet) Rune(code int) rune {
	return a.runes[code-1]
}

// Encode tokenizes s into symbol codes.  Returns ErrInvalidSymbol if
// s contains a rune outside the alphabet.
func (a *Alphabet) Encode(s string) ([]int, error) {
	codes := make([]int, 0, len(s))
	for _, r := range s {
		c, ok := a.codes[r]
		if !ok {
			return nil, ErrInvalidSymbol
		}
		codes = append(codes, c)
	}
	return codes, nil
}

// Decode maps symbol codes back to a string, skipping epsilon.
func (a *Alphabet) Decode(codes []int) string {
	rs := make([]rune, 0, len(codes))
	for _, c := range codes {
		if c == 0 {
			continue
		}
		rs = append(rs, a.runes[c-1])
	}
	return string(rs)
}

// symbolCodes returns all symbol codes, 1..Size.
func (a *Alphabet) symbolCodes() []int {
	codes := make([]int, len(a.runes))
	for i := range codes {
		codes[i] = i + 1
	}
	return codes
}
