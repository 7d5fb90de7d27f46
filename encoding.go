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
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	mmap "github.com/blevesearch/mmap-go"

	"github.com/couchbase/editfst/wfst"
)

const versionV1 = 1
const headerSize = 16

// Save writes a versioned binary image of the automaton: a 16-byte
// header carrying the format version and the distance threshold,
// followed by the alphabet and the state table.
func (a *Automaton) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)

	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint64(header, versionV1)
	binary.LittleEndian.PutUint64(header[8:], math.Float64bits(a.maxDistance))
	if _, err := bw.Write(header); err != nil {
		return err
	}

	var scratch [binary.MaxVarintLen64]byte
	writeUvarint := func(v uint64) error {
		n := binary.PutUvarint(scratch[:], v)
		_, err := bw.Write(scratch[:n])
		return err
	}
	writeWeight := func(f float64) error {
		binary.LittleEndian.PutUint64(scratch[:8], math.Float64bits(f))
		_, err := bw.Write(scratch[:8])
		return err
	}

	if err := writeUvarint(uint64(a.alphabet.Size())); err != nil {
		return err
	}
	for _, r := range a.alphabet.runes {
		if err := writeUvarint(uint64(r)); err != nil {
			return err
		}
	}

	n := a.dfa.NumStates()
	if err := writeUvarint(uint64(n)); err != nil {
		return err
	}
	if err := writeUvarint(uint64(a.dfa.Start() + 1)); err != nil {
		return err
	}
	for s := 0; s < n; s++ {
		var flags byte
		if a.dfa.IsFinal(s) {
			flags |= 1
		}
		if err := bw.WriteByte(flags); err != nil {
			return err
		}
		if a.dfa.IsFinal(s) {
			if err := writeWeight(a.dfa.FinalWeight(s)); err != nil {
				return err
			}
		}
		arcs := a.dfa.Arcs(s)
		if err := writeUvarint(uint64(len(arcs))); err != nil {
			return err
		}
		for _, arc := range arcs {
			if err := writeUvarint(uint64(arc.In)); err != nil {
				return err
			}
			if err := writeUvarint(uint64(arc.Next)); err != nil {
				return err
			}
			if err := writeWeight(arc.Weight); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

type decodeBuf struct {
	data []byte
	pos  int
}

func (d *decodeBuf) uvarint() (uint64, error) {
	v, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("truncated automaton image")
	}
	d.pos += n
	return v, nil
}

func (d *decodeBuf) weight() (float64, error) {
	if d.pos+8 > len(d.data) {
		return 0, fmt.Errorf("truncated automaton image")
	}
	v := binary.LittleEndian.Uint64(d.data[d.pos:])
	d.pos += 8
	return math.Float64frombits(v), nil
}

func (d *decodeBuf) byte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("truncated automaton image")
	}
	b := d.data[d.pos]
	d.pos++
	return b, nil
}

// Load decodes an automaton image produced by Save.
func Load(data []byte) (*Automaton, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("automaton image too short")
	}
	version := binary.LittleEndian.Uint64(data)
	if version != versionV1 {
		return nil, fmt.Errorf("no decoder for version %d registered", version)
	}
	maxDistance := math.Float64frombits(binary.LittleEndian.Uint64(data[8:]))

	d := &decodeBuf{data: data, pos: headerSize}

	nsyms, err := d.uvarint()
	if err != nil {
		return nil, err
	}
	runes := make([]rune, 0, nsyms)
	for i := uint64(0); i < nsyms; i++ {
		r, err := d.uvarint()
		if err != nil {
			return nil, err
		}
		runes = append(runes, rune(r))
	}
	alphabet, err := NewAlphabet(string(runes))
	if err != nil {
		return nil, err
	}

	numStates, err := d.uvarint()
	if err != nil {
		return nil, err
	}
	startPlus1, err := d.uvarint()
	if err != nil {
		return nil, err
	}

	dfa := wfst.NewFST(wfst.Tropical{})
	for i := uint64(0); i < numStates; i++ {
		dfa.AddState()
	}
	dfa.SetStart(int(startPlus1) - 1)
	for s := 0; s < int(numStates); s++ {
		flags, err := d.byte()
		if err != nil {
			return nil, err
		}
		if flags&1 != 0 {
			w, err := d.weight()
			if err != nil {
				return nil, err
			}
			dfa.SetFinal(s, w)
		}
		numArcs, err := d.uvarint()
		if err != nil {
			return nil, err
		}
		for j := uint64(0); j < numArcs; j++ {
			in, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			next, err := d.uvarint()
			if err != nil {
				return nil, err
			}
			w, err := d.weight()
			if err != nil {
				return nil, err
			}
			dfa.AddArc(s, wfst.Arc{In: int(in), Out: int(in), Weight: w, Next: int(next)})
		}
	}

	return &Automaton{
		alphabet:    alphabet,
		dfa:         dfa,
		maxDistance: maxDistance,
	}, nil
}

type mmapCloser struct {
	mm mmap.MMap
	f  *os.File
}

func (m *mmapCloser) Close() error {
	if err := m.mm.Unmap(); err != nil {
		return err
	}
	return m.f.Close()
}

// Open maps the file at the given path into memory and decodes the
// automaton image found there.  The returned Automaton owns the
// mapping; you MUST call Close on it.
func Open(path string) (*Automaton, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	rv, err := Load(mm)
	if err != nil {
		mm.Unmap()
		f.Close()
		return nil, err
	}
	rv.closer = &mmapCloser{mm: mm, f: f}
	return rv, nil
}
