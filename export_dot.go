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
	"bytes"
	"fmt"
	"io"
)

var dotHeader = `digraph g {
rankdir=LR
`

var dotFooter = `}
`

// ExportDot will export the contents of the provided Automaton into
// the GraphViz (dot) file format.
func ExportDot(a *Automaton, w io.Writer) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(dotHeader)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for s := 0; s < a.dfa.NumStates(); s++ {
		if a.dfa.IsFinal(s) {
			if fw := a.dfa.FinalWeight(s); fw != 0 {
				_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle label=\"%d (%g)\"]\n", s, s, fw))
			} else {
				_, _ = buf.WriteString(fmt.Sprintf("%d [shape=doublecircle]\n", s))
			}
		}
		for _, arc := range a.dfa.Arcs(s) {
			label := string(a.alphabet.Rune(arc.In))
			if arc.Weight != 0 {
				_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%s/%g\"]\n", s, arc.Next, label, arc.Weight))
			} else {
				_, _ = buf.WriteString(fmt.Sprintf("%d -> %d [label=\"%s\"]\n", s, arc.Next, label))
			}
		}
		_, _ = buf.WriteString("\n")
	}

	_, err = bw.Write(buf.Bytes())
	if err != nil {
		return err
	}

	_, err = bw.WriteString(dotFooter)
	if err != nil {
		return err
	}

	return bw.Flush()
}
