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

package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/couchbase/editfst"
)

var alphabetFlag string
var dotPath string
var savePath string

var automatonCmd = &cobra.Command{
	Use:   "automaton",
	Short: "Builds a bounded-distance automaton and tests words against it.",
	Long: `Builds the automaton accepting every string within the given distance
of the source string, then reports membership for each word argument.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("source string and distance required")
		}
		if _, err := strconv.ParseFloat(args[1], 64); err != nil {
			return fmt.Errorf("invalid distance: %v", args[1])
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		maxDistance, _ := strconv.ParseFloat(args[1], 64)
		words := args[2:]

		symbols := alphabetFlag
		if symbols == "" {
			all := args[0]
			for _, w := range words {
				all += w
			}
			symbols = all
		}
		alphabet, err := editfst.NewAlphabet(symbols)
		if err != nil {
			return err
		}
		cm, err := editfst.NewCostModel(alphabet, &editfst.CostOpts{
			Insert:     func(rune) float64 { return insertCost },
			Delete:     func(rune) float64 { return deleteCost },
			Substitute: substituteCost,
		})
		if err != nil {
			return err
		}
		t, err := editfst.NewEditTransducer(cm, editfst.StrategyAuto)
		if err != nil {
			return err
		}
		a, err := t.BuildAutomaton(args[0], maxDistance)
		if err != nil {
			return err
		}
		fmt.Printf("%d states\n", a.NumStates())

		for _, w := range words {
			if d, ok := a.EvalDistance(w); ok {
				fmt.Printf("%s\taccepted (%g)\n", w, d)
			} else {
				fmt.Printf("%s\trejected\n", w)
			}
		}

		if dotPath != "" {
			file, err := os.Create(dotPath)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := editfst.ExportDot(a, file); err != nil {
				return err
			}
		}
		if savePath != "" {
			file, err := os.Create(savePath)
			if err != nil {
				return err
			}
			defer file.Close()
			if err := a.Save(file); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	automatonCmd.Flags().StringVar(&alphabetFlag, "alphabet", "", "alphabet symbols (default: runes of the arguments)")
	automatonCmd.Flags().StringVar(&dotPath, "dot", "", "write the GraphViz form to this path")
	automatonCmd.Flags().StringVar(&savePath, "save", "", "write the binary automaton image to this path")
	RootCmd.AddCommand(automatonCmd)
}
