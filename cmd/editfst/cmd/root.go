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
	"github.com/spf13/cobra"

	"github.com/couchbase/editfst"
)

var insertCost float64
var deleteCost float64
var substituteCost float64

// RootCmd is the root of the editfst command tree.
var RootCmd = &cobra.Command{
	Use:   "editfst",
	Short: "editfst computes weighted edit distances and bounded-distance automatons",
	Long:  `editfst computes weighted edit distances and bounded-distance automatons.`,
}

func init() {
	RootCmd.PersistentFlags().Float64Var(&insertCost, "insert", 1, "insertion cost")
	RootCmd.PersistentFlags().Float64Var(&deleteCost, "delete", 1, "deletion cost")
	RootCmd.PersistentFlags().Float64Var(&substituteCost, "substitute", 1, "substitution cost")
}

// transducerOver builds a transducer with the flag-configured costs
// over the runes of the given strings.
func transducerOver(ss ...string) (*editfst.EditTransducer, error) {
	alphabet, err := editfst.AlphabetOf(ss...)
	if err != nil {
		return nil, err
	}
	cm, err := editfst.NewCostModel(alphabet, &editfst.CostOpts{
		Insert:     func(rune) float64 { return insertCost },
		Delete:     func(rune) float64 { return deleteCost },
		Substitute: substituteCost,
	})
	if err != nil {
		return nil, err
	}
	return editfst.NewEditTransducer(cm, editfst.StrategyAuto)
}
