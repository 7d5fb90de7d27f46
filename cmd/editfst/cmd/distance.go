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

	"github.com/spf13/cobra"
)

var align bool

var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Computes the edit distance between two strings.",
	Long:  `Computes the edit distance between two strings.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("two strings required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := transducerOver(args[0], args[1])
		if err != nil {
			return err
		}
		if !align {
			d, err := t.Distance(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("%g\n", d)
			return nil
		}
		d, ops, err := t.Alignment(args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("%g\n", d)
		for _, op := range ops {
			switch {
			case op.From == 0:
				fmt.Printf("%s %c\n", op.Op, op.To)
			case op.To == 0:
				fmt.Printf("%s %c\n", op.Op, op.From)
			default:
				fmt.Printf("%s %c %c\n", op.Op, op.From, op.To)
			}
		}
		return nil
	},
}

func init() {
	distanceCmd.Flags().BoolVar(&align, "align", false, "print the operation sequence")
	RootCmd.AddCommand(distanceCmd)
}
