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
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/couchbase/editfst"
)

var allMatches bool

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Finds the closest lexicon entry to a query string.",
	Long:  `Finds the closest entry to a query string in a one-word-per-line lexicon file.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) < 2 {
			return fmt.Errorf("lexicon path and query required")
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		file, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer file.Close()

		var lexicon []string
		scanner := bufio.NewScanner(file)
		for scanner.Scan() {
			word := strings.TrimSpace(scanner.Text())
			if word != "" {
				lexicon = append(lexicon, word)
			}
		}
		if err := scanner.Err(); err != nil {
			return err
		}

		query := args[1]
		t, err := transducerOver(append(lexicon, query)...)
		if err != nil {
			return err
		}
		matcher, err := editfst.NewMatcher(t, lexicon)
		if err != nil {
			return err
		}

		if allMatches {
			matches, d, err := matcher.ClosestMatches(query)
			if err != nil {
				return err
			}
			for _, m := range matches {
				fmt.Printf("%s\t%g\n", m, d)
			}
			return nil
		}
		match, d, err := matcher.ClosestMatch(query)
		if err != nil {
			return err
		}
		fmt.Printf("%s\t%g\n", match, d)
		return nil
	},
}

func init() {
	matchCmd.Flags().BoolVar(&allMatches, "all", false, "print every closest entry")
	RootCmd.AddCommand(matchCmd)
}
