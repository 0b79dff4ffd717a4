// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-sdd/pkg/dd"
	"github.com/consensys/go-sdd/pkg/diagram"
	"github.com/consensys/go-sdd/pkg/lattice"
	"github.com/consensys/go-sdd/pkg/semiring"
	"github.com/consensys/go-sdd/pkg/util"
)

var benchCmd = &cobra.Command{
	Use:   "bench [flags]",
	Short: "stress the engine with random diagrams.",
	Long: `Build a configurable number of random single-variable diagrams, then combine
	 them with alternating sums and products, reporting pool growth and timing.`,
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		var (
			nvars  = GetInt(cmd, "vars")
			natoms = GetInt(cmd, "atoms")
			seed   = GetInt64(cmd, "seed")
			//
			source = rand.New(rand.NewSource(seed))
			engine = diagram.NewEngine()
			stats  = util.NewPerfStats()
		)
		//
		if nvars < 1 || natoms < 1 {
			fmt.Println("need at least one variable and one atom")
			return
		}
		//
		roots := make([]dd.NodeID, natoms)
		//
		for i := range roots {
			var (
				v  = uint32(source.Intn(nvars))
				hi = semiring.Uint64(source.Intn(10))
				lo = semiring.Uint64(source.Intn(10))
			)
			//
			roots[i] = engine.Atom(dd.NewIdent(v, fmt.Sprintf("x%d", v)),
				lattice.Bool(source.Intn(2) == 0), hi, lo)
		}
		//
		stats.Log("building atoms")
		// Fold everything together, alternating the two operations.
		acc := roots[0]
		//
		for i, root := range roots[1:] {
			if i%2 == 0 {
				acc = engine.Sum(acc, root)
			} else {
				acc = engine.Prod(acc, root)
			}
			//
			log.Debugf("combined %d diagrams over %d nodes", i+2, engine.Size())
		}
		//
		stats.Log("combining diagrams")
		//
		fmt.Print(engine.Stats())
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Int("vars", 8, "number of distinct variables")
	benchCmd.Flags().Int("atoms", 64, "number of random atoms to combine")
	benchCmd.Flags().Int64("seed", 0, "seed for the random source")
}
