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
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-sdd/pkg/dd"
	"github.com/consensys/go-sdd/pkg/diagram"
	"github.com/consensys/go-sdd/pkg/lattice"
	"github.com/consensys/go-sdd/pkg/semiring"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] diagram_file",
	Short: "print the interned form of a diagram.",
	Long: `Build the diagram described by a given document and print every node of the
	 resulting pool, one per line, followed by the rendered diagram itself.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		configureColor()
		//
		file := readDiagramFile(args[0])
		engine := diagram.NewEngine()
		// Build diagram
		root, err := file.Build(engine)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Print the pool in allocation order.
		_ = engine.AllNodes(func(id dd.NodeID, node dd.Node[dd.Ident, lattice.Bool, semiring.Uint64]) error {
			if node.Leaf {
				fmt.Printf("%4d: leaf %s\n", id, color.GreenString("%s", node.Value.String()))
			} else {
				fmt.Printf("%4d: branch %s∈%s -> %d, %d\n", id,
					color.CyanString("%s", node.Var.String()), node.Guard.String(), node.Hi, node.Lo)
			}
			//
			return nil
		})
		//
		fmt.Printf("root %d: %s\n", root, engine.String(root))
		//
		if GetFlag(cmd, "stats") {
			fmt.Print(engine.Stats())
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("stats", false, "report pool statistics")
}
