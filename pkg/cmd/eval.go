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
	"sort"
	"strings"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/consensys/go-sdd/pkg/diagram"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] diagram_file",
	Short: "evaluate a diagram under its assignments.",
	Long: `Build the diagram described by a given document, then restrict it under each of
	 the document's assignments and report the outcome.  Assignments covering every
	 variable of the diagram yield a constant.`,
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
		//
		log.Debugf("built diagram %d over %d nodes", root, engine.Size())
		//
		if len(file.Assignments) == 0 {
			log.Warn("document declares no assignments")
		}
		// Evaluate under each assignment
		for _, values := range file.Assignments {
			assignment, err := file.Assignment(values)
			if err != nil {
				fmt.Println(err)
				os.Exit(2)
			}
			//
			restricted := engine.Restrict(assignment, root)
			//
			fmt.Printf("%s => ", describeAssignment(values))
			//
			if value, ok := engine.Peek(restricted); ok {
				fmt.Println(color.GreenString("%s", value.String()))
			} else {
				// Assignment leaves some variables unconstrained.
				fmt.Println(color.YellowString("%s", engine.String(restricted)))
			}
		}
	},
}

// describeAssignment renders an assignment map with its variables in a stable
// order.
func describeAssignment(values map[string]bool) string {
	var (
		names = make([]string, 0, len(values))
		parts = make([]string, 0, len(values))
	)
	//
	for name := range values {
		names = append(names, name)
	}
	//
	sort.Strings(names)
	//
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s=%t", name, values[name]))
	}
	//
	return strings.Join(parts, " ")
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
