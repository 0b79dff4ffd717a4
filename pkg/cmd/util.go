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
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/consensys/go-sdd/pkg/diagram"
)

// GetFlag gets an expected flag, or exits with status 2 if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected int flag, or exits with status 2 if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt64 gets an expected int64 flag, or exits with status 2 if an error arises.
func GetInt64(cmd *cobra.Command, flag string) int64 {
	r, err := cmd.Flags().GetInt64(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// readDiagramFile parses a diagram document from a given file, exiting with an
// error message when the file is unreadable or malformed.
func readDiagramFile(filename string) *diagram.File {
	bytes, err := os.ReadFile(filename)
	//
	if err == nil {
		var file *diagram.File
		//
		if file, err = diagram.Parse(bytes); err == nil {
			return file
		}
	}
	// Handle error
	fmt.Println(err)
	os.Exit(2)
	// unreachable
	return nil
}

// configureColor disables colored output when stdout is not a terminal.
func configureColor() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}
}
