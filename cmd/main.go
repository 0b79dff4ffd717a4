package main

import (
	"github.com/consensys/go-sdd/pkg/cmd"
)

func main() {
	cmd.Execute()
}
