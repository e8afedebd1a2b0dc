// Package main provides the lvsearch CLI: depth-first search over the
// bounded binary tree or a random graph, plus a concurrent benchmark.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes.
const (
	exitSuccess = 0
	exitError   = 1
	exitNoPath  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		if errors.Is(err, errNoPath) {
			return exitNoPath
		}
		fmt.Fprintln(os.Stderr, err)
		return exitError
	}

	return exitSuccess
}
