package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run executes the command line and returns the exit status. Failures print their message to
// out, the way the output of a successful run is printed.
func run(args []string, in io.Reader, out io.Writer) int {
	rootCmd := newRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(out, err)
		return 1
	}
	return 0
}
