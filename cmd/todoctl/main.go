// Command todoctl runs the natural-language task extractor from the shell.
package main

import (
	"fmt"
	"os"
)

const (
	Version = "0.1.0"
	appName = "todoctl"
)

func main() {
	if err := rootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
