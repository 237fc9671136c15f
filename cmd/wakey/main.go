// Package main is the entry point for the wakey CLI.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "wakey: %v\n", err)
		os.Exit(1)
	}
}
