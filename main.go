// main package for testsmith command-line tool
// Package main is the entry point for the testsmith CLI.
package main

import "testsmith.dev/pkg/testsmith/cmd"

func main() {
	cmd.Execute()
}
