// Package main is the entry point for the qacheck CLI.
package main

import "qacheck.dev/pkg/qacheck/cmd"

func main() {
	cmd.Execute()
}
