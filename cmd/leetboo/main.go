// Package main is the single-binary entrypoint for LeetBoo.
// LeetBoo tracks daily habits and turns finished check-ins into coins.
package main

import "github.com/leetboo/leetboo/internal/cli"

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	cli.Execute(version)
}
