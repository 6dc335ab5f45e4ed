// Package main is the entry point for the skinmatch CLI application.
//
// skinmatch filters a cosmetics catalog by skin type or by ingredients and
// lists the matching products sorted by price and rating.
package main

import "github.com/ajxudir/skinmatch/cmd"

// main delegates all command parsing and execution to the cmd package.
func main() {
	cmd.Execute()
}
