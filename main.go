// Package main is the entry point for the visage CLI.
package main

import "visage.dev/pkg/visage/cmd"

func main() {
	cmd.Execute()
}
