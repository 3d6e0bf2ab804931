// Command dynaprmgen is a thin CLI shell over the engine package: it
// creates a roadmap from command-line parameters and saves it to disk.
// It carries no roadmap logic of its own — the CLI entry point is
// explicitly out of scope for the core engine (spec.md §1) and exists
// here only as the ambient "a binary can build one of these" entry point
// a module at this layer would normally ship.
package main

import "github.com/katalvlaran/dynaprm/cmd/dynaprmgen/cmd"

func main() {
	cmd.Execute()
}
