// Command xrpld is the thin cobra entry point for the node: serve, simulate,
// and gate subcommands live in internal/cli.
package main

import "github.com/goxrpld/lab/internal/cli"

func main() {
	cli.Execute()
}
