// cmd/gauntlet/main.go
package main

import (
	cmd "gauntlet/internal/cli"
)

// main starts the gauntlet CLI application by delegating to the
// cobra root command defined in the gauntlet package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
