// cmd/main.go
package main

import cmd "github.com/mwiater/flowstats/cmd/flowstats"

// main starts the flowstats CLI by delegating to the cobra root command
// defined in the flowstats package.
func main() {
	cmd.Execute()
}
