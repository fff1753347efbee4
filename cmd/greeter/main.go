// filepath: cmd/greeter/main.go
package main

import (
	"greeter/internal/cli"

	// Match GOMAXPROCS to the container CPU quota
	_ "go.uber.org/automaxprocs"
)

func main() {
	// Delegate all execution to the CLI package
	cli.Execute()
}
