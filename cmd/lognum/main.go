// Command lognum evaluates and prints numbers of astronomical magnitude.
package main

import (
	"fmt"
	"os"

	"github.com/db47h/lognum/cmd/lognum/commands"
)

func main() {
	if err := commands.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lognum:", err)
		os.Exit(1)
	}
}
