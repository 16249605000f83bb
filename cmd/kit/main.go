// Command kit inspects themes and replays scripted input sessions against
// the kit state machines.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/kit/cmd/kit/cmd"
)

func main() {
	if err := cmd.Execute(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
