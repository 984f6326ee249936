// Command stderr-demo exercises the stderr package from the command line.
package main

import (
	"errors"
	"os"

	"github.com/bjaus/stderr"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var exit exitCode
		if errors.As(err, &exit) {
			os.Exit(int(exit))
		}
		stderr.New().Fatal(err.Error())
	}
}
