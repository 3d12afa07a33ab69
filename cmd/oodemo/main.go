package main

import (
	"fmt"
	"os"
)

func main() {
	root := newRootCmd(configFromEnv())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "oodemo:", err)
		os.Exit(1)
	}
}
