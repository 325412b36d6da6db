// Command layoutctl solves YAML layout scenes and prints or draws the result.
//
// Usage:
//
//	layoutctl solve scene.yaml [--format text|yaml]
//	layoutctl render scene.yaml -o scene.png
//	layoutctl version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
