//go:build !testcoverage

package main

import "os"

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fatal("error: %v", err)
	}
}
