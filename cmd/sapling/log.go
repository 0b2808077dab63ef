package main

import (
	"fmt"
	"os"
)

func (r *rootCmdConfig) Logf(format string, a ...interface{}) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, a...)
	fmt.Fprintln(os.Stderr, "")
}
