/*
Command aggtree is an interactive shell for an ordered aggregate index with
integer keys and values.

Usage:

	aggtree [flags]

Commands are read from stdin, one per line; type 'help' for a list.
Records from a file given with --input are loaded before the first command
is read. Flags may also be set from the environment (prefix AGGTREE_) or a
configuration file.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
