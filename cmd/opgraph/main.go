// Command opgraph turns opcode samples into per-node graph features.
//
//	opgraph families            union graph per family, one CSV for the dataset
//	opgraph samples             one CSV per sample under <output dir>/<family>/
//	opgraph sample <file>       features of a single opcode file
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
