// Command homsearch explores graph homomorphisms from the command line.
//
//	homsearch pairs graphs.g6 --format graph6 --out hom.csv
//	homsearch core graphs.txt --vertex-transitive
//	homsearch cubes 4 --squash --catalog /tmp/cubes4
//	homsearch config
//
// Settings come from flags, HOMSEARCH_* environment variables and an optional YAML file
// given with --config, in that order of precedence.
package main

import (
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	err := newRootCmd().Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}
