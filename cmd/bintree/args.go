package main

import (
	"flag"
)

type Args struct {
	Key    int
	Value  int
	Legacy bool
	Dump   bool
	Debug  bool
}

func ParseArgs() *Args {
	args := new(Args)

	flag.IntVar(&args.Key, "key", 42, "key to insert")
	flag.IntVar(&args.Value, "value", 56, "value stored under the key")
	flag.BoolVar(&args.Legacy, "legacy", false, "route greater keys the way the first releases did")
	flag.BoolVar(&args.Dump, "dump", false, "print the tree diagram after inserting")
	flag.BoolVar(&args.Debug, "debug", false, "enable debug output")

	flag.Parse()
	return args
}
