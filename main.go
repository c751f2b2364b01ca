package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/robertkrimen/isatty"
	"go.uber.org/zap"

	"github.com/logikon/beliefbase/resolution"
)

func main() {
	var (
		budget int
		debug  bool
	)
	flag.IntVar(&budget, "budget", resolution.DefaultMaxClauses, "maximum number of clauses the resolution engine may derive per check")
	flag.BoolVar(&debug, "debug", false, "log every operation with its timing")
	flag.Parse()

	logger := zap.NewNop()
	if debug {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not create logger: %v\n", err)
			os.Exit(1)
		}
		logger = l
	}
	defer func() { _ = logger.Sync() }()

	sess := newSession(budget, logger)

	if len(flag.Args()) > 0 {
		for _, path := range flag.Args() {
			if err := sess.runScript(path); err != nil {
				fmt.Fprintf(os.Stderr, "%v\n", err)
				os.Exit(1)
			}
		}
		return
	}
	if isatty.Check(os.Stdin.Fd()) {
		if err := sess.repl(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := sess.run("stdin", os.Stdin); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
