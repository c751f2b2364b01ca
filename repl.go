package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/logikon/beliefbase/belief"
)

var errQuit = errors.New("quit")

type session struct {
	base   *belief.Base
	budget int
	logger *zap.Logger
}

func newSession(budget int, logger *zap.Logger) *session {
	base := belief.NewBase()
	base.SetBudget(budget)
	return &session{base: base, budget: budget, logger: logger}
}

// canonicalizer maps the human-friendly symbols onto the operators the
// parser understands. This is a purely lexical layer sitting outside the
// reasoning core.
var canonicalizer = strings.NewReplacer(
	"→", "->",
	"¬", "^",
	"!", "^",
	"~", "^",
	"∨", "|",
	"∧", "&",
)

// wordOps matches the word operators on token boundaries, so that
// identifiers such as "sand" or "implies2" survive. A bare "v" is
// deliberately not a disjunction: it is indistinguishable from an atom.
var wordOps = regexp.MustCompile(`\b(implies|and|or)\b`)

func canonicalize(expr string) string {
	expr = canonicalizer.Replace(expr)
	return wordOps.ReplaceAllStringFunc(expr, func(m string) string {
		switch m {
		case "implies":
			return "->"
		case "and":
			return "&"
		default:
			return "|"
		}
	})
}

func (s *session) repl() error {
	fmt.Println("beliefbase: prioritized propositional belief revision")
	fmt.Println("type help for the command list")
	l, err := readline.NewEx(&readline.Config{
		Prompt:            "belief> ",
		HistoryFile:       "/tmp/.beliefbase-history",
		InterruptPrompt:   "^C",
		EOFPrompt:         "bye",
		HistorySearchFold: true,
	})
	if err != nil {
		return errors.Wrap(err, "could not initialize readline")
	}
	defer l.Close()
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err != nil {
			fmt.Println("bye")
			return nil
		}
		if err := s.exec(line); err != nil {
			if err == errQuit {
				fmt.Println("bye")
				return nil
			}
			fmt.Printf("error: %v\n", err)
		}
	}
}

func (s *session) runScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "could not open %q", path)
	}
	defer f.Close()
	return s.run(path, f)
}

func (s *session) run(name string, r io.Reader) error {
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		if err := s.exec(sc.Text()); err != nil {
			if err == errQuit {
				return nil
			}
			return errors.Wrapf(err, "%s:%d", name, lineno)
		}
	}
	return errors.Wrapf(sc.Err(), "reading %s", name)
}

func (s *session) exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}
	cmd, rest := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		cmd, rest = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch cmd {
	case "expand":
		return s.expand(rest)
	case "entails":
		return s.entails(rest)
	case "contract":
		return s.contract(rest)
	case "remove":
		return s.remove(rest)
	case "list":
		s.list()
		return nil
	case "reset":
		s.base = belief.NewBase()
		s.base.SetBudget(s.budget)
		return nil
	case "help":
		s.help()
		return nil
	case "quit", "exit":
		return errQuit
	default:
		return errors.Errorf("unknown command %q (try help)", cmd)
	}
}

func (s *session) expand(args string) error {
	fields := strings.SplitN(args, " ", 2)
	if len(fields) != 2 {
		return errors.New("usage: expand <priority> <formula>")
	}
	priority, err := strconv.Atoi(fields[0])
	if err != nil {
		return errors.Wrapf(err, "invalid priority %q", fields[0])
	}
	b, err := belief.Parse(canonicalize(fields[1]), priority)
	if err != nil {
		return err
	}
	s.base.Expand(b)
	s.logger.Debug("expand",
		zap.Stringer("sentence", b.Sentence),
		zap.Int("priority", priority),
		zap.Int("size", s.base.Len()))
	return nil
}

func (s *session) entails(args string) error {
	if args == "" {
		return errors.New("usage: entails <formula>")
	}
	query, err := belief.Parse(canonicalize(args), 0)
	if err != nil {
		return err
	}
	start := time.Now()
	entailed, err := s.base.Entails(query)
	if err != nil {
		return err
	}
	s.logger.Debug("entails",
		zap.Stringer("sentence", query.Sentence),
		zap.Bool("entailed", entailed),
		zap.Duration("took", time.Since(start)))
	if entailed {
		fmt.Println("yes")
	} else {
		fmt.Println("no")
	}
	return nil
}

func (s *session) contract(args string) error {
	if args == "" {
		return errors.New("usage: contract <formula>")
	}
	target, err := belief.Parse(canonicalize(args), 0)
	if err != nil {
		return err
	}
	start := time.Now()
	removed, err := s.base.Contract(target)
	for _, b := range removed {
		fmt.Printf("removed %s\n", b)
	}
	if err != nil {
		return err
	}
	s.logger.Debug("contract",
		zap.Stringer("sentence", target.Sentence),
		zap.Int("removed", len(removed)),
		zap.Duration("took", time.Since(start)))
	if len(removed) == 0 {
		fmt.Println("nothing removed")
	}
	if entailed, err := s.base.Entails(target); err == nil && entailed {
		fmt.Println("still entailed: no single removal breaks the entailment")
	}
	return nil
}

func (s *session) remove(args string) error {
	n, err := strconv.Atoi(args)
	if err != nil {
		return errors.New("usage: remove <index> (as shown by list)")
	}
	beliefs := s.base.Beliefs()
	if n < 1 || n > len(beliefs) {
		return errors.Errorf("no belief with index %d", n)
	}
	b := beliefs[n-1]
	if err := s.base.Remove(b); err != nil {
		return err
	}
	fmt.Printf("removed %s\n", b)
	return nil
}

func (s *session) list() {
	beliefs := s.base.Beliefs()
	if len(beliefs) == 0 {
		fmt.Println("(empty)")
		return
	}
	for i, b := range beliefs {
		fmt.Printf("%d: %s\n", i+1, b)
	}
}

func (s *session) help() {
	fmt.Print(`commands:
  expand <priority> <formula>   add a belief (lower priority is given up first)
  entails <formula>             does the base logically force the formula?
  contract <formula>            remove beliefs until the formula is no longer entailed
  remove <index>                remove one belief by its list index
  list                          show the base, ascending priority
  reset                         start over with an empty base
  quit                          leave

formulas: atoms (\w+), ^ or ¬ or ! for not, & or ∧ or and, | or ∨ or or,
-> or → or implies (right-associative), parentheses, True, False.
`)
}
