package logic

import (
	"fmt"
	"sort"
	"strings"
)

// A Formula is a classical propositional sentence.
// Formulas are immutable: every transformation builds a new tree.
type Formula interface {
	String() string
	Eval(model map[string]bool) bool
}

// The "true" constant.
type trueConst struct{}

// True is the constant denoting a tautology.
var True Formula = trueConst{}

func (t trueConst) String() string                  { return "True" }
func (t trueConst) Eval(model map[string]bool) bool { return true }

// The "false" constant.
type falseConst struct{}

// False is the constant denoting a contradiction.
var False Formula = falseConst{}

func (f falseConst) String() string                  { return "False" }
func (f falseConst) Eval(model map[string]bool) bool { return false }

// Atom generates a named propositional variable.
func Atom(name string) Formula {
	return atom(name)
}

type atom string

func (a atom) String() string { return string(a) }

func (a atom) Eval(model map[string]bool) bool {
	b, ok := model[string(a)]
	if !ok {
		panic(fmt.Errorf("model lacks binding for atom %s", string(a)))
	}
	return b
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string { return "not(" + n[0].String() + ")" }

func (n not) Eval(model map[string]bool) bool { return !n[0].Eval(model) }

// And generates a conjunction of subformulas.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) String() string {
	strs := make([]string, len(a))
	for i, f := range a {
		strs[i] = f.String()
	}
	return "and(" + strings.Join(strs, ", ") + ")"
}

func (a and) Eval(model map[string]bool) bool {
	for _, s := range a {
		if !s.Eval(model) {
			return false
		}
	}
	return true
}

// Or generates a disjunction of subformulas.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) String() string {
	strs := make([]string, len(o))
	for i, f := range o {
		strs[i] = f.String()
	}
	return "or(" + strings.Join(strs, ", ") + ")"
}

func (o or) Eval(model map[string]bool) bool {
	for _, s := range o {
		if s.Eval(model) {
			return true
		}
	}
	return false
}

// Implies indicates a subformula implies another one.
// Unlike a disjunctive encoding, the implication is kept as its own node;
// the CNF pipeline eliminates it as its first step.
func Implies(premise, conclusion Formula) Formula {
	return implies{premise, conclusion}
}

type implies [2]Formula

func (i implies) String() string {
	return "implies(" + i[0].String() + ", " + i[1].String() + ")"
}

func (i implies) Eval(model map[string]bool) bool {
	return !i[0].Eval(model) || i[1].Eval(model)
}

// Equal reports whether two formulas have the same tree shape.
// Two independently parsed occurrences of the same sentence compare equal;
// logically equivalent but structurally different sentences do not.
func Equal(f1, f2 Formula) bool {
	return f1.String() == f2.String()
}

// Atoms returns the names of the atoms occurring in f, sorted and deduplicated.
func Atoms(f Formula) []string {
	seen := make(map[string]struct{})
	collectAtoms(f, seen)
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

func collectAtoms(f Formula, seen map[string]struct{}) {
	switch f := f.(type) {
	case atom:
		seen[string(f)] = struct{}{}
	case not:
		collectAtoms(f[0], seen)
	case and:
		for _, sub := range f {
			collectAtoms(sub, seen)
		}
	case or:
		for _, sub := range f {
			collectAtoms(sub, seen)
		}
	case implies:
		collectAtoms(f[0], seen)
		collectAtoms(f[1], seen)
	}
}
