package logic

import (
	"sort"
	"strings"
)

// A Lit is a propositional literal: an atom or its negation.
type Lit struct {
	Name string
	Neg  bool
}

func (l Lit) String() string {
	if l.Neg {
		return "not(" + l.Name + ")"
	}
	return l.Name
}

// Negation returns the complementary literal.
func (l Lit) Negation() Lit {
	return Lit{Name: l.Name, Neg: !l.Neg}
}

// A Clause is a set of literals, interpreted as their disjunction.
// Duplicate literals collapse. The empty clause denotes a contradiction.
type Clause map[Lit]struct{}

// NewClause builds a clause from the given literals.
func NewClause(lits ...Lit) Clause {
	c := make(Clause, len(lits))
	for _, l := range lits {
		c[l] = struct{}{}
	}
	return c
}

// Has reports whether l belongs to the clause.
func (c Clause) Has(l Lit) bool {
	_, ok := c[l]
	return ok
}

// Empty reports whether the clause has no literals, i.e. is a contradiction.
func (c Clause) Empty() bool {
	return len(c) == 0
}

// Lits returns the literals of the clause in a deterministic order.
func (c Clause) Lits() []Lit {
	lits := make([]Lit, 0, len(c))
	for l := range c {
		lits = append(lits, l)
	}
	sort.Slice(lits, func(i, j int) bool {
		if lits[i].Name != lits[j].Name {
			return lits[i].Name < lits[j].Name
		}
		return !lits[i].Neg && lits[j].Neg
	})
	return lits
}

// Key returns a canonical representation of the clause, usable as a set
// membership key: two clauses with the same literals share the same key.
func (c Clause) Key() string {
	lits := c.Lits()
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = l.String()
	}
	return strings.Join(strs, " ")
}

func (c Clause) String() string {
	lits := c.Lits()
	strs := make([]string, len(lits))
	for i, l := range lits {
		strs[i] = l.String()
	}
	return "{" + strings.Join(strs, ", ") + "}"
}

// Clauses flattens a CNF formula into its set of clauses:
//
// - True contributes no clause,
// - False contributes a single empty clause,
// - a conjunction contributes the clauses of each conjunct,
// - a disjunction contributes one clause holding its disjuncts,
// - a bare literal contributes a one-literal clause.
//
// Constants inside a disjunction are resolved here rather than in the CNF
// pipeline: a True disjunct makes the whole clause vacuous and it is
// dropped, a False disjunct disappears from its clause.
//
// The input must be in conjunctive normal form; feeding any other tree is a
// programming error and panics.
func Clauses(f Formula) []Clause {
	switch f := f.(type) {
	case trueConst:
		return nil
	case falseConst:
		return []Clause{NewClause()}
	case and:
		var res []Clause
		for _, sub := range f {
			res = append(res, Clauses(sub)...)
		}
		return res
	case or:
		c := make(Clause, len(f))
		for _, sub := range f {
			switch sub.(type) {
			case trueConst:
				return nil
			case falseConst:
				continue
			default:
				c[litOf(sub)] = struct{}{}
			}
		}
		return []Clause{c}
	default:
		return []Clause{NewClause(litOf(f))}
	}
}

// litOf converts a literal formula (an atom or a negated atom) into a Lit.
func litOf(f Formula) Lit {
	switch f := f.(type) {
	case atom:
		return Lit{Name: string(f)}
	case not:
		a, ok := f[0].(atom)
		if !ok {
			panic("formula is not in CNF: negation of a non-atom")
		}
		return Lit{Name: string(a), Neg: true}
	default:
		panic("formula is not in CNF: expected a literal, got " + f.String())
	}
}
