// Package resolution decides the unsatisfiability of propositional clause
// sets by resolution saturation.
//
// Saturation repeatedly resolves every pair of clauses containing
// complementary literals and folds the resolvents into the working set. If
// the empty clause is ever derived, the set is unsatisfiable; if a full pass
// derives nothing new, the set has reached a fixpoint and is satisfiable.
// The space of distinct clauses over a finite set of atoms is finite, so the
// loop always terminates, although its worst case is exponential in the
// number of atoms. A clause budget bounds that cost explicitly: when the
// working set grows past it, the engine gives up with ErrBudget instead of
// saturating on.
package resolution

import (
	"github.com/pkg/errors"

	"github.com/logikon/beliefbase/logic"
)

// DefaultMaxClauses is the clause budget used by Unsat. It is far more than
// any small knowledge base needs, while still bounding pathological inputs.
const DefaultMaxClauses = 100000

// ErrBudget is reported when saturation exceeds its clause budget before
// reaching a fixpoint or deriving the empty clause.
var ErrBudget = errors.New("resolution: clause budget exceeded")

// Unsat reports whether the given clause set is unsatisfiable, using the
// default clause budget.
func Unsat(clauses []logic.Clause) (bool, error) {
	return UnsatBudget(clauses, DefaultMaxClauses)
}

// UnsatBudget reports whether the given clause set is unsatisfiable. It
// fails with an error wrapping ErrBudget if saturation accumulates more than
// maxClauses distinct clauses.
func UnsatBudget(clauses []logic.Clause, maxClauses int) (bool, error) {
	working := make([]logic.Clause, 0, len(clauses))
	seen := make(map[string]struct{}, len(clauses))
	for _, c := range clauses {
		if c.Empty() {
			return true, nil
		}
		key := c.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		working = append(working, c)
	}
	for {
		var fresh []logic.Clause
		for i := 0; i < len(working); i++ {
			for j := i + 1; j < len(working); j++ {
				for _, r := range resolve(working[i], working[j]) {
					if r.Empty() {
						return true, nil
					}
					key := r.Key()
					if _, ok := seen[key]; ok {
						continue
					}
					seen[key] = struct{}{}
					fresh = append(fresh, r)
				}
			}
		}
		if len(fresh) == 0 {
			return false, nil
		}
		if len(seen) > maxClauses {
			return false, errors.Wrapf(ErrBudget, "%d clauses derived", len(seen))
		}
		working = append(working, fresh...)
	}
}

// resolve returns every resolvent of c1 and c2: for each pair of
// complementary literals l in c1 and not(l) in c2, the clause
// (c1 union c2) minus {l, not(l)}.
func resolve(c1, c2 logic.Clause) []logic.Clause {
	var res []logic.Clause
	for l := range c1 {
		if !c2.Has(l.Negation()) {
			continue
		}
		r := make(logic.Clause, len(c1)+len(c2))
		for m := range c1 {
			if m != l {
				r[m] = struct{}{}
			}
		}
		neg := l.Negation()
		for m := range c2 {
			if m != neg {
				r[m] = struct{}{}
			}
		}
		res = append(res, r)
	}
	return res
}
