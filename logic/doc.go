// Package logic implements classical propositional formulas, their parsing,
// their conversion to conjunctive normal form and the extraction of clauses.
//
// A Formula is an immutable tree built from atoms, negations, n-ary
// conjunctions and disjunctions, implications and the boolean constants
// True and False. It can be built programmatically:
//
//	f := logic.Implies(logic.Atom("p"), logic.Atom("q"))
//
// or parsed from its textual form:
//
//	f, err := logic.ParseString("p -> q")
//
// CNF turns any formula into an equivalent conjunction of clauses, and
// Clauses flattens such a formula into a set of literal sets ready to be fed
// to a refutation procedure:
//
//	clauses := logic.Clauses(logic.CNF(f))
//
// The conversion preserves logical equivalence, which is what a resolution
// engine needs; the price is a potentially exponential number of clauses for
// deeply nested formulas.
package logic
