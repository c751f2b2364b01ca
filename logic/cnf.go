package logic

// CNF converts f to conjunctive normal form: a conjunction of clauses, each
// clause a disjunction of literals. The conversion is a pipeline of four
// pure rewriting stages: implication elimination, negation normal form,
// distribution of disjunction over conjunction, and flattening of nested
// same-operator nodes.
//
// The result is logically equivalent to f. Distribution can blow up
// exponentially in the number of clauses for deeply nested formulas; this is
// inherent to equivalence-preserving CNF, not a defect.
//
// The boolean constants True and False are fixed points of every stage and
// propagate through unchanged; no constant folding happens mid-pipeline.
func CNF(f Formula) Formula {
	return flatten(distribute(toNNF(elimImplications(f))))
}

func mapFormulas(subs []Formula, fn func(Formula) Formula) []Formula {
	res := make([]Formula, len(subs))
	for i, sub := range subs {
		res[i] = fn(sub)
	}
	return res
}

// elimImplications rewrites implies(a, b) into or(not(a), b), recursively.
func elimImplications(f Formula) Formula {
	switch f := f.(type) {
	case implies:
		return or{not{elimImplications(f[0])}, elimImplications(f[1])}
	case not:
		return not{elimImplications(f[0])}
	case and:
		return and(mapFormulas(f, elimImplications))
	case or:
		return or(mapFormulas(f, elimImplications))
	default:
		return f
	}
}

// toNNF pushes negations down to the atoms via De Morgan's laws and cancels
// double negations. The input must be implication-free.
func toNNF(f Formula) Formula {
	switch f := f.(type) {
	case not:
		return negate(f[0])
	case and:
		return and(mapFormulas(f, toNNF))
	case or:
		return or(mapFormulas(f, toNNF))
	default:
		return f
	}
}

// negate returns the negation normal form of not(f).
func negate(f Formula) Formula {
	switch f := f.(type) {
	case atom:
		return not{f}
	case not:
		return toNNF(f[0])
	case and:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = negate(sub)
		}
		return or(subs)
	case or:
		subs := make([]Formula, len(f))
		for i, sub := range f {
			subs[i] = negate(sub)
		}
		return and(subs)
	case trueConst:
		return False
	case falseConst:
		return True
	default:
		panic("cannot negate a formula containing implications")
	}
}

// distribute rewrites or(..., and(a, b), ...) into
// and(or(..., a, ...), or(..., b, ...)) until no disjunction has a
// conjunction as a child.
func distribute(f Formula) Formula {
	switch f := f.(type) {
	case and:
		return and(mapFormulas(f, distribute))
	case or:
		subs := mapFormulas(f, distribute)
		for i, sub := range subs {
			conj, ok := sub.(and)
			if !ok {
				continue
			}
			branches := make([]Formula, len(conj))
			for j, c := range conj {
				branch := make([]Formula, 0, len(subs))
				branch = append(branch, subs[:i]...)
				branch = append(branch, c)
				branch = append(branch, subs[i+1:]...)
				branches[j] = distribute(or(branch))
			}
			return and(branches)
		}
		return or(subs)
	default:
		return f
	}
}

// flatten collapses nested same-operator nodes into n-ary form
// (and(and(x, y), z) becomes and(x, y, z)) and unwraps single-child
// conjunctions and disjunctions.
func flatten(f Formula) Formula {
	switch f := f.(type) {
	case not:
		return not{flatten(f[0])}
	case and:
		var res and
		for _, sub := range f {
			switch sub := flatten(sub).(type) {
			case and:
				res = append(res, sub...)
			default:
				res = append(res, sub)
			}
		}
		if len(res) == 1 {
			return res[0]
		}
		return res
	case or:
		var res or
		for _, sub := range f {
			switch sub := flatten(sub).(type) {
			case or:
				res = append(res, sub...)
			default:
				res = append(res, sub)
			}
		}
		if len(res) == 1 {
			return res[0]
		}
		return res
	default:
		return f
	}
}
