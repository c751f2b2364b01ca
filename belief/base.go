package belief

import (
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/logikon/beliefbase/logic"
	"github.com/logikon/beliefbase/resolution"
)

// ErrNotFound is reported when removing a Belief that is not in the base.
var ErrNotFound = errors.New("belief: not found in base")

// A Base is a prioritized collection of Beliefs. It grows through Expand and
// shrinks through Contract or Remove; members themselves are never mutated.
//
// A Base is not safe for concurrent use: Expand and Remove must not be
// interleaved with an in-flight Entails or Contract on the same instance.
type Base struct {
	members map[uuid.UUID]*Belief
	order   map[uuid.UUID]int // insertion sequence, breaks priority ties
	seq     int
	budget  int
}

// NewBase creates an empty base using the default resolution clause budget.
func NewBase() *Base {
	return &Base{
		members: make(map[uuid.UUID]*Belief),
		order:   make(map[uuid.UUID]int),
		budget:  resolution.DefaultMaxClauses,
	}
}

// SetBudget bounds the number of clauses the resolution engine may derive
// during a single entailment check on this base.
func (bb *Base) SetBudget(maxClauses int) {
	bb.budget = maxClauses
}

// Len returns the number of Beliefs in the base.
func (bb *Base) Len() int {
	return len(bb.members)
}

// Expand unconditionally adds the given Beliefs to the base. Beliefs are
// distinguished by identity: expanding the same sentence twice yields two
// members.
func (bb *Base) Expand(beliefs ...*Belief) {
	for _, b := range beliefs {
		if _, ok := bb.members[b.ID]; ok {
			continue
		}
		bb.members[b.ID] = b
		bb.order[b.ID] = bb.seq
		bb.seq++
	}
}

// Beliefs returns the members in ascending priority order. Members sharing a
// priority keep their insertion order.
func (bb *Base) Beliefs() []*Belief {
	res := make([]*Belief, 0, len(bb.members))
	for _, b := range bb.members {
		res = append(res, b)
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Priority != res[j].Priority {
			return res[i].Priority < res[j].Priority
		}
		return bb.order[res[i].ID] < bb.order[res[j].ID]
	})
	return res
}

func (bb *Base) String() string {
	lines := make([]string, 0, len(bb.members))
	for _, b := range bb.Beliefs() {
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

// Remove deletes the given Belief from the base. It fails with an error
// wrapping ErrNotFound if the Belief is not a member.
func (bb *Base) Remove(b *Belief) error {
	if _, ok := bb.members[b.ID]; !ok {
		return errors.Wrapf(ErrNotFound, "%s", b)
	}
	bb.drop(b)
	return nil
}

func (bb *Base) drop(b *Belief) {
	delete(bb.members, b.ID)
	delete(bb.order, b.ID)
}

// Entails reports whether the base logically forces the query's sentence.
// The check is refutation-based: the clauses of every member's cached CNF,
// together with the clauses of the negated query, are unsatisfiable exactly
// when the base entails the query. It fails only when the resolution engine
// exhausts its clause budget.
func (bb *Base) Entails(query *Belief) (bool, error) {
	return bb.entailsWithout(nil, query)
}

// entailsWithout runs the entailment check while pretending excluded is not
// a member. Contract uses it to trial a removal without copying the base.
func (bb *Base) entailsWithout(excluded *Belief, query *Belief) (bool, error) {
	var clauses []logic.Clause
	for _, b := range bb.members {
		if excluded != nil && b.ID == excluded.ID {
			continue
		}
		clauses = append(clauses, logic.Clauses(b.CNF())...)
	}
	// The negated query needs a fresh conversion: the cache holds the CNF
	// of the positive sentence.
	negated := logic.CNF(logic.Not(query.Sentence))
	clauses = append(clauses, logic.Clauses(negated)...)
	unsat, err := resolution.UnsatBudget(clauses, bb.budget)
	if err != nil {
		return false, errors.Wrapf(err, "entailment check for %s", query.Sentence)
	}
	return unsat, nil
}

// Contract removes Beliefs, lowest priority first, until the base no longer
// entails the target's sentence. Each pass removes the first Belief, in
// ascending priority order, whose removal alone breaks the entailment.
//
// When no single remaining Belief's removal suffices, contraction gives up
// with the base still entailing the target; breaking such entailments would
// require removing several Beliefs jointly, which this greedy approximation
// of partial meet contraction does not attempt. Callers needing a guarantee
// must re-check Entails afterwards.
//
// The base is mutated in place; the removed Beliefs are returned, in removal
// order, so callers can audit or undo the contraction. Contract never adds
// members.
func (bb *Base) Contract(target *Belief) ([]*Belief, error) {
	var removed []*Belief
	for {
		entailed, err := bb.Entails(target)
		if err != nil {
			return removed, err
		}
		if !entailed {
			return removed, nil
		}
		found := false
		for _, b := range bb.Beliefs() {
			still, err := bb.entailsWithout(b, target)
			if err != nil {
				return removed, err
			}
			if !still {
				bb.drop(b)
				removed = append(removed, b)
				found = true
				break
			}
		}
		if !found {
			return removed, nil
		}
	}
}
