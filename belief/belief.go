package belief

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/logikon/beliefbase/logic"
)

// A Belief is a propositional sentence held with a given priority.
// Beliefs with lower priority values are surrendered first during
// contraction.
//
// Each Belief carries a surrogate ID: two Beliefs are distinct members of a
// base even when their sentences are structurally identical. A Belief is
// immutable after construction.
type Belief struct {
	ID       uuid.UUID
	Sentence logic.Formula
	Priority int

	cnf logic.Formula
}

// New builds a Belief from an already constructed sentence. The sentence's
// conjunctive normal form is computed once, here, and cached for the
// lifetime of the Belief.
func New(sentence logic.Formula, priority int) *Belief {
	return &Belief{
		ID:       uuid.New(),
		Sentence: sentence,
		Priority: priority,
		cnf:      logic.CNF(sentence),
	}
}

// Parse builds a Belief from a sentence in the parser's syntax.
// It fails with a *logic.ParseError on malformed input.
func Parse(text string, priority int) (*Belief, error) {
	f, err := logic.ParseString(text)
	if err != nil {
		return nil, err
	}
	return New(f, priority), nil
}

// CNF returns the conjunctive normal form of the sentence, cached at
// construction time.
func (b *Belief) CNF() logic.Formula {
	return b.cnf
}

func (b *Belief) String() string {
	return fmt.Sprintf("%s (%d)", b.Sentence, b.Priority)
}
