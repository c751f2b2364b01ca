package belief

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logikon/beliefbase/logic"
	"github.com/logikon/beliefbase/resolution"
)

func mustParse(t *testing.T, expr string, priority int) *Belief {
	t.Helper()
	b, err := Parse(expr, priority)
	require.NoError(t, err)
	return b
}

func entails(t *testing.T, bb *Base, expr string) bool {
	t.Helper()
	entailed, err := bb.Entails(mustParse(t, expr, 0))
	require.NoError(t, err)
	return entailed
}

func TestSuccessPostulate(t *testing.T) {
	bb := NewBase()
	p := mustParse(t, "p", 1)
	rule := mustParse(t, "p -> q", 2)
	bb.Expand(p, rule)

	assert.True(t, entails(t, bb, "p"))
	assert.True(t, entails(t, bb, "q"))

	removed, err := bb.Contract(mustParse(t, "p", 1))
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Same(t, p, removed[0])

	assert.False(t, entails(t, bb, "p"))
	require.Equal(t, 1, bb.Len())
	assert.True(t, logic.Equal(bb.Beliefs()[0].Sentence, rule.Sentence))
}

func TestInclusionPostulate(t *testing.T) {
	bb := NewBase()
	bb.Expand(
		mustParse(t, "p", 1),
		mustParse(t, "p -> q", 2),
		mustParse(t, "r", 3),
	)
	before := make(map[string]bool)
	for _, b := range bb.Beliefs() {
		before[b.ID.String()] = true
	}

	removed, err := bb.Contract(mustParse(t, "q", 0))
	require.NoError(t, err)

	for _, b := range bb.Beliefs() {
		assert.True(t, before[b.ID.String()], "contraction introduced %s", b)
	}
	for _, b := range removed {
		assert.True(t, before[b.ID.String()], "contraction removed a stranger %s", b)
	}
	assert.Equal(t, len(before), bb.Len()+len(removed))
}

func TestVacuityPostulate(t *testing.T) {
	bb := NewBase()
	bb.Expand(mustParse(t, "p", 1), mustParse(t, "p -> q", 2))

	assert.False(t, entails(t, bb, "r"))

	removed, err := bb.Contract(mustParse(t, "r", 1))
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, 2, bb.Len())
}

func TestConsistencyPostulate(t *testing.T) {
	bb := NewBase()
	p := mustParse(t, "p", 1)
	q := mustParse(t, "q", 2)
	bb.Expand(p, q)

	assert.False(t, entails(t, bb, "False"))

	removed, err := bb.Contract(mustParse(t, "p", 1))
	require.NoError(t, err)
	require.Len(t, removed, 1)
	assert.Same(t, p, removed[0])
	require.Equal(t, 1, bb.Len())
	assert.Same(t, q, bb.Beliefs()[0])

	assert.False(t, entails(t, bb, "False"))
}

// The greedy single-removal heuristic is not guaranteed to satisfy AGM
// extensionality in general; for this base it does, and both contractions
// must surrender the same belief.
func TestExtensionalityProbe(t *testing.T) {
	contractBy := func(target string) *Base {
		bb := NewBase()
		bb.Expand(mustParse(t, "p", 1), mustParse(t, "p -> q", 2))
		_, err := bb.Contract(mustParse(t, target, 1))
		require.NoError(t, err)
		return bb
	}
	byPlain := contractBy("p")
	byDouble := contractBy("^^p")

	require.Equal(t, byPlain.Len(), byDouble.Len())
	plain := byPlain.Beliefs()
	double := byDouble.Beliefs()
	for i := range plain {
		assert.True(t, logic.Equal(plain[i].Sentence, double[i].Sentence))
	}
}

func TestReflexivity(t *testing.T) {
	bb := NewBase()
	members := []*Belief{
		mustParse(t, "p & q", 1),
		mustParse(t, "r -> p", 2),
	}
	bb.Expand(members...)
	for _, b := range members {
		entailed, err := bb.Entails(b)
		require.NoError(t, err)
		assert.True(t, entailed, "base should entail its member %s", b)
	}
}

func TestEmptyBaseSoundness(t *testing.T) {
	bb := NewBase()
	assert.True(t, entails(t, bb, "True"))
	assert.False(t, entails(t, bb, "False"))
	assert.False(t, entails(t, bb, "p"))
	assert.True(t, entails(t, bb, "p | ^p"))
}

func TestPriorityOrdering(t *testing.T) {
	bb := NewBase()
	high := mustParse(t, "a", 3)
	lowFirst := mustParse(t, "b", 1)
	mid := mustParse(t, "c", 2)
	lowSecond := mustParse(t, "d", 1)
	bb.Expand(high, lowFirst, mid, lowSecond)

	got := bb.Beliefs()
	want := []*Belief{lowFirst, lowSecond, mid, high}
	require.Len(t, got, len(want))
	for i := range want {
		assert.Same(t, want[i], got[i], "position %d", i)
	}
}

func TestRemove(t *testing.T) {
	bb := NewBase()
	p := mustParse(t, "p", 1)

	err := bb.Remove(p)
	assert.ErrorIs(t, err, ErrNotFound)

	bb.Expand(p)
	require.NoError(t, bb.Remove(p))
	assert.Equal(t, 0, bb.Len())

	err = bb.Remove(p)
	assert.ErrorIs(t, err, ErrNotFound)
}

// Two beliefs with structurally identical sentences coexist: they are
// distinct entities. A side effect is that single-removal contraction cannot
// break the entailment, since the twin keeps it alive; contraction must give
// up and leave the base intact.
func TestDuplicateSentencesCoexist(t *testing.T) {
	bb := NewBase()
	bb.Expand(mustParse(t, "p", 1), mustParse(t, "p", 2))
	require.Equal(t, 2, bb.Len())

	removed, err := bb.Contract(mustParse(t, "p", 1))
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, 2, bb.Len())
	assert.True(t, entails(t, bb, "p"))
}

// A tautology stays entailed by the empty base, so contraction can never
// succeed and must give up without removing anything.
func TestContractTautologyGivesUp(t *testing.T) {
	bb := NewBase()
	bb.Expand(mustParse(t, "p", 1))

	removed, err := bb.Contract(mustParse(t, "p | ^p", 1))
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.Equal(t, 1, bb.Len())
	assert.True(t, entails(t, bb, "p | ^p"))
}

func TestExpandSameBeliefTwice(t *testing.T) {
	bb := NewBase()
	p := mustParse(t, "p", 1)
	bb.Expand(p)
	bb.Expand(p)
	assert.Equal(t, 1, bb.Len())
}

func TestEntailsDoesNotMutate(t *testing.T) {
	bb := NewBase()
	bb.Expand(mustParse(t, "p", 1), mustParse(t, "q", 2))
	before := bb.String()
	_ = entails(t, bb, "p & q")
	assert.Equal(t, before, bb.String())
}

func TestBudgetPropagates(t *testing.T) {
	bb := NewBase()
	bb.SetBudget(1)
	bb.Expand(
		mustParse(t, "p | q", 1),
		mustParse(t, "^p | r", 2),
		mustParse(t, "^q", 3),
		mustParse(t, "^r", 4),
	)
	_, err := bb.Entails(mustParse(t, "q | r", 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, resolution.ErrBudget)

	_, err = bb.Contract(mustParse(t, "q | r", 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, resolution.ErrBudget)
}

func TestBaseString(t *testing.T) {
	bb := NewBase()
	bb.Expand(mustParse(t, "p -> q", 2), mustParse(t, "p", 1))
	assert.Equal(t, "p (1)\nimplies(p, q) (2)", bb.String())
}

func ExampleBase() {
	bb := NewBase()
	p, _ := Parse("p", 1)
	rule, _ := Parse("p -> q", 2)
	bb.Expand(p, rule)

	entailed, _ := bb.Entails(p)
	fmt.Println(entailed)

	removed, _ := bb.Contract(p)
	fmt.Println(len(removed))

	entailed, _ = bb.Entails(p)
	fmt.Println(entailed)
	// Output:
	// true
	// 1
	// false
}
