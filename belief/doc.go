// Package belief implements a prioritized propositional belief base with
// AGM-style expansion, entailment checking and contraction.
//
// A Belief pairs a sentence with an integer priority and caches the
// sentence's conjunctive normal form. A Base supports three epistemic
// operations:
//
//   - Expand adds beliefs unconditionally,
//   - Entails decides whether the base logically forces a sentence, by
//     resolution refutation,
//   - Contract removes beliefs, lowest priority first, until a target
//     sentence is no longer entailed.
//
// Contraction is a greedy approximation of partial meet contraction: each
// pass removes a single belief whose absence breaks the entailment. It gives
// up, leaving the entailment in place, when only a joint removal of several
// beliefs would succeed.
package belief
