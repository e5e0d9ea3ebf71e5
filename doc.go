/*
Package logictree encodes epistemic uncertainty over a seismic source model as
a logic tree: a tree of alternative modeling choices, each branch carrying a
probability weight and a parameter value.

The engine consumes an already-constructed root branch-set (built by an
external format parser, or programmatically with pkg/dsl) and offers three
operations on it:

  - exhaustive enumeration of every weighted path through the tree,
  - reproducible seeded sampling of single realizations,
  - application of a chosen realization to a source group, producing a new,
    independently mutable group without disturbing the original.

# Usage

	root := dsl.NewSet("bs1", domain.SourceModel).
		Branch("b1", 0.6, "model_a.xml").
		Branch("b2", 0.4, "model_b.xml").
		MustBuild()

	tree := logictree.New(root)

	// Every (weight, path) pair; weights sum to 1.0.
	for weight, path := range tree.Enumerate() {
		fmt.Println(weight, path)
	}

	// One reproducible realization.
	branches, err := tree.Sample(42)
	if err != nil {
		log.Fatal(err)
	}

	// Turn it into (branch-set, value) pairs and transform a group.
	pairs, err := tree.BsetValues(logictree.PathIDs(branches))
	if err != nil {
		log.Fatal(err)
	}
	newGroup, err := tree.Apply(pairs, group)

Everything is synchronous, CPU-bound and read-only over the tree; concurrent
callers may enumerate, sample and transform over the same tree in parallel.
*/
package logictree
