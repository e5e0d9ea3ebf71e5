/*
Package dsl provides a fluent builder for constructing logic trees
programmatically. It is the in-process alternative to an external format
parser: same output (a validated root branch-set), no files involved.

	root, err := dsl.NewSet("bs1", domain.SourceModel).
		Branch("b1", 0.6, "model_a.xml").
		Branch("b2", 0.4, "model_b.xml").
		Build()

Build validates what the engine itself assumes but never checks: branch
weights summing to 1.0 and branch ids unique within their set.
*/
package dsl
