/*
Package runtime implements the logic-tree engine core: uncertainty-value
parsing, uncertainty application, source filtering, path enumeration, seeded
weighted sampling and the group transformation pipeline.

Everything here is synchronous and CPU-bound. All operations are read-only
over the tree and never mutate the source groups they are given; concurrent
callers may run enumerations, samplings and transformations over the same
tree in parallel.
*/
package runtime
