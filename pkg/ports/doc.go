/*
Package ports defines the boundary between the logic-tree engine and the
source-model collaborator that owns geometries and magnitude-frequency
distributions.

The engine treats sources as opaque except for the identity accessors used by
filters and the generic Modify capability used to apply uncertainties. A
reference in-memory implementation lives in pkg/adapters/memory.
*/
package ports
