/*
Package domain contains the core data types of the logic-tree engine: branches
and branch-sets, uncertainty-type tags, applicability filters, raw uncertainty
nodes, geometry payloads and the engine's error types.

Types here are plain data. The tree is built once (by an external format
parser or by pkg/dsl) and is treated as immutable by every engine operation;
nothing in this package or in the engine mutates a Branch or BranchSet after
construction.
*/
package domain
