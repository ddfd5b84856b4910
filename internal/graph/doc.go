// Package graph is the container for the expression DAG.
//
// # Structure
//
// Nodes are stored by identifier in a directed graph from
// github.com/dominikbraun/graph. Edges point from an operator node to each of
// its operands and carry a "position" attribute ("0" for the left operand,
// "1" for the right). When both operands name the same node the single edge
// carries "0,1". The node's own Operands array stays the authoritative source
// of operand order.
//
// The underlying graph is created with PreventCycles, so an edge that would
// close a cycle is rejected when it is added rather than discovered during
// evaluation.
//
// # Mutation
//
// The graph stores *node.Node values. Evaluators fold operator nodes into
// literals in place through the pointer returned by Node; edges are never
// removed.
//
// # Lifecycle
//
//  1. **Populated** by the dag builder (nodes first, then operand edges)
//  2. **Evaluated** once by the engine or the scheduler
//  3. **Exported** optionally to DOT for offline inspection
//  4. **Discarded** when the run ends
package graph
