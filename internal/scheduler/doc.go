// Package scheduler evaluates every resolvable node without a designated root.
//
// # How It Works
//
// The scheduler keeps a live frontier: the operator nodes whose two operands
// are both literals. Each round it folds every frontier node into a literal,
// reading operands in position order (0 then 1) so subtraction and division
// see left and right correctly. Folding a node decrements the pending-operand
// counter of every operator that references it; operators whose counter
// reaches zero form the next round's frontier.
//
// Evaluation stops when the frontier is empty. Because the graph is acyclic,
// every round strictly shrinks the set of unresolved operators. Operators
// whose operands never bottom out in literals (e.g. they depend on a
// placeholder) are never selected and are reported in Result.Unresolved.
//
// # Relationship with Other Components
//
//   - **engine:** Evaluates a single root; both must agree on any node
//     reachable from that root.
//   - **registry:** Supplies operator semantics and width wrapping.
package scheduler
