// Package pageorder checks and repairs page sequences against pairwise
// ordering rules.
//
// Input is a block of rules ("47|53": page 47 must precede page 53), a
// blank line, then one comma-separated update per line. A rule applies to
// an update only when both of its pages appear in it.
//
// Repair reorders an update by a depth-first topological sort of the
// rules restricted to the update's pages. Cyclic rules fail with
// ErrCycleDetected rather than producing an arbitrary order.
//
// Complexity:
//
//   - IsOrdered: O(P + R) per update (P pages, R rules).
//   - Repair:    O(P + R) per update.
package pageorder
