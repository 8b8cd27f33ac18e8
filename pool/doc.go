// Package pool provides the Solution Pool: a bounded, duplicate-free archive
// of the best solutions seen during one search run.
//
// 🚀 What does it track?
//
//	best  — the minimal-cost solution ever added (never evicted)
//	worst — the maximal-cost solution currently resident
//
// ✨ Insertion protocol (Add):
//  1. A full pool rejects anything not strictly better than its worst.
//  2. A solution equal to a resident entry is rejected (archive diversity).
//  3. Otherwise the solution is inserted; best is updated on improvement.
//  4. Overflow evicts exactly the entry flagged worst (swap-with-last, pop).
//  5. worst is recomputed by a full scan; the pool is small by design
//     (a capacity of 1 is the common case), so O(size) is fine.
//
// Add reports Rejected, Added or AddedNewBest.
//
// Invariants after every call:
//   - Len() <= MaximumSize()
//   - BestCost() is non-increasing over the pool's lifetime
//   - no two resident entries are Equal
//
// Concurrency: a Pool is owned by one driver invocation and is NOT safe for
// concurrent use. Parallel callers should keep one pool per worker and merge
// afterwards.
package pool
