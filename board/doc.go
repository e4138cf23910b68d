// Package board models a single snapshot of the N-tile sliding puzzle
// and produces its successor snapshots on demand.
//
// Overview:
//
//   - A Board is a square grid of integers 0..d²-1 where 0 is the
//     blank. The grid is deep-copied at construction and never mutated
//     afterwards; every successor owns its own copy.
//   - Each Board carries search bookkeeping: a non-owning parent link
//     (path reconstruction and undo suppression only), the path cost
//     from the root, and the depth (equal to the cost, each move is 1).
//   - Misplaced-tile count and Manhattan distance are computed once per
//     Board on first access and cached thereafter.
//   - Successors enumerates the boards reachable by sliding one
//     orthogonal neighbor into the blank, in a fixed scan order
//     (row −1, col −1 .. +1, row +1), skipping the move that would
//     immediately undo the parent transition and, optionally, any
//     board already present in a visited set. The result is memoized.
//
// Identity:
//
//   - Equality is defined purely by grid contents. Key returns a
//     canonical string for map membership, so two Boards reached via
//     different paths with identical grids share one key even though
//     they are distinct objects with possibly different costs.
//   - Less implements the ordering contract used by the search
//     frontier: cost ascending; when costs and contents are both
//     equal, depth ascending.
//
// Goal configuration:
//
//   - The canonical goal is the row-major ascending arrangement
//     1..d²-1 with the blank in the last cell. It is process-wide
//     state, default dimension 3. Call SetDimension before
//     constructing any Board of another size; it is not safe to change
//     the dimension while searches are in flight.
//
// Complexity:
//
//   - Construction and both heuristics: O(d²) time, O(d²) memory.
//   - Successors: O(d²) per generated child (grid copy dominates).
//
// See solve for the search engines driving this type.
package board
