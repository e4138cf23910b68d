// Package npuzzle solves the N-tile sliding puzzle (classically the
// 8-puzzle) with informed and uninformed graph search.
//
// 🚀 What is npuzzle?
//
//	A small, focused solver library plus a demonstration CLI:
//		• board/  — immutable puzzle snapshots: successor generation,
//		            goal test, Misplaced-Tile and Manhattan heuristics
//		• solve/  — Uniform Cost Search and A* over the board space,
//		            with search statistics (nodes expanded, peak
//		            frontier size, elapsed time)
//		• cmd/npuzzle — run a scenario from a YAML file or a scramble
//
// ✨ Why choose npuzzle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Deterministic – fixed successor ordering gives reproducible runs
//   - Pure Go – no cgo, search built on container/heap
//   - Tunable – functional options select strategy and heuristic
//
// Quick ASCII example (one move from the goal):
//
//	1 2 3        1 2 3
//	4 5 _   →    4 5 6
//	7 8 6        7 8 _
//
// Both Uniform Cost Search and A* (either heuristic) report the same
// minimal solution depth; A* with Manhattan distance expands the
// fewest nodes. Dive into board/ and solve/ package docs for the full
// contract.
//
//	go get github.com/katalvlaran/npuzzle
package npuzzle
