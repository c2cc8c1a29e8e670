// Package mazegraph generates perfect rectangular mazes and hands them over
// as graphs.
//
// What is mazegraph?
//
//	A small library plus a command-line tool that brings together:
//		• Grid model: cells with four walls, bounds checks, row-major indexing
//		• Generation: randomized iterative depth-first carving, seedable
//		• Graph export: adjacency list and adjacency matrix views
//		• Verification: connectivity, acyclicity and symmetry checks
//		• Delivery: a terminal front-end and a JSON HTTP endpoint
//
// Under the hood, everything is organized under these packages:
//
//	maze/        — Maze, Cell, Direction; Generate, AdjacencyList, AdjacencyMatrix, Render
//	verify/      — BFS, Connected, Acyclic, Symmetric, Agree, SpanningTree
//	api/         — gin router and the GET /v1/mazes controller
//	config/      — environment and .env settings for the binaries
//	cmd/mazegen/ — interactive and flag-driven CLI, -serve for HTTP
//
// Quick ASCII example (3×2, seed chosen for illustration):
//
//	+---+---+---+
//	|       |   |
//	+---+   +   +
//	|           |
//	+---+---+---+
//
// is the spanning tree 0-1, 1-4, 3-4, 4-5, 2-5 over cells 0..5.
package mazegraph
