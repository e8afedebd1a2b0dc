// Package lvsearch is a small toolkit for finding *some* path through state
// spaces that are too large, cyclic or infinite to materialize.
//
// What is lvsearch?
//
//	A generic, lazy, explicit-stack depth-first search engine plus the
//	pieces needed to exercise it:
//		• search/    — Space, Goal, Cursor, Search/Run, Replay, Recorder
//		• treespace/ — the bounded binary-tree and choice-tree spaces
//		• core/      — a thread-safe adjacency-list Graph exposed as a Space
//		• builder/   — deterministic graph generators (path, cycle, random, …)
//		• cmd/lvsearch — CLI: tree, graph and concurrent bench subcommands
//
// Why lvsearch?
//
//   - Lazy — a state is expanded only when the walk reaches it, and only one
//     pending transition per depth is held.
//   - Terminating on cycles — every discovered state is expanded at most once.
//   - Predictable — transitions are tried in the order the space yields them,
//     so the returned path is the first one in that order.
//
// Quick example:
//
//	path, ok := search.Search(treespace.ChoiceTree(), 0, search.Equal(4))
//	// path == [Left Right], ok == true
//
//	go get github.com/katalvlaran/lvsearch/search
package lvsearch
