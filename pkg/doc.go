// Package pkg provides the core libraries for the klondike solitaire game.
//
// # Overview
//
// The pkg directory is organized by layer, bottom up:
//
//  1. [geom] - Points and axis-aligned rectangles for layout and hit-testing
//  2. [card] - Immutable rank/suit/color value types and deck construction
//  3. [pile] - The bounded ordered pile every table zone is built from
//  4. [game] - Klondike orchestration: dealing, moves, win detection
//  5. [errors] - Structured error codes shared by the game and CLI
//
// # Architecture
//
// The typical data flow through a game:
//
//	[card] package (seeded shuffle)
//	         ↓
//	    [game] package (deal into piles, apply moves)
//	         ↓
//	    [pile] package (enforce capacity, order, legality, geometry)
//	         ↓
//	    terminal rendering (internal/cli)
//
// The pile is the load-bearing abstraction: tableau columns, foundations,
// holding cells, the stock, and the waste are all the same container with
// different variants plugged in. The game layer moves cards between piles
// with Pop-then-Push sequences and owns every cross-pile guarantee.
package pkg
