package main

import (
	"quick-chess/quickmg"
)

const fiftyMoveLimit = 100

// State captures the information we need to reason about repetitions and draws.
type State struct {
	Hash   uint64
	Rule50 int
}

// History is the sequence of positions the current game has passed through,
// oldest first. The last entry is the session's current board.
type History struct {
	states []State
}

// Reset rebuilds the history so that it only contains the given board.
func (h *History) Reset(board quickmg.Board) {
	h.states = h.states[:0]
	h.Push(board)
}

// Push appends the board's state to the history.
func (h *History) Push(board quickmg.Board) {
	h.states = append(h.states, State{
		Hash:   board.Hash(),
		Rule50: board.HalfmoveClock(),
	})
}

// Len returns the number of recorded positions.
func (h *History) Len() int { return len(h.states) }

// Repetitions counts earlier occurrences of the current position. Only the
// positions since the last capture or pawn move can match.
func (h *History) Repetitions() int {
	if len(h.states) <= 1 {
		return 0
	}
	curr := h.states[len(h.states)-1]
	start := len(h.states) - 1 - curr.Rule50
	if start < 0 {
		start = 0
	}
	count := 0
	for i := len(h.states) - 2; i >= start; i-- {
		if h.states[i].Hash == curr.Hash {
			count++
		}
	}
	return count
}

// IsDraw reports a fifty-move or threefold-repetition draw for the current position.
func (h *History) IsDraw() bool {
	if len(h.states) == 0 {
		return false
	}
	if h.states[len(h.states)-1].Rule50 >= fiftyMoveLimit {
		return true
	}
	return h.Repetitions() >= 2
}
