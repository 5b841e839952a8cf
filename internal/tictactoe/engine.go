package tictactoe

import "math"

// BestMove picks the strongest move for side on the given board, searching at
// most depth plies ahead. The second return value is false only when no empty
// cell remains.
//
// Candidates are tried in row-major order and a candidate replaces the current
// best only on a strictly greater score, so the result is deterministic and
// ties keep the earliest cell. The board is mutated speculatively during the
// search and is byte-for-byte restored before returning.
func BestMove(board *Board, side string, depth int) (Move, bool) {
	bestScore := math.MinInt
	var bestMove Move
	found := false

	for _, move := range board.LegalMoves() {
		board[move.Index()] = side
		score := minimax(board, side, 0, false, depth)
		board[move.Index()] = EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = move
			found = true
		}
	}

	return bestMove, found
}

// minimax scores the board from side's perspective: +1 when side has won, -1
// when the opponent has, 0 for a draw or once the search hits maxDepth. There
// is no positional heuristic, so the value is exact up to the depth cap.
func minimax(board *Board, side string, depth int, maximizing bool, maxDepth int) int {
	switch board.Winner() {
	case side:
		return 1
	case Opponent(side):
		return -1
	case Tie:
		return 0
	}

	// a capped search treats anything beyond the horizon as neutral
	if depth >= maxDepth {
		return 0
	}

	if maximizing {
		best := math.MinInt
		for _, move := range board.LegalMoves() {
			board[move.Index()] = side
			if score := minimax(board, side, depth+1, false, maxDepth); score > best {
				best = score
			}
			board[move.Index()] = EmptyCell
		}

		return best
	}

	best := math.MaxInt
	opponent := Opponent(side)
	for _, move := range board.LegalMoves() {
		board[move.Index()] = opponent
		if score := minimax(board, side, depth+1, true, maxDepth); score < best {
			best = score
		}
		board[move.Index()] = EmptyCell
	}

	return best
}
