package engine

import (
	"math/rand"

	"woodpusher/internal/board"
)

// Result carries the outcome of a search. Counters travel in the result
// rather than in package state, so concurrent searches on private positions
// stay independent.
type Result struct {
	Move  board.Move // null when legalMoves was empty
	Score int        // from the mover's perspective
	Nodes int        // positions visited, including leaves
}

// FindBestMove searches the legal-move tree to the given depth with negamax
// and alpha-beta pruning and returns the best move found. The candidate
// list is shuffled first, which only affects selection among equal-score
// siblings. The position is mutated during the search but restored exactly
// before returning; Result.Move is null if legalMoves is empty.
func FindBestMove(p *board.Position, legalMoves []board.Move, depth int) Result {
	res := Result{Score: -CheckmateScore}
	if len(legalMoves) == 0 || depth <= 0 {
		return res
	}

	order := make([]board.Move, len(legalMoves))
	copy(order, legalMoves)
	rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	turn := turnMultiplier(p.SideToMove)
	alpha, beta := -CheckmateScore, CheckmateScore
	for _, m := range order {
		p.MakeMove(m)
		next := p.GenerateLegalMoves()
		score := -negamax(p, next, depth-1, -beta, -alpha, -turn, &res.Nodes)
		p.UndoMove()

		if score > res.Score || res.Move.IsNull() {
			res.Score = score
			res.Move = m
		}
		if res.Score > alpha {
			alpha = res.Score
		}
	}
	return res
}

// negamax returns the best reachable score from the mover's perspective.
// turn is +1 for White-to-move frames and -1 for Black-to-move frames, so
// every frame maximizes for its own side. Alpha-beta cutoffs never change
// the returned score, only the number of nodes visited.
func negamax(p *board.Position, moves []board.Move, depth, alpha, beta, turn int, nodes *int) int {
	*nodes++
	if depth == 0 || len(moves) == 0 {
		return turn * ScoreBoard(p)
	}

	best := -CheckmateScore
	for _, m := range moves {
		p.MakeMove(m)
		next := p.GenerateLegalMoves()
		score := -negamax(p, next, depth-1, -beta, -alpha, -turn, nodes)
		p.UndoMove()

		if score > best {
			best = score
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	return best
}

// turnMultiplier maps the side to move onto the negamax sign convention.
func turnMultiplier(c board.Color) int {
	if c == board.White {
		return 1
	}
	return -1
}

// FindRandomMove picks a legal move uniformly at random. It is the fallback
// when the search produced no candidate, and returns the null move on an
// empty list.
func FindRandomMove(legalMoves []board.Move) board.Move {
	if len(legalMoves) == 0 {
		return board.Move{}
	}
	return legalMoves[rand.Intn(len(legalMoves))]
}
