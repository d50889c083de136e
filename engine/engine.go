package engine

import (
	"hypernim/game"

	"github.com/rs/zerolog/log"
)

// Engine drives two-player alternation over one live hypergraph. It owns
// the live state and mutates it in place on each accepted move; analysis
// components must work on copies, never on the live state itself.
type Engine struct {
	State   *game.Hypergraph
	Players [2]string

	current int
	winner  string
	history []*game.Hypergraph
	moves   []game.Move
}

// New returns an engine for the given initial position. Empty player names
// fall back to "Player 1" and "Player 2".
func New(initial *game.Hypergraph, playerOne, playerTwo string) *Engine {
	if initial == nil {
		panic("engine: nil initial state")
	}
	if playerOne == "" {
		playerOne = "Player 1"
	}
	if playerTwo == "" {
		playerTwo = "Player 2"
	}
	return &Engine{
		State:   initial,
		Players: [2]string{playerOne, playerTwo},
	}
}

// CurrentPlayer returns the name of the player to move.
func (e *Engine) CurrentPlayer() string {
	return e.Players[e.current]
}

// Winner returns the winning player's name, or "" if no winner yet.
func (e *Engine) Winner() string {
	return e.winner
}

// IsGameOver reports whether the live state has no vertices left. It is
// recomputed from the live state, never stored.
func (e *Engine) IsGameOver() bool {
	return e.State.IsEmpty()
}

// Moves returns the log of accepted moves in play order.
func (e *Engine) Moves() []game.Move {
	return e.moves
}

// MoveVertex removes v and everything incident to it from the live state.
// The pre-move state is snapshotted for undo. Under the normal-play
// convention the player who empties the vertex set wins. The turn advances
// whether or not the move ended the game.
func (e *Engine) MoveVertex(v game.Vertex) error {
	if !e.State.HasVertex(v) {
		return &game.InvalidMoveError{Vertex: v}
	}

	player := e.CurrentPlayer()
	e.history = append(e.history, e.State.Copy())
	e.State.RemoveVertex(v)
	e.moves = append(e.moves, game.Move{
		Player:  player,
		Action:  game.VertexAction,
		Members: []game.Vertex{v},
	})

	if e.State.IsEmpty() {
		e.winner = player
	}
	e.nextPlayer()

	log.Debug().
		Str("player", player).
		Str("vertex", string(v)).
		Bool("over", e.IsGameOver()).
		Msg("vertex move applied")
	return nil
}

// MoveHyperedge removes every face subsuming the given member set (and the
// exact edge when given two vertices), records the move, and advances the
// turn. Unlike MoveVertex it performs no terminal/winner check: hyperedge
// removal cannot empty the vertex set.
func (e *Engine) MoveHyperedge(members ...game.Vertex) {
	player := e.CurrentPlayer()
	e.history = append(e.history, e.State.Copy())
	e.State.RemoveHyperedge(members...)
	e.moves = append(e.moves, game.Move{
		Player:  player,
		Action:  game.HyperedgeAction,
		Members: members,
	})
	e.nextPlayer()

	log.Debug().
		Str("player", player).
		Interface("members", members).
		Msg("hyperedge move applied")
}

// Undo restores the most recent snapshot and reverts the turn to the
// previous player. It is a no-op when there is nothing to undo. A winner
// set by the undone move is deliberately left in place; IsGameOver still
// reflects the restored state.
func (e *Engine) Undo() {
	if len(e.history) == 0 {
		return
	}
	e.State = e.history[len(e.history)-1]
	e.history = e.history[:len(e.history)-1]
	if len(e.moves) > 0 {
		e.moves = e.moves[:len(e.moves)-1]
	}
	e.nextPlayer()
}

// nextPlayer switches the active player between the two players.
func (e *Engine) nextPlayer() {
	e.current = 1 - e.current
}
