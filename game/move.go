package game

import "fmt"

// ActionType represents the type of action a player can perform.
type ActionType int

const (
	VertexAction ActionType = iota
	HyperedgeAction
)

// Move records an action taken by a player.
type Move struct {
	Player  string
	Action  ActionType
	Members []Vertex
}

func (m Move) String() string {
	switch m.Action {
	case VertexAction:
		return fmt.Sprintf("%s removes vertex %s", m.Player, m.Members[0])
	case HyperedgeAction:
		return fmt.Sprintf("%s removes hyperedge %v", m.Player, m.Members)
	default:
		return fmt.Sprintf("%s performs unknown action", m.Player)
	}
}
