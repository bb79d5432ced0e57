package game

import (
	"fmt"
	"slices"
)

const (
	TimePenalty = 1
	FoodReward  = 10
	WinReward   = 500
	LoseLoss    = 500
)

// MazeState is the dynamic state of a maze game. Every operation returns a new
// copy; the static Maze is shared.
type MazeState struct {
	Maze      *Maze
	Positions []Position // Indexed by agent
	Food      []bool     // Indexed like Maze.walls
	FoodLeft  int
	Points    float64
	Won       bool
	Lost      bool
}

// NewMazeState places every agent and food pellet at its initial position.
func NewMazeState(m *Maze) *MazeState {
	s := &MazeState{
		Maze:      m,
		Positions: make([]Position, len(m.starts)),
		Food:      make([]bool, m.Width*m.Height),
	}
	copy(s.Positions, m.starts)
	for _, p := range m.food {
		s.Food[m.index(p)] = true
		s.FoodLeft++
	}
	return s
}

func (s *MazeState) Copy() *MazeState {
	positions := make([]Position, len(s.Positions))
	copy(positions, s.Positions)

	food := make([]bool, len(s.Food))
	copy(food, s.Food)

	return &MazeState{
		Maze:      s.Maze,
		Positions: positions,
		Food:      food,
		FoodLeft:  s.FoodLeft,
		Points:    s.Points,
		Won:       s.Won,
		Lost:      s.Lost,
	}
}

func (s *MazeState) IsWin() bool    { return s.Won }
func (s *MazeState) IsLose() bool   { return s.Lost }
func (s *MazeState) NumAgents() int { return len(s.Positions) }
func (s *MazeState) Score() float64 { return s.Points }

func (s *MazeState) HasFood(p Position) bool {
	return !s.Maze.IsWall(p) && s.Food[s.Maze.index(p)]
}

// LegalActions returns no actions once the game is over. The maximizing agent
// may always Stop; adversaries must keep moving.
func (s *MazeState) LegalActions(agent int) []Action {
	if s.Won || s.Lost {
		return nil
	}
	actions := s.Maze.neighbors(s.Positions[agent])
	if agent == MaxAgent {
		actions = append(actions, Stop)
	}
	return actions
}

// Successor applies an agent's action. It panics on a finished game or an
// illegal action, both of which are caller bugs.
func (s *MazeState) Successor(agent int, action Action) State {
	if s.Won || s.Lost {
		panic("cannot generate a successor of a terminal state")
	}
	if !slices.Contains(s.LegalActions(agent), action) {
		panic(fmt.Sprintf("illegal action %q for agent %d at %+v", action, agent, s.Positions[agent]))
	}
	next := s.Copy()
	target := next.Positions[agent].move(action)
	next.Positions[agent] = target

	if agent == MaxAgent {
		next.Points -= TimePenalty
		next.eat(target)
	}
	next.checkCaught()
	return next
}

func (s *MazeState) eat(p Position) {
	i := s.Maze.index(p)
	if !s.Food[i] {
		return
	}
	s.Food[i] = false
	s.FoodLeft--
	s.Points += FoodReward
	if s.FoodLeft == 0 {
		s.Points += WinReward
		s.Won = true
	}
}

func (s *MazeState) checkCaught() {
	if s.Won {
		return
	}
	for _, p := range s.Positions[1:] {
		if p == s.Positions[MaxAgent] {
			s.Points -= LoseLoss
			s.Lost = true
			return
		}
	}
}
