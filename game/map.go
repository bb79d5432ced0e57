package game

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	Stop  Action = "Stop"
)

// Fixed order in which legal actions are enumerated
var directions = []Action{North, South, East, West}

// Position is a cell of the maze, row 0 at the top.
type Position struct {
	Row int
	Col int
}

func (p Position) move(a Action) Position {
	switch a {
	case North:
		return Position{p.Row - 1, p.Col}
	case South:
		return Position{p.Row + 1, p.Col}
	case East:
		return Position{p.Row, p.Col + 1}
	case West:
		return Position{p.Row, p.Col - 1}
	}
	return p
}

// Maze is the static part of a game: walls and the initial placement of food
// and agents. It is shared by every state derived from it.
type Maze struct {
	Width  int
	Height int
	walls  []bool // Indexed by row*Width + col
	food   []Position
	starts []Position // Agent 0 first, then adversaries in layout order
}

// NewMaze creates an empty maze without walls.
func NewMaze(width, height int) *Maze {
	return &Maze{
		Width:  width,
		Height: height,
		walls:  make([]bool, width*height),
	}
}

// AddWall blocks a cell.
func (m *Maze) AddWall(p Position) {
	m.walls[m.index(p)] = true
}

func (m *Maze) IsWall(p Position) bool {
	if p.Row < 0 || p.Row >= m.Height || p.Col < 0 || p.Col >= m.Width {
		return true
	}
	return m.walls[m.index(p)]
}

func (m *Maze) index(p Position) int {
	return p.Row*m.Width + p.Col
}

// NumAgents counts the maximizing agent plus all adversaries.
func (m *Maze) NumAgents() int {
	return len(m.starts)
}

// neighbors lists the moves that do not run into a wall, in fixed order.
func (m *Maze) neighbors(p Position) []Action {
	actions := make([]Action, 0, len(directions)+1)
	for _, d := range directions {
		if !m.IsWall(p.move(d)) {
			actions = append(actions, d)
		}
	}
	return actions
}
