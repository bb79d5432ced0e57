package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

var ErrInvalidLayout = errors.New("invalid layout")

const (
	wallCell  = '%'
	foodCell  = '.'
	maxCell   = 'P'
	ghostCell = 'G'
	emptyCell = ' '
)

// LoadLayout reads a maze layout from a file.
func LoadLayout(path string) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout: %w", err)
	}
	defer f.Close()

	return ParseLayout(f)
}

// ParseLayout reads a text layout: '%' wall, '.' food, 'P' the maximizing
// agent, 'G' an adversary and ' ' an empty cell. Rows must have equal width.
func ParseLayout(r io.Reader) (*Maze, error) {
	var rows []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		rows = append(rows, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: empty layout", ErrInvalidLayout)
	}

	width := len(rows[0])
	m := NewMaze(width, len(rows))
	var ghosts []Position
	var start *Position
	for row, line := range rows {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has width %d, expected %d", ErrInvalidLayout, row, len(line), width)
		}
		for col, cell := range line {
			p := Position{Row: row, Col: col}
			switch cell {
			case wallCell:
				m.AddWall(p)
			case foodCell:
				m.food = append(m.food, p)
			case maxCell:
				if start != nil {
					return nil, fmt.Errorf("%w: more than one %q", ErrInvalidLayout, maxCell)
				}
				start = &p
			case ghostCell:
				ghosts = append(ghosts, p)
			case emptyCell:
			default:
				return nil, fmt.Errorf("%w: unexpected cell %q at %+v", ErrInvalidLayout, cell, p)
			}
		}
	}

	if start == nil {
		return nil, fmt.Errorf("%w: missing %q", ErrInvalidLayout, maxCell)
	}
	if len(m.food) == 0 {
		return nil, fmt.Errorf("%w: no food", ErrInvalidLayout)
	}
	m.starts = append([]Position{*start}, ghosts...)
	return m, nil
}

// WithGhosts keeps only the first n adversaries of the layout. A negative n
// keeps them all.
func (m *Maze) WithGhosts(n int) *Maze {
	if n < 0 || n >= len(m.starts)-1 {
		return m
	}
	trimmed := *m
	trimmed.starts = m.starts[:n+1]
	return &trimmed
}
