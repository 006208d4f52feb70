package snake

import (
	"math/rand"

	"github.com/poi5en/termfolio/internal/core"
)

const (
	// DefaultGridSize is the board width and height in cells.
	DefaultGridSize = 20
	// FoodPoints is the score awarded per food eaten.
	FoodPoints = 10
)

// Headings the snake can travel in.
var (
	Right = core.Point{X: 1, Y: 0}
	Left  = core.Point{X: -1, Y: 0}
	Down  = core.Point{X: 0, Y: 1}
	Up    = core.Point{X: 0, Y: -1}
)

// Status is the lifecycle state of a run.
type Status int

const (
	Running Status = iota
	GameOver
)

func (s Status) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// StartPosition is the cell the snake spawns on.
var StartPosition = core.Point{X: 10, Y: 10}

// Sim is the Snake state machine on a square board.
// The snake is stored head first; its cells are unique and food never
// overlaps it.
type Sim struct {
	size    int
	rng     *rand.Rand
	snake   []core.Point
	heading core.Point // direction of the last move
	pending core.Point // accepted turn, applied on the next tick
	food    core.Point
	score   int
	status  Status
	ticks   uint64
}

// NewSim builds a running board of size×size cells. Sizes below 4 fall
// back to DefaultGridSize.
func NewSim(size int, seed int64) *Sim {
	if size < 4 {
		size = DefaultGridSize
	}
	s := &Sim{size: size}
	s.Reset(seed)
	return s
}

// Reset discards the run and rebuilds the initial state.
func (s *Sim) Reset(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
	start := StartPosition
	if !s.inBounds(start) {
		start = core.Point{X: s.size / 2, Y: s.size / 2}
	}
	s.snake = []core.Point{start}
	s.heading = Right
	s.pending = Right
	s.score = 0
	s.status = Running
	s.ticks = 0
	s.spawnFood()
}

// Turn requests a new heading. Requests opposite to the heading of the
// last move are ignored, as are non-unit vectors. It reports whether the
// request was accepted.
func (s *Sim) Turn(dir core.Point) bool {
	if dir != Up && dir != Down && dir != Left && dir != Right {
		return false
	}
	if dir == s.heading.Neg() {
		return false
	}
	s.pending = dir
	return true
}

// Tick advances the snake one cell. It reports whether food was eaten.
// A tick on a finished run does nothing.
func (s *Sim) Tick() bool {
	if s.status == GameOver {
		return false
	}
	s.ticks++
	s.heading = s.pending

	next := s.snake[0].Add(s.heading)
	if !s.inBounds(next) || s.occupied(next) {
		s.status = GameOver
		return false
	}

	ate := next == s.food
	if ate {
		s.snake = append([]core.Point{next}, s.snake...)
		s.score += FoodPoints
		s.spawnFood()
		return true
	}

	copy(s.snake[1:], s.snake[:len(s.snake)-1])
	s.snake[0] = next
	return false
}

// spawnFood places food uniformly over the free cells. A full board ends
// the run.
func (s *Sim) spawnFood() {
	free := make([]core.Point, 0, s.size*s.size-len(s.snake))
	for y := 0; y < s.size; y++ {
		for x := 0; x < s.size; x++ {
			p := core.Point{X: x, Y: y}
			if !s.occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		s.food = core.Point{X: -1, Y: -1}
		s.status = GameOver
		return
	}
	s.food = free[s.rng.Intn(len(free))]
}

func (s *Sim) inBounds(p core.Point) bool {
	return core.NewRect(0, 0, s.size, s.size).Contains(p.X, p.Y)
}

func (s *Sim) occupied(p core.Point) bool {
	for _, seg := range s.snake {
		if seg == p {
			return true
		}
	}
	return false
}

// Size returns the board side length.
func (s *Sim) Size() int { return s.size }

// Snake returns a copy of the snake cells, head first.
func (s *Sim) Snake() []core.Point {
	out := make([]core.Point, len(s.snake))
	copy(out, s.snake)
	return out
}

// Head returns the head cell.
func (s *Sim) Head() core.Point { return s.snake[0] }

// Heading returns the direction of the last move.
func (s *Sim) Heading() core.Point { return s.heading }

// Food returns the food cell, or (-1,-1) when the board is full.
func (s *Sim) Food() core.Point { return s.food }

// Score returns the current score.
func (s *Sim) Score() int { return s.score }

// Status returns the run status.
func (s *Sim) Status() Status { return s.status }

// Ticks returns the number of ticks applied to this run.
func (s *Sim) Ticks() uint64 { return s.ticks }
