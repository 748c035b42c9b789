package game

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// ErrInvalidConfig is returned by NewGame when the board cannot host a game.
var ErrInvalidConfig = errors.New("invalid game configuration")

const (
	// MinGridSize is the smallest board edge that fits the initial snake.
	MinGridSize = 3

	// InitialLength is the starting snake length.
	InitialLength = 3

	// FoodReward is added to the score for every food eaten.
	FoodReward = 1
)

// Game owns all mutable session state: the snake, the food, the score
// and the run status. It is driven by a single loop calling Tick once
// per frame; it performs no I/O and is not safe for concurrent use.
//
// The snake body lives in a fixed-capacity ring buffer sized to the
// board, so a tick never allocates. cells[head] is the snake's head;
// the tail sits length-1 slots behind it.
type Game struct {
	width  int
	height int

	cells    []Point // ring buffer, capacity width*height
	head     int     // ring index of the head cell
	length   int
	occupied []bool // per-cell snake membership, indexed Y*width+X

	dir     Direction
	food    Point
	hasFood bool
	score   int
	status  Status
	outcome Outcome
	crash   Point

	rng *rand.Rand
}

// NewGame creates a session on a width x height board with the snake
// centered, three cells long and moving right, and one food placed on
// a random free cell. Food placement is seeded from the clock; use
// NewGameWithSeed for reproducible sessions.
func NewGame(width, height int) (*Game, error) {
	return NewGameWithSeed(width, height, time.Now().UnixNano())
}

// NewGameWithSeed is NewGame with a caller-controlled RNG seed, so two
// sessions with the same seed and input sequence evolve identically.
func NewGameWithSeed(width, height int, seed int64) (*Game, error) {
	if width < MinGridSize || height < MinGridSize {
		return nil, fmt.Errorf("%w: board %dx%d is smaller than %dx%d",
			ErrInvalidConfig, width, height, MinGridSize, MinGridSize)
	}

	g := &Game{
		width:    width,
		height:   height,
		cells:    make([]Point, width*height),
		occupied: make([]bool, width*height),
		dir:      Right,
		status:   StatusRunning,
		rng:      rand.New(rand.NewSource(seed)),
	}

	// Head at the center, body trailing left. On narrow boards the head
	// shifts right so the tail still fits at x >= 0.
	headX := width / 2
	if headX < InitialLength-1 {
		headX = InitialLength - 1
	}
	headY := height / 2
	for i := 0; i < InitialLength; i++ {
		p := Point{X: headX - i, Y: headY}
		g.cells[i] = p
		g.occupied[g.index(p)] = true
	}
	g.length = InitialLength

	if !g.placeFood() {
		// Unreachable for any board that passes validation, but a game
		// must never start foodless.
		return nil, fmt.Errorf("%w: no free cell for initial food", ErrInvalidConfig)
	}
	return g, nil
}

// Tick advances the game by one frame. in is the single command
// observed this frame, or InputNone. Safe to call in any state; once
// the session is over every call is a no-op.
func (g *Game) Tick(in Input) {
	if g.status == StatusOver {
		return
	}

	switch in {
	case InputQuit:
		g.status = StatusOver
		g.outcome = OutcomeQuit
		return
	case InputPause:
		if g.status == StatusRunning {
			g.status = StatusPaused
		} else {
			g.status = StatusRunning
		}
		return
	}

	if g.status != StatusRunning {
		return
	}

	// A reversal into the neck is ignored, not an error.
	if dir, ok := in.direction(); ok && dir != g.dir.Opposite() {
		g.dir = dir
	}

	dx, dy := g.dir.Delta()
	head := g.cells[g.head]
	next := Point{X: head.X + dx, Y: head.Y + dy}

	if next.X < 0 || next.X >= g.width || next.Y < 0 || next.Y >= g.height {
		g.over(OutcomeWallCollision, next)
		return
	}

	growing := g.hasFood && next == g.food

	// The tail cell vacates this tick, so moving onto it is legal --
	// unless the snake grows, in which case the tail stays put.
	if g.occupied[g.index(next)] && !(next == g.tail() && !growing) {
		g.over(OutcomeSelfCollision, next)
		return
	}

	if !growing {
		g.popTail()
	}
	g.pushHead(next)

	if growing {
		g.score += FoodReward
		if !g.placeFood() {
			// Board is full: the session ends as a win, not an error.
			g.hasFood = false
			g.status = StatusOver
			g.outcome = OutcomeWin
		}
	}
}

// Snapshot returns an immutable copy of the current state. It never
// mutates the game and is safe to call any number of times between
// ticks.
func (g *Game) Snapshot() Snapshot {
	snake := make([]Point, g.length)
	for i := 0; i < g.length; i++ {
		snake[i] = g.cells[(g.head+i)%len(g.cells)]
	}

	snap := Snapshot{
		Width:   g.width,
		Height:  g.height,
		Snake:   snake,
		Score:   g.score,
		Length:  g.length,
		Status:  g.status,
		Outcome: g.outcome,
	}
	if g.hasFood {
		food := g.food
		snap.Food = &food
	}
	if g.outcome == OutcomeWallCollision || g.outcome == OutcomeSelfCollision {
		crash := g.crash
		snap.CrashPoint = &crash
	}
	return snap
}

func (g *Game) over(outcome Outcome, crash Point) {
	g.status = StatusOver
	g.outcome = outcome
	g.crash = crash
}

func (g *Game) index(p Point) int {
	return p.Y*g.width + p.X
}

func (g *Game) tail() Point {
	return g.cells[(g.head+g.length-1)%len(g.cells)]
}

func (g *Game) pushHead(p Point) {
	g.head = (g.head - 1 + len(g.cells)) % len(g.cells)
	g.cells[g.head] = p
	g.length++
	g.occupied[g.index(p)] = true
}

func (g *Game) popTail() {
	g.occupied[g.index(g.tail())] = false
	g.length--
}

// placeFood puts the food on a cell chosen uniformly among all cells
// not occupied by the snake. Instead of rejection sampling, it draws
// an index into the free cells and scans the board counting them, so
// placement stays bounded as the snake fills the grid. Returns false
// when no free cell exists.
func (g *Game) placeFood() bool {
	free := g.width*g.height - g.length
	if free == 0 {
		return false
	}

	pick := g.rng.Intn(free)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := Point{X: x, Y: y}
			if g.occupied[g.index(p)] {
				continue
			}
			if pick == 0 {
				g.food = p
				g.hasFood = true
				return true
			}
			pick--
		}
	}
	return false
}
