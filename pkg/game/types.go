package game

// Point represents a coordinate on the game board
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Direction is a movement direction for the snake
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Delta returns the (dx, dy) offset of one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Input is the command observed by the game loop during one frame.
// InputNone means no key was pressed this frame.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputPause
	InputQuit
)

// direction maps a directional input to its Direction.
// Returns false for pause, quit and none.
func (in Input) direction() (Direction, bool) {
	switch in {
	case InputUp:
		return Up, true
	case InputDown:
		return Down, true
	case InputLeft:
		return Left, true
	case InputRight:
		return Right, true
	default:
		return 0, false
	}
}

// Status is the run state of a game session
type Status int

const (
	StatusRunning Status = iota
	StatusPaused
	StatusOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "over"
	default:
		return "unknown"
	}
}

// Outcome records why a session ended. OutcomeNone means the session
// is still in progress.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWallCollision
	OutcomeSelfCollision
	OutcomeWin // snake fills the board, nowhere left to place food
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeWallCollision:
		return "wall collision"
	case OutcomeSelfCollision:
		return "self collision"
	case OutcomeWin:
		return "win"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the game state taken between ticks.
// The renderer and any other observer work from snapshots, never from
// live game internals.
type Snapshot struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Snake      []Point `json:"snake"` // head first
	Food       *Point  `json:"food,omitempty"`
	Score      int     `json:"score"`
	Length     int     `json:"length"`
	Status     Status  `json:"status"`
	Outcome    Outcome `json:"outcome"`
	CrashPoint *Point  `json:"crashPoint,omitempty"`
}
