package renderer

import (
	"fmt"
	"strings"

	"github.com/trytobebee/termsnake/pkg/config"
	"github.com/trytobebee/termsnake/pkg/game"
)

// Cell types for the board
const (
	cellEmpty = iota
	cellWall
	cellHead
	cellBody
	cellFood
	cellCrash
)

// TerminalRenderer draws game snapshots as emoji cells with ANSI
// escape codes. A wall border frames the playfield, so the drawn board
// is two cells wider and taller than the grid.
type TerminalRenderer struct {
	width  int // playfield width, without the border
	height int
	board  [][]int
	buffer strings.Builder
}

// NewTerminalRenderer creates a renderer for a width x height grid.
// The cell board is preallocated to keep per-frame work allocation free.
func NewTerminalRenderer(width, height int) *TerminalRenderer {
	board := make([][]int, height+2)
	for i := range board {
		board[i] = make([]int, width+2)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		board:  board,
	}
}

// clearScreen clears the terminal using ANSI escape codes
func (r *TerminalRenderer) clearScreen() {
	fmt.Print("\033[H\033[2J\033[3J")
}

// ShowCursor shows the cursor (call on exit)
func (r *TerminalRenderer) ShowCursor() {
	fmt.Print("\033[?25h")
}

// HideCursor hides the cursor (call on start)
func (r *TerminalRenderer) HideCursor() {
	fmt.Print("\033[?25l")
}

// Render clears the screen and draws the snapshot.
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.clearScreen()
	fmt.Print(r.frame(snap))
}

// frame builds the full screen contents for one snapshot.
func (r *TerminalRenderer) frame(snap game.Snapshot) string {
	r.buffer.Reset()

	for y := range r.board {
		for x := range r.board[y] {
			r.board[y][x] = cellEmpty
		}
	}

	// Border walls around the playfield
	for x := 0; x < r.width+2; x++ {
		r.board[0][x] = cellWall
		r.board[r.height+1][x] = cellWall
	}
	for y := 0; y < r.height+2; y++ {
		r.board[y][0] = cellWall
		r.board[y][r.width+1] = cellWall
	}

	set := func(p game.Point, cell int) {
		if p.X >= 0 && p.X < r.width && p.Y >= 0 && p.Y < r.height {
			r.board[p.Y+1][p.X+1] = cell
		}
	}

	for i, p := range snap.Snake {
		if i == 0 {
			set(p, cellHead)
		} else {
			set(p, cellBody)
		}
	}
	if snap.Food != nil {
		set(*snap.Food, cellFood)
	}
	if snap.CrashPoint != nil {
		// An out-of-bounds crash lands on the border wall.
		c := *snap.CrashPoint
		switch {
		case c.X < 0:
			r.board[c.Y+1][0] = cellCrash
		case c.X >= r.width:
			r.board[c.Y+1][r.width+1] = cellCrash
		case c.Y < 0:
			r.board[0][c.X+1] = cellCrash
		case c.Y >= r.height:
			r.board[r.height+1][c.X+1] = cellCrash
		default:
			set(c, cellCrash)
		}
	}

	r.buffer.WriteString("\n  🐍 SNAKE 🐍\n")
	r.buffer.WriteString(fmt.Sprintf("  Score: %d  |  Length: %d\n\n", snap.Score, snap.Length))

	for _, row := range r.board {
		r.buffer.WriteString("  ")
		for _, cell := range row {
			switch cell {
			case cellEmpty:
				r.buffer.WriteString(config.CharEmpty)
			case cellWall:
				r.buffer.WriteString(config.CharWall)
			case cellHead:
				r.buffer.WriteString(config.CharHead)
			case cellBody:
				r.buffer.WriteString(config.CharBody)
			case cellFood:
				r.buffer.WriteString(config.CharFood)
			case cellCrash:
				r.buffer.WriteString(config.CharCrash)
			}
		}
		r.buffer.WriteString("\n")
	}

	r.buffer.WriteString("\n  Use WASD or Arrow keys to move\n")
	r.buffer.WriteString("  P to pause, Q to quit\n")

	if snap.Status == game.StatusPaused {
		r.buffer.WriteString("\n  ⏸️  PAUSED - Press P to continue\n")
	}

	if snap.Status == game.StatusOver {
		switch snap.Outcome {
		case game.OutcomeWin:
			r.buffer.WriteString(fmt.Sprintf("\n  🏆 YOU WIN! Score: %d. Press R to play again or Q to quit\n", snap.Score))
		case game.OutcomeQuit:
			r.buffer.WriteString("\n  Thanks for playing! 👋\n")
		default:
			r.buffer.WriteString(fmt.Sprintf("\n  💀 GAME OVER! Score: %d. Press R to restart or Q to quit\n", snap.Score))
		}
	}

	return r.buffer.String()
}
