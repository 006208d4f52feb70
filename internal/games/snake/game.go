// Package snake implements the classic Snake game on a square board.
// Sim holds the rules; Game adapts it to the registry for the terminal UI.
package snake

import (
	"fmt"

	"github.com/poi5en/termfolio/internal/core"
	"github.com/poi5en/termfolio/internal/registry"
)

// ID is the registry and score-table identifier.
const ID = "snake"

const (
	// ExitHint is shown under the board while playing.
	ExitHint = "Use Arrow Keys to Move | ESC to Exit"
	hudRows  = 1
	hintRows = 1
)

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// Game adapts Sim to registry.Game: pause, restart and rendering.
type Game struct {
	sim      *Sim
	seed     int64
	restarts int64
	paused   bool

	screenW  int
	screenH  int
	cellW    int // screen columns per board cell
	tooSmall bool
}

// New creates an un-reset Snake game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset starts a new run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.restarts = 0
	g.paused = false
	g.sim = NewSim(cfg.Grid, cfg.Seed)
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize fits the board to a new screen size without touching the run.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.sim == nil {
		return
	}
	n := g.sim.Size()
	g.tooSmall = h < n+2+hudRows+hintRows || w < n+2
	// Two columns per cell when there is room, which keeps cells square.
	g.cellW = core.Clamp((w-2)/n, 1, 2)
}

// Step applies the frame's actions in arrival order and then advances
// the simulation one tick unless paused or finished.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.sim == nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.sim.Status() == GameOver {
		g.restart()
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) && g.sim.Status() == Running {
		g.paused = !g.paused
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions {
		if dir, ok := headingFor(a); ok {
			g.sim.Turn(dir)
		}
	}
	g.sim.Tick()

	return core.StepResult{State: g.State()}
}

// restart rebuilds the run with a seed derived from the original one, so
// a seeded session stays reproducible across restarts.
func (g *Game) restart() {
	g.restarts++
	g.paused = false
	g.sim.Reset(g.seed + g.restarts)
}

func headingFor(a core.Action) (core.Point, bool) {
	switch a {
	case core.ActionUp:
		return Up, true
	case core.ActionDown:
		return Down, true
	case core.ActionLeft:
		return Left, true
	case core.ActionRight:
		return Right, true
	}
	return core.Point{}, false
}

// State returns the score and status for the platform.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.sim.Score(),
		GameOver: g.sim.Status() == GameOver,
		Paused:   g.paused,
	}
}

// Sim exposes the underlying simulation.
func (g *Game) Sim() *Sim { return g.sim }

// Render draws the HUD, the board and any overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sim == nil {
		return
	}

	dst.DrawText(1, 0, fmt.Sprintf("SNAKE // SCORE: %d", g.sim.Score()), core.ColorBrightGreen)

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, "Resize to continue", core.ColorGray)
		return
	}

	n := g.sim.Size()
	board := core.NewRect((dst.Width()-(n*g.cellW+2))/2, hudRows, n*g.cellW+2, n+2)
	dst.DrawBox(board, core.ColorGray)

	g.drawCell(dst, board, g.sim.Food(), '●', core.ColorRed)
	for i, seg := range g.sim.Snake() {
		if i == 0 {
			g.drawCell(dst, board, seg, '█', core.ColorBrightGreen)
		} else {
			g.drawCell(dst, board, seg, '▓', core.ColorGreen)
		}
	}

	dst.DrawTextCentered(board.Bottom(), ExitHint, core.ColorGray)

	switch {
	case g.sim.Status() == GameOver:
		g.renderOverlay(dst, board, core.ColorRed, "GAME OVER", fmt.Sprintf("Score: %d", g.sim.Score()), "R Restart | ESC Exit")
	case g.paused:
		g.renderOverlay(dst, board, core.ColorYellow, "PAUSED", "P to resume")
	}
}

func (g *Game) drawCell(dst *core.Screen, board core.Rect, p core.Point, r rune, c core.Color) {
	if p.X < 0 || p.Y < 0 {
		return
	}
	x := board.X + 1 + p.X*g.cellW
	y := board.Y + 1 + p.Y
	for i := 0; i < g.cellW; i++ {
		dst.SetColored(x+i, y, r, c)
	}
}

func (g *Game) renderOverlay(dst *core.Screen, board core.Rect, c core.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 4
	box := core.NewRect((dst.Width()-w)/2, board.Y+(board.H-h)/2, w, h)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorWhite)
	}
}
