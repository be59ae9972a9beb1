package game

import (
	"fmt"
	"strconv"

	"github.com/dkravets/sumdrop/internal/core"
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := g.rules.Board.Cols*cellWidth + 1
	boardH := g.rules.Board.Rows*cellHeight + 1

	g.renderHUD(dst, boardW)

	if g.round.Phase() == PhaseIdle {
		g.drawOverlay(dst, g.boardX+boardW/2, g.boardY+boardH/2,
			"SUMDROP", "Press R to play", "Q to quit")
		return
	}

	g.renderBoard(dst)
	g.renderOverlays(dst, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score line, and target line.
func (g *Game) renderHUD(dst *core.Screen, boardW int) {
	title := "S U M D R O P"
	dst.DrawText(g.boardX+(boardW-len(title))/2, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.round.Score())
	dst.DrawText(g.boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.round.HighScore())
	bestX := g.boardX + boardW - len(bestStr)
	if bestX < g.boardX+len(scoreStr)+2 {
		bestX = g.boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	if g.round.Phase() == PhaseIdle {
		return
	}

	// Target, with the running selection sum next to it
	sum := g.round.Selection().Sum(g.round.Grid())
	targetStr := fmt.Sprintf("Target: %d", g.round.Target())
	if sum > 0 {
		targetStr = fmt.Sprintf("Target: %d  (sum %d)", g.round.Target(), sum)
	}
	dst.DrawTextColored(g.boardX+(boardW-len(targetStr))/2, 2, targetStr, core.ColorBrightWhite)

	// Timed mode: countdown bar to the right of the board
	if g.round.Mode() == ModeTimed {
		g.renderTimeBar(dst, boardW)
	}
}

// renderTimeBar draws a vertical countdown next to the board: it drains
// as the next row injection approaches.
func (g *Game) renderTimeBar(dst *core.Screen, boardW int) {
	interval := g.rules.Timing.InjectIntervalMs
	if interval <= 0 {
		return
	}
	barH := g.rules.Board.Rows * cellHeight
	filled := g.round.TimeRemainingMs() * barH / interval
	x := g.boardX + boardW + 1
	for i := 0; i < barH; i++ {
		ch := '░'
		c := core.ColorGray
		if barH-i <= filled {
			ch = '█'
			c = core.ColorCyan
		}
		dst.SetCell(x, g.boardY+1+i, ch, c)
	}
}

// renderBoard draws the grid borders, tiles, and cursor.
func (g *Game) renderBoard(dst *core.Screen) {
	rows := g.rules.Board.Rows
	cols := g.rules.Board.Cols

	// Grid lines
	for y := 0; y <= rows; y++ {
		for x := 0; x <= cols; x++ {
			px := g.boardX + x*cellWidth
			py := g.boardY + y*cellHeight

			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == cols:
				corner = '┐'
			case y == rows && x == 0:
				corner = '└'
			case y == rows && x == cols:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == rows:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == cols:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetCell(px, py, corner, core.ColorGray)

			if x < cols {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, '─', core.ColorGray)
				}
			}
			if y < rows {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	// Death row marker
	for i := 1; i < cols*cellWidth; i++ {
		if dst.Get(g.boardX+i, g.boardY+cellHeight) == '─' {
			dst.SetCell(g.boardX+i, g.boardY+cellHeight, '─', core.ColorRed)
		}
	}

	clearing := g.round.ClearingIDs()
	sel := g.round.Selection()

	// Tiles
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			t := g.round.Grid().TileAt(row, col)
			cellX := g.boardX + col*cellWidth + 1
			cellY := g.boardY + row*cellHeight + 1

			isCursor := row == g.cursorRow && col == g.cursorCol
			if isCursor {
				dst.SetCell(cellX-1, cellY, '[', core.ColorBrightYellow)
				dst.SetCell(cellX+cellWidth-1, cellY, ']', core.ColorBrightYellow)
			}

			if t == nil {
				continue
			}

			c := core.ColorDefault
			switch {
			case clearing[t.ID]:
				// Flash while resolving: visible clear precedes removal
				c = core.ColorBrightYellow
			case sel.Has(t.ID):
				c = core.ColorCyan
			}

			valStr := strconv.Itoa(t.Value)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, c)
		}
	}
}

// renderOverlays draws phase overlays and the big-clear banner.
func (g *Game) renderOverlays(dst *core.Screen, boardW, boardH int) {
	centerX := g.boardX + boardW/2
	centerY := g.boardY + boardH/2

	switch g.round.Phase() {
	case PhasePaused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	case PhaseGameOver:
		finalStr := fmt.Sprintf("Final score: %d", g.round.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", finalStr, "Press R to restart")
		return
	}

	if g.flashTicks > 0 {
		banner := fmt.Sprintf("*** %d-TILE CLEAR! ***", g.flashCount)
		dst.DrawTextColored(centerX-len(banner)/2, g.boardY-1, banner, core.ColorBrightYellow)
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Move | Space: Select | Mouse: Click tiles | P: Pause | R: Restart | Q: Quit"
}
