package model

import "github.com/gdamore/tcell/v2"

// CellColumns is the number of terminal columns drawn per cell, which keeps
// cells roughly square on a typical terminal font
const CellColumns = 2

// TerminalRenderer draws grid snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	alive  tcell.Style
	dead   tcell.Style
	text   tcell.Style
}

func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		alive:  tcell.StyleDefault.Background(tcell.ColorWhite),
		dead:   tcell.StyleDefault.Background(tcell.ColorBlack),
		text:   tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
	}
}

// Display draws every cell of g. It only reads g.
func (r *TerminalRenderer) Display(g *Grid) {
	for _, c := range g.cells {
		style := r.dead
		if c.State == Alive {
			style = r.alive
		}
		col := c.Position.X * CellColumns
		for i := range CellColumns {
			r.screen.SetContent(col+i, c.Position.Y, ' ', nil, style)
		}
	}
}

// Status writes a line of text on the given terminal row
func (r *TerminalRenderer) Status(row int, text string) {
	width, _ := r.screen.Size()
	col := 0
	for _, ch := range text {
		if col >= width {
			break
		}
		r.screen.SetContent(col, row, ch, nil, r.text)
		col++
	}
	for ; col < width; col++ {
		r.screen.SetContent(col, row, ' ', nil, r.text)
	}
}

// CellAt maps a terminal column and row to grid coordinates
func (r *TerminalRenderer) CellAt(col, row int) (x, y int) {
	return col / CellColumns, row
}

// Show flushes pending drawing to the terminal
func (r *TerminalRenderer) Show() {
	r.screen.Show()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	r.screen.Clear()
}
