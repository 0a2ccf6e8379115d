package client

import (
	"math"

	"github.com/gdamore/tcell"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"PongSim/core"
)

const PaddleSymbol = 0x2588     // 球拍符號
const BallSymbol = 0x25CF       // 球符號
const CenterLineSymbol = 0x2590 // 中線符號

// BigTextSize is the smallest text size drawn with block digits.
const BigTextSize = 24

// Terminal draws snapshots on a tcell screen, scaling the playfield onto the cell grid.
type Terminal struct {
	screen tcell.Screen
	style  tcell.Style

	fieldWidth, fieldHeight float32
	cols, rows              int
}

func NewTerminal(screen tcell.Screen, fieldWidth, fieldHeight float32, background colorful.Color) *Terminal {
	r, g, b := background.RGB255()
	defaultStyle := tcell.StyleDefault.
		Background(tcell.NewRGBColor(int32(r), int32(g), int32(b))).
		Foreground(tcell.ColorWhite)
	screen.SetStyle(defaultStyle)

	t := &Terminal{
		screen:      screen,
		style:       defaultStyle,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
	t.Resize()
	return t
}

// Resize picks up the current screen size and returns it.
func (t *Terminal) Resize() (int, int) {
	t.cols, t.rows = t.screen.Size()
	return t.cols, t.rows
}

func (t *Terminal) col(x float32) float64 {
	return float64(x) * float64(t.cols) / float64(t.fieldWidth)
}

func (t *Terminal) row(y float32) float64 {
	return float64(y) * float64(t.rows) / float64(t.fieldHeight)
}

// FillRect covers every cell the rectangle touches, at least one.
func (t *Terminal) FillRect(x, y, width, height float32) {
	col0, col1 := int(math.Floor(t.col(x))), int(math.Ceil(t.col(x+width)))
	row0, row1 := int(math.Floor(t.row(y))), int(math.Ceil(t.row(y+height)))
	if col1 <= col0 {
		col1 = col0 + 1
	}
	if row1 <= row0 {
		row1 = row0 + 1
	}
	t.Print(row0, col0, col1-col0, row1-row0, PaddleSymbol)
}

func (t *Terminal) DrawText(text string, x, y, size float32) {
	col, row := int(math.Floor(t.col(x))), int(math.Floor(t.row(y)))
	if size >= BigTextSize {
		t.drawLetters(col, row, text)
		return
	}
	for _, r := range text {
		t.screen.SetContent(col, row, r, nil, t.style)
		col += runewidth.RuneWidth(r)
	}
}

func (t *Terminal) MeasureText(text string, size float32) float32 {
	cells := runewidth.StringWidth(text)
	if size >= BigTextSize {
		letterNum := len([]rune(text))
		cells = letterNum*core.GlyphWidth + (letterNum - 1)
	}
	if t.cols == 0 {
		return 0
	}
	return float32(cells) * t.fieldWidth / float32(t.cols)
}

func (t *Terminal) Print(row, col, width, height int, ch rune) {
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			t.screen.SetContent(col+c, row+r, ch, nil, t.style)
		}
	}
}

// drawLetters writes word in block digits with its top-left corner at (x, y).
func (t *Terminal) drawLetters(x int, y int, word string) {
	for i, letter := range []rune(word) {
		letterCells := core.GetCellsFromChar(string(letter))

		offsetX := x + i*(core.GlyphWidth+1)
		for _, cell := range letterCells {
			t.screen.SetContent(offsetX+cell[0], y+cell[1], BallSymbol, nil, t.style)
		}
	}
}

// Frame redraws the whole screen from one snapshot.
func (t *Terminal) Frame(snapshot core.Snapshot) {
	t.screen.Clear()

	//中線
	t.Print(0, t.cols/2, 1, t.rows, CenterLineSymbol)

	snapshot.Render(t)
	t.screen.Show()
}
