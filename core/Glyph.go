package core

// 3x5 的數字字型，'#' 為要畫的格子
var glyphs = map[string][5]string{
	"0": {"###", "# #", "# #", "# #", "###"},
	"1": {" # ", "## ", " # ", " # ", "###"},
	"2": {"###", "  #", "###", "#  ", "###"},
	"3": {"###", "  #", "###", "  #", "###"},
	"4": {"# #", "# #", "###", "  #", "  #"},
	"5": {"###", "#  ", "###", "  #", "###"},
	"6": {"###", "#  ", "###", "# #", "###"},
	"7": {"###", "  #", "  #", "  #", "  #"},
	"8": {"###", "# #", "###", "# #", "###"},
	"9": {"###", "# #", "###", "  #", "###"},
}

const (
	GlyphWidth  = 3
	GlyphHeight = 5
)

// GetCellsFromChar returns the {x, y} cells of a big digit, or nil for anything else.
func GetCellsFromChar(char string) [][2]int {
	rows, ok := glyphs[char]
	if !ok {
		return nil
	}

	var cells [][2]int
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}
