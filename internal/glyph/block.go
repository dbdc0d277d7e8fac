package glyph

import "strings"

const blockHeight = 5

// Rows are separated by '|'; '#' marks a filled cell.
var blockPatterns = map[rune]string{
	'A': " ### |#   #|#####|#   #|#   #",
	'B': "#### |#   #|#### |#   #|#### ",
	'C': " ####|#    |#    |#    | ####",
	'D': "#### |#   #|#   #|#   #|#### ",
	'E': "#####|#    |#### |#    |#####",
	'F': "#####|#    |#### |#    |#    ",
	'G': " ####|#    |#  ##|#   #| ####",
	'H': "#   #|#   #|#####|#   #|#   #",
	'I': "###| # | # | # |###",
	'J': "    #|    #|    #|#   #| ### ",
	'K': "#   #|#  # |###  |#  # |#   #",
	'L': "#    |#    |#    |#    |#####",
	'M': "#   #|## ##|# # #|#   #|#   #",
	'N': "#   #|##  #|# # #|#  ##|#   #",
	'O': " ### |#   #|#   #|#   #| ### ",
	'P': "#### |#   #|#### |#    |#    ",
	'Q': " ### |#   #|# # #|#  # | ## #",
	'R': "#### |#   #|#### |#  # |#   #",
	'S': " ####|#    | ### |    #|#### ",
	'T': "#####|  #  |  #  |  #  |  #  ",
	'U': "#   #|#   #|#   #|#   #| ### ",
	'V': "#   #|#   #|#   #| # # |  #  ",
	'W': "#   #|#   #|# # #|## ##|#   #",
	'X': "#   #| # # |  #  | # # |#   #",
	'Y': "#   #| # # |  #  |  #  |  #  ",
	'Z': "#####|   # |  #  | #   |#####",
	'0': " ### |#  ##|# # #|##  #| ### ",
	'1': " # |## | # | # |###",
	'2': "#### |    #| ### |#    |#####",
	'3': "#### |    #| ### |    #|#### ",
	'4': "#   #|#   #|#####|    #|    #",
	'5': "#####|#    |#### |    #|#### ",
	'6': " ### |#    |#### |#   #| ### ",
	'7': "#####|    #|   # |  #  |  #  ",
	'8': " ### |#   #| ### |#   #| ### ",
	'9': " ### |#   #| ####|    #| ### ",
	'!': "#|#|#| |#",
	'?': "#### |    #|  ## |     |  #  ",
	'.': " | | | |#",
	',': "  |  |  | #|# ",
	'\'': "#|#| | | ",
	'-': "    |    |####|    |    ",
	'+': "     |  #  |#####|  #  |     ",
	'*': "     |# # #| ### |# # #|     ",
	':': " |#| |#| ",
	'/': "    #|   # |  #  | #   |#    ",
	' ': "   |   |   |   |   ",
}

// BlockFont is a five-row font drawn with full blocks. Lowercase folds to uppercase.
func BlockFont() Font {
	glyphs := make(map[rune][]string, len(blockPatterns))
	for r, pattern := range blockPatterns {
		rows := strings.Split(pattern, "|")
		for i, row := range rows {
			// one column of spacing after every glyph
			rows[i] = strings.ReplaceAll(row, "#", "█") + " "
		}
		glyphs[r] = rows
	}
	normalize(glyphs, blockHeight)
	return &mapFont{height: blockHeight, fold: true, glyphs: glyphs}
}

// PlainFont renders text as typed, one row per line.
func PlainFont() Font {
	return plainFont{}
}
