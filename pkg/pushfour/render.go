package pushfour

import (
	"strconv"
	"strings"

	"github.com/muesli/termenv"
)

// ANSI colors of the pieces
const (
	blueColor = "12"
	redColor  = "9"
)

// Same layout as String, with colored pieces. With termenv.Ascii the output
// equals String().
func (b *Board) Render(profile termenv.Profile) string {
	blue := profile.String(string(BlueChar)).Foreground(profile.Color(blueColor)).Bold()
	red := profile.String(string(RedChar)).Foreground(profile.Color(redColor)).Bold()
	rock := profile.String(string(RockChar)).Faint()

	builder := strings.Builder{}
	builder.WriteByte('+')
	for col := 0; col < b.size; col++ {
		builder.WriteByte(' ')
		builder.WriteString(strconv.Itoa(col))
	}

	for row := 0; row < b.size; row++ {
		builder.WriteByte('\n')
		builder.WriteString(strconv.Itoa(row))
		for col := 0; col < b.size; col++ {
			builder.WriteByte(' ')
			switch b.At(row, col) {
			case PieceBlue:
				builder.WriteString(blue.String())
			case PieceRed:
				builder.WriteString(red.String())
			case PieceRock:
				builder.WriteString(rock.String())
			default:
				builder.WriteByte(EmptyChar)
			}
		}
	}

	return builder.String()
}
