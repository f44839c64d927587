package terminal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/wsxiaoys/terminal/color"

	"github.com/randomtoy/pairs-go/internal/app"
	"github.com/randomtoy/pairs-go/internal/domain"
)

const cellWidth = 5

// Renderer draws a board as a grid of numbered cells.
type Renderer struct {
	w       io.Writer
	columns int
}

func NewRenderer(w io.Writer, columns int) *Renderer {
	if columns < 1 {
		columns = 1
	}
	return &Renderer{w: w, columns: columns}
}

// Board prints every slot, columns cells per row, each under its index.
func (r *Renderer) Board(g app.GameSnapshot) {
	for row := 0; row*r.columns < len(g.Slots); row++ {
		start := row * r.columns
		end := min(start+r.columns, len(g.Slots))

		var tags, cells strings.Builder
		for _, sl := range g.Slots[start:end] {
			fmt.Fprintf(&tags, " %-*d", cellWidth+1, sl.Index)
			cells.WriteString(" " + cell(sl))
		}
		fmt.Fprintln(r.w, tags.String())
		fmt.Fprintln(r.w, color.Sprint(cells.String()))
	}
	fmt.Fprintf(r.w, "flips: %d\n", g.FlipCount)
}

func cell(sl app.SlotView) string {
	switch sl.Visibility {
	case domain.Removed:
		return strings.Repeat(" ", cellWidth+1)
	case domain.FaceUp:
		if sl.Card == nil {
			break
		}
		clr := "@w"
		if sl.Card.Suit.Red() {
			clr = "@r"
		}
		return "[" + clr + pad(sl.Card.String(), cellWidth-2) + "@|]"
	}
	return "[@b" + strings.Repeat("#", cellWidth-2) + "@|]"
}

// pad right-fills s to n runes; suit glyphs are multi-byte.
func pad(s string, n int) string {
	if k := utf8.RuneCountInString(s); k < n {
		return s + strings.Repeat(" ", n-k)
	}
	return s
}
