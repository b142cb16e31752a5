package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/connectfour-backend/internal/entity"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

func (o *Output) PrintGame(game *entity.Game) {
	if o.format == FormatJSON {
		o.printJSON(game)
		return
	}

	fmt.Fprint(o.w, RenderGame(game))
}

func (o *Output) PrintGames(games []*entity.Game) {
	if o.format == FormatJSON {
		o.printJSON(games)
		return
	}

	if len(games) == 0 {
		fmt.Fprintln(o.w, "no games")
		return
	}

	for _, game := range games {
		fmt.Fprintf(o.w, "%s  %dx%d  %s\n", game.ID, game.Width, game.Height, summary(game))
	}
}

func (o *Output) PrintMessage(msg string) {
	if o.format == FormatJSON {
		o.printJSON(map[string]string{"message": msg})
		return
	}

	fmt.Fprintln(o.w, msg)
}

// PrintError reports a recoverable error without stopping the command.
func (o *Output) PrintError(w io.Writer, err error) {
	if o.format == FormatJSON {
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{"message": err.Error()},
		})
		fmt.Fprintln(w, string(data))
		return
	}

	fmt.Fprintf(w, "Error: %s\n", err)
}

// Prompt is only shown in text mode.
func (o *Output) Prompt(prompt string) {
	if o.format == FormatText {
		fmt.Fprint(o.w, prompt)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// RenderGame draws the board top row first, followed by the column numbers.
func RenderGame(game *entity.Game) string {
	var b strings.Builder

	fmt.Fprintf(&b, "game %s: %s\n", game.ID, summary(game))

	for row := game.Height - 1; row >= 0; row-- {
		cells := make([]string, game.Width)
		for column := range cells {
			cells[column] = cellSymbol(game.CellAt(row, column))
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}

	labels := make([]string, game.Width)
	for column := range labels {
		labels[column] = fmt.Sprint(column % 10)
	}
	b.WriteString(strings.Join(labels, " "))
	b.WriteString("\n")

	return b.String()
}

func summary(game *entity.Game) string {
	if game.IsFinished() {
		return fmt.Sprintf("%s wins after %d turns", game.Winner, game.Turns)
	}

	return fmt.Sprintf("turn %d, %s to move", game.Turns+1, game.Turn)
}

func cellSymbol(cell entity.Player) string {
	if cell == entity.NoPlayer {
		return "."
	}

	return string(cell)
}
