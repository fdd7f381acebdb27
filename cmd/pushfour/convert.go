package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/pkg/errors"
)

// pushfour.net game details, only the grid is used
type gameDetails struct {
	Game struct {
		GameDetail struct {
			XY [][]int `json:"xy"`
		} `json:"game_detail"`
	} `json:"game"`
}

// Decode the game details and build the board. The bot always searches as Red,
// so the colors are swapped when it plays Blue.
func readGrid(r io.Reader, bot pushfour.Player) (pushfour.Board, error) {
	var details gameDetails
	if err := json.NewDecoder(r).Decode(&details); err != nil {
		return pushfour.Board{}, errors.Wrap(err, "decode game details")
	}
	return pushfour.FromGrid(details.Game.GameDetail.XY, bot == pushfour.Blue)
}

// Print the text board of a saved game details file, stdin without arguments
func runConvert(cfg *config.Config, args []string, stdin io.Reader, w io.Writer) error {
	bot, err := cfg.BotPlayer()
	if err != nil {
		return err
	}

	in := stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "convert")
		}
		defer f.Close()
		in = f
	}

	board, err := readGrid(in, bot)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, board.String())
	return err
}
