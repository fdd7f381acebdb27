package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/IlikeChooros/go-pushfour/pkg/minimax"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

func printBoard(out *termenv.Output, title string, board pushfour.Board) {
	fmt.Fprintf(out, "%s:\n%s\n", title, board.Render(out.Profile))
}

// Interactive game, the human enters moves as <row>:<col> on 'in'. Blue moves first,
// so the bot opens when it plays Blue.
func runPlay(ctx context.Context, cfg *config.Config, in io.Reader, out *termenv.Output) error {
	bot, err := cfg.BotPlayer()
	if err != nil {
		return err
	}
	eval, err := cfg.Evaluator()
	if err != nil {
		return err
	}
	board, err := cfg.NewBoard()
	if err != nil {
		return err
	}
	human := bot.Other()

	engine := pushfour.NewEngine(pushfour.Rules{Player: bot, Evaluator: eval})
	engine.SetLimits(cfg.Limits())
	engine.SetContext(ctx)
	engine.StatsListener().OnStop(func(stats minimax.SearchStats[pushfour.Move]) {
		fmt.Fprintf(out, "%s\n", out.String(fmt.Sprintf(
			"depth %d, nodes %d, cutoffs %d, %d ms, score %d",
			stats.Depth, stats.Nodes, stats.Cutoffs, stats.TimeMs, stats.Score)).Faint())
	})

	fmt.Fprintf(out, "New pushfour game. Difficulty: %d, you play %s\n", cfg.Engine.Depth, human)
	printBoard(out, "Board state", board)

	scanner := bufio.NewScanner(in)
	for {
		if len(board.GenerateMoves()) == 0 {
			fmt.Fprintln(out, "\nCat's game.")
			return nil
		}

		if board.Turn() == human {
			fmt.Fprint(out, "your move> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return errors.Wrap(err, "read move")
				}
				// End of input, the game is left unfinished
				return nil
			}

			move, err := pushfour.ParseMove(scanner.Text(), human)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := board.MakeLegalMove(move); err != nil {
				fmt.Fprintf(out, "Unavailable move! %v\n", move)
				continue
			}

			printBoard(out, "Board state", board)
			if board.IsWinState(human) {
				fmt.Fprintln(out, "\nYou win!")
				return nil
			}
			continue
		}

		result, err := engine.Search(board)
		if err != nil {
			return errors.Wrap(err, "bot move")
		}
		if err := board.MakeLegalMove(result.BestMove); err != nil {
			return errors.Wrap(err, "bot move")
		}

		printBoard(out, fmt.Sprintf("New state (%v)", result.BestMove), board)
		if board.IsWinState(bot) {
			fmt.Fprintln(out, "\nI win!")
			return nil
		}
	}
}
