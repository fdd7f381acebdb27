package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

var scenarioNameRe = regexp.MustCompile(`size_(\d*)_depth_(\d*)\.txt$`)

// Board size and search depth encoded in a scenario file name,
// e.g. "block_size_8_depth_4.txt"
func parseScenarioPath(path string) (size, depth int, err error) {
	m := scenarioNameRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return 0, 0, errors.Errorf("invalid scenario name %q, expected *size_<n>_depth_<n>.txt", path)
	}
	if size, err = strconv.Atoi(m[1]); err != nil {
		return 0, 0, errors.Wrapf(err, "size of %q", path)
	}
	if depth, err = strconv.Atoi(m[2]); err != nil {
		return 0, 0, errors.Wrapf(err, "depth of %q", path)
	}
	return size, depth, nil
}

// Load a saved position, the bot plays Red so it gets the move
func loadScenario(path string) (pushfour.Board, int, error) {
	size, depth, err := parseScenarioPath(path)
	if err != nil {
		return pushfour.Board{}, 0, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return pushfour.Board{}, 0, errors.Wrap(err, "load scenario")
	}
	board, err := pushfour.ParseBoard(size, string(data))
	if err != nil {
		return pushfour.Board{}, 0, errors.Wrapf(err, "parse %s", path)
	}
	board.NextTurn()
	return board, depth, nil
}

func runScenario(ctx context.Context, cfg *config.Config, path string, out *termenv.Output) error {
	board, depth, err := loadScenario(path)
	if err != nil {
		return err
	}
	eval, err := cfg.Evaluator()
	if err != nil {
		return err
	}

	engine := pushfour.NewEngine(pushfour.Rules{Player: pushfour.Red, Evaluator: eval})
	engine.SetLimits(cfg.Limits().SetDepth(depth))
	engine.SetContext(ctx)

	fmt.Fprintf(out, "\n%s\n%s\n", out.String(fmt.Sprintf("##### Scenario %s (depth: %d) #####", filepath.Base(path), depth)).Bold(), board.Render(out.Profile))
	result, err := engine.Search(board)
	if err != nil {
		return errors.Wrapf(err, "scenario %s", path)
	}

	next := board.ApplyMove(result.BestMove)
	fmt.Fprintf(out, "\nBest move %v (score %d, %d nodes):\n%s\n", result.BestMove, result.Score, engine.Nodes(), next.Render(out.Profile))
	return nil
}

func runScenarios(ctx context.Context, cfg *config.Config, paths []string, out *termenv.Output) error {
	if len(paths) == 0 {
		return errors.New("scenario: no files given")
	}
	for _, path := range paths {
		if err := runScenario(ctx, cfg, path, out); err != nil {
			return err
		}
	}
	return nil
}
