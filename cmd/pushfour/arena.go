package main

import (
	"context"
	"fmt"
	"os"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/IlikeChooros/go-pushfour/pkg/bench"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

// Arena players from the configuration: the engine settings against the opponent ones
func arenaPlayers(cfg *config.Config) (bench.Player, bench.Player, error) {
	eval, err := cfg.Evaluator()
	if err != nil {
		return bench.Player{}, bench.Player{}, err
	}
	opponentEval, err := pushfour.EvaluatorByName(cfg.Arena.OpponentEvaluator)
	if err != nil {
		return bench.Player{}, bench.Player{}, err
	}

	engine := bench.Player{
		Name:      fmt.Sprintf("%s-d%d", cfg.Engine.Evaluator, cfg.Engine.Depth),
		Depth:     cfg.Engine.Depth,
		Evaluator: eval,
		NThreads:  cfg.Engine.Threads,
	}
	opponent := bench.Player{
		Name:      fmt.Sprintf("%s-d%d", cfg.Arena.OpponentEvaluator, cfg.Arena.OpponentDepth),
		Depth:     cfg.Arena.OpponentDepth,
		Evaluator: opponentEval,
		NThreads:  1,
	}
	return engine, opponent, nil
}

// Progress goes to 'out', the summary also to the JSON file if one is configured
func runArena(ctx context.Context, cfg *config.Config, out *termenv.Output) error {
	p1, p2, err := arenaPlayers(cfg)
	if err != nil {
		return err
	}

	arena := bench.NewVersusArena(p1, p2).WithContext(ctx)
	arena.Setup(cfg.Game.BoardSize, cfg.Arena.Rocks, uint(cfg.Arena.Games), uint(max(cfg.Arena.Workers, 1)))

	listener := bench.NewArenaListener(bench.NewDefaultListener(out, termenv.WithProfile(out.Profile)))
	var summary *bench.SummaryListener
	if cfg.Arena.SummaryFile != "" {
		f, err := os.Create(cfg.Arena.SummaryFile)
		if err != nil {
			return errors.Wrap(err, "arena summary")
		}
		defer f.Close()
		summary = bench.NewSummaryListener(f)
		listener.Add(summary)
	}

	arena.Run(listener)
	if err := arena.Err(); err != nil {
		return errors.Wrap(err, "arena")
	}
	if summary != nil && summary.Err() != nil {
		return errors.Wrap(summary.Err(), "arena summary")
	}
	return ctx.Err()
}
