package main

/*

Push four command line

	pushfour [-config file] play              interactive game against the bot
	pushfour [-config file] scenario FILE...  best move for saved positions
	pushfour [-config file] convert [FILE]    pushfour.net game details to text
	pushfour [-config file] arena             two engine configurations play each other

*/

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/muesli/termenv"
)

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: %s [-config file] <play|scenario|convert|arena> [args]\n\n", os.Args[0])
	flag.PrintDefaults()
	fmt.Fprintln(w)
	config.Usage(w)
}

// Terminal output, colors are disabled with 'no_color'
func newOutput(w io.Writer, cfg *config.Config) *termenv.Output {
	if cfg.Output.NoColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[pushfour] ")

	configPath := flag.String("config", "", "YAML configuration file, defaults to $"+config.PathEnv)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.MustLoad(*configPath)
	out := newOutput(os.Stdout, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch cmd, args := flag.Arg(0), flag.Args()[1:]; cmd {
	case "play":
		err = runPlay(ctx, cfg, os.Stdin, out)
	case "scenario":
		err = runScenarios(ctx, cfg, args, out)
	case "convert":
		err = runConvert(cfg, args, os.Stdin, out)
	case "arena":
		err = runArena(ctx, cfg, out)
	default:
		log.Printf("unknown command %q", cmd)
		flag.Usage()
		stop()
		os.Exit(2)
	}

	if err != nil {
		stop()
		log.Fatal(err)
	}
}
