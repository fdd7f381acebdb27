package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/IlikeChooros/go-pushfour/internal/config"
	"github.com/IlikeChooros/go-pushfour/pkg/bench"
	"github.com/IlikeChooros/go-pushfour/pkg/minimax"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/muesli/termenv"
	"github.com/pkg/errors"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Output.NoColor = true
	return cfg
}

func TestParseScenarioPath(t *testing.T) {
	tests := []struct {
		path  string
		size  int
		depth int
		ok    bool
	}{
		{"scenarios/block_size_8_depth_4.txt", 8, 4, true},
		{"size_6_depth_12.txt", 6, 12, true},
		{"size__depth_3.txt", 0, 0, false},
		{"size_8_depth_4.json", 0, 0, false},
		{"board.txt", 0, 0, false},
	}

	for _, tt := range tests {
		size, depth, err := parseScenarioPath(tt.path)
		if tt.ok != (err == nil) {
			t.Errorf("%s: got err=%v, want ok=%v", tt.path, err, tt.ok)
			continue
		}
		if tt.ok && (size != tt.size || depth != tt.depth) {
			t.Errorf("%s: got size=%d depth=%d, want %d %d", tt.path, size, depth, tt.size, tt.depth)
		}
	}
}

func TestRunScenario(t *testing.T) {
	// Red has three in row 0, the winning push is on (0, 3)
	text := "+ 0 1 2 3 4 5\n" +
		"0 r r r - - -\n" +
		"1 - - - - - -\n" +
		"2 - - - - - -\n" +
		"3 - - - - - -\n" +
		"4 b - - - - -\n" +
		"5 b b - - - -\n"
	path := filepath.Join(t.TempDir(), "win_size_6_depth_1.txt")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatal(err)
	}

	board, depth, err := loadScenario(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if depth != 1 || board.Turn() != pushfour.Red {
		t.Errorf("got depth=%d turn=%v, want 1 and red", depth, board.Turn())
	}

	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	if err := runScenario(context.Background(), testConfig(t), path, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := (pushfour.Move{Row: 0, Col: 3, Player: pushfour.Red}).String(); !strings.Contains(buf.String(), "Best move "+want) {
		t.Errorf("missing the winning move in:\n%s", buf.String())
	}
}

func TestRunScenarioErrors(t *testing.T) {
	cfg := testConfig(t)
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	if err := runScenarios(context.Background(), cfg, nil, out); err == nil {
		t.Error("no files should fail")
	}
	if err := runScenario(context.Background(), cfg, filepath.Join(t.TempDir(), "size_4_depth_2.txt"), out); err == nil {
		t.Error("missing file should fail")
	}
}

func TestConvert(t *testing.T) {
	details := `{"game": {"game_detail": {"xy": [[0, 1, 2], [4, 0, 0], [0, 0, 2]]}}}`
	want := "+ 0 1 2\n0 - r b\n1 # - -\n2 - - b\n"

	cfg := testConfig(t)
	buf := &bytes.Buffer{}
	if err := runConvert(cfg, nil, strings.NewReader(details), buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}

	cfg.Game.BotColor = "blue"
	buf.Reset()
	if err := runConvert(cfg, nil, strings.NewReader(details), buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "+ 0 1 2\n0 - b r\n1 # - -\n2 - - r\n"; buf.String() != want {
		t.Errorf("swapped: got\n%s\nwant\n%s", buf.String(), want)
	}

	if err := runConvert(cfg, nil, strings.NewReader("{"), buf); err == nil {
		t.Error("invalid JSON should fail")
	}
}

func TestPlayAgainstBot(t *testing.T) {
	cfg := testConfig(t)
	cfg.Game.BoardSize = 4
	cfg.Game.Rocks = nil
	cfg.Engine.Depth = 1

	// Plays until the game ends or the input runs out, moves the bot took are rejected
	input := strings.NewReader("0:0\n0:1\n0:2\n0:3\n")
	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	if err := runPlay(context.Background(), cfg, input, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"New pushfour game", "New state"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in:\n%s", want, buf.String())
		}
	}
}

func TestPlayRejectsBadInput(t *testing.T) {
	cfg := testConfig(t)

	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	// 2:2 is an inner cell, the input ends before any move is made
	if err := runPlay(context.Background(), cfg, strings.NewReader("hello\n2:2\n"), out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "enter coords") {
		t.Errorf("missing the format hint in:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "Unavailable move!") {
		t.Errorf("missing the illegal move message in:\n%s", buf.String())
	}
}

func TestArenaPlayers(t *testing.T) {
	cfg := testConfig(t)
	p1, p2, err := arenaPlayers(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p1.Name != "reachable-d7" || p2.Name != "runlength-d3" {
		t.Errorf("got names %q %q", p1.Name, p2.Name)
	}
	if p1.Depth != 7 || p2.Depth != 3 {
		t.Errorf("got depths %d %d", p1.Depth, p2.Depth)
	}
}

func TestPlayReadError(t *testing.T) {
	cfg := testConfig(t)
	broken := errors.New("broken terminal")
	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	if err := runPlay(context.Background(), cfg, iotest.ErrReader(broken), out); !errors.Is(err, broken) {
		t.Errorf("got err=%v, want %v", err, broken)
	}
}

func smallArenaConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := testConfig(t)
	cfg.Game.BoardSize = 4
	cfg.Engine.Depth = 1
	cfg.Arena.OpponentDepth = 1
	cfg.Arena.Games = 2
	cfg.Arena.Workers = 1
	cfg.Arena.Rocks = 0
	return cfg
}

func TestArenaSummaryFile(t *testing.T) {
	cfg := smallArenaConfig(t)
	cfg.Arena.SummaryFile = filepath.Join(t.TempDir(), "summary.json")

	buf := &bytes.Buffer{}
	out := termenv.NewOutput(buf, termenv.WithProfile(termenv.Ascii))
	if err := runArena(context.Background(), cfg, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(cfg.Arena.SummaryFile)
	if err != nil {
		t.Fatal(err)
	}
	var summary bench.VersusSummaryInfo
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("summary is not JSON: %v\n%s", err, data)
	}
	if summary.TotalGames != 2 || summary.P1Name != "reachable-d1" {
		t.Errorf("unexpected summary %+v", summary)
	}
	if !strings.Contains(buf.String(), "summary: 2 games") {
		t.Errorf("missing the printed summary in:\n%s", buf.String())
	}
}

func TestArenaFailingOpponent(t *testing.T) {
	cfg := smallArenaConfig(t)
	cfg.Arena.OpponentDepth = 0

	out := termenv.NewOutput(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))
	if err := runArena(context.Background(), cfg, out); !errors.Is(err, minimax.ErrNoMoves) {
		t.Errorf("got err=%v, want %v", err, minimax.ErrNoMoves)
	}
}
