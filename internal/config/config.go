package config

import (
	"io"
	"log"
	"os"

	"github.com/IlikeChooros/go-pushfour/pkg/minimax"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
)

// Environment variable with the path of the configuration file
const PathEnv = "PUSHFOUR_CONFIG"

type Config struct {
	Game struct {
		BoardSize int      `yaml:"board_size" env:"PUSHFOUR_BOARD_SIZE" env-default:"8" env-description:"Width and height of the board"`
		Rocks     []string `yaml:"rocks" env:"PUSHFOUR_ROCKS" env-default:"1:3,3:1,4:4" env-description:"Rock cells as row:col, comma separated"`
		BotColor  string   `yaml:"bot_color" env:"PUSHFOUR_COLOR" env-default:"red" env-description:"Side played by the bot, red or blue"`
	} `yaml:"game"`

	Engine struct {
		Depth     int    `yaml:"depth" env:"PUSHFOUR_DEPTH" env-default:"7" env-description:"Search depth in plies"`
		Threads   int    `yaml:"threads" env:"PUSHFOUR_THREADS" env-default:"1" env-description:"Goroutines searching the root moves"`
		Movetime  int    `yaml:"movetime" env:"PUSHFOUR_MOVETIME" env-default:"-1" env-description:"Time limit per move in ms, -1 for none"`
		Evaluator string `yaml:"evaluator" env:"PUSHFOUR_EVALUATOR" env-default:"reachable" env-description:"Position evaluation: reachable, runlength or winloss"`
	} `yaml:"engine"`

	Output struct {
		NoColor bool `yaml:"no_color" env:"PUSHFOUR_NO_COLOR" env-description:"Print boards without colors"`
	} `yaml:"output"`

	Arena struct {
		Games             int    `yaml:"games" env:"PUSHFOUR_ARENA_GAMES" env-default:"10" env-description:"Number of arena games"`
		Workers           int    `yaml:"workers" env:"PUSHFOUR_ARENA_WORKERS" env-default:"2" env-description:"Arena worker goroutines"`
		Rocks             int    `yaml:"rocks" env:"PUSHFOUR_ARENA_ROCKS" env-default:"3" env-description:"Random rocks per arena game"`
		OpponentDepth     int    `yaml:"opponent_depth" env:"PUSHFOUR_ARENA_OPPONENT_DEPTH" env-default:"3" env-description:"Search depth of the arena opponent"`
		OpponentEvaluator string `yaml:"opponent_evaluator" env:"PUSHFOUR_ARENA_OPPONENT_EVALUATOR" env-default:"runlength" env-description:"Evaluation of the arena opponent"`
		SummaryFile       string `yaml:"summary_file" env:"PUSHFOUR_ARENA_SUMMARY" env-description:"Write the arena summary as JSON to this file"`
	} `yaml:"arena"`
}

// Read the configuration from the YAML file at 'path', environment variables override it.
// With an empty path only the environment is used.
func Load(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, errors.Wrap(err, "read config from environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load the configuration or exit, the path comes from 'path' or PUSHFOUR_CONFIG
func MustLoad(path string) *Config {
	if path == "" {
		path = os.Getenv(PathEnv)
	}
	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			log.Fatalf("[config] file does not exist: %s", path)
		}
	}

	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	return cfg
}

// Write the description of the environment variables to 'w'
func Usage(w io.Writer) {
	var cfg Config
	header := "Environment variables:"
	cleanenv.FUsage(w, &cfg, &header)()
}

func (c *Config) Validate() error {
	if c.Game.BoardSize < 1 || c.Game.BoardSize > pushfour.MaxBoardSize {
		return errors.Errorf("board size %d out of range [1, %d]", c.Game.BoardSize, pushfour.MaxBoardSize)
	}
	if c.Engine.Depth < 1 {
		return errors.Errorf("search depth must be positive, got %d", c.Engine.Depth)
	}
	if c.Arena.OpponentDepth < 1 {
		return errors.Errorf("arena opponent depth must be positive, got %d", c.Arena.OpponentDepth)
	}
	if c.Arena.Games < 0 || c.Arena.Rocks < 0 {
		return errors.Errorf("arena games and rocks can't be negative, got %d games %d rocks", c.Arena.Games, c.Arena.Rocks)
	}
	if _, err := c.BotPlayer(); err != nil {
		return err
	}
	if _, err := c.Evaluator(); err != nil {
		return err
	}
	if _, err := pushfour.EvaluatorByName(c.Arena.OpponentEvaluator); err != nil {
		return errors.Wrap(err, "arena opponent")
	}
	if _, err := c.RockCells(); err != nil {
		return err
	}
	return nil
}

func (c *Config) BotPlayer() (pushfour.Player, error) {
	return pushfour.PlayerFromString(c.Game.BotColor)
}

func (c *Config) Evaluator() (pushfour.Evaluator, error) {
	return pushfour.EvaluatorByName(c.Engine.Evaluator)
}

// Rock cells of the interactive game
func (c *Config) RockCells() ([]pushfour.Coord, error) {
	cells := make([]pushfour.Coord, 0, len(c.Game.Rocks))
	for _, rock := range c.Game.Rocks {
		m, err := pushfour.ParseMove(rock, pushfour.Blue)
		if err != nil {
			return nil, errors.Wrap(err, "rock")
		}
		if m.Row < 0 || m.Col < 0 || m.Row >= c.Game.BoardSize || m.Col >= c.Game.BoardSize {
			return nil, errors.Wrapf(pushfour.ErrInvalidCoordinate, "rock %q on a %dx%d board", rock, c.Game.BoardSize, c.Game.BoardSize)
		}
		cells = append(cells, pushfour.Coord{Row: m.Row, Col: m.Col})
	}
	return cells, nil
}

// Empty board of the configured size with the rocks placed
func (c *Config) NewBoard() (pushfour.Board, error) {
	cells, err := c.RockCells()
	if err != nil {
		return pushfour.Board{}, err
	}
	board := pushfour.NewBoard(c.Game.BoardSize)
	for _, cell := range cells {
		board.Set(cell.Row, cell.Col, pushfour.PieceRock)
	}
	return board, nil
}

func (c *Config) Limits() *minimax.Limits {
	return minimax.DefaultLimits().
		SetDepth(c.Engine.Depth).
		SetThreads(c.Engine.Threads).
		SetMovetime(c.Engine.Movetime)
}
