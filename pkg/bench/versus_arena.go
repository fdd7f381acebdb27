package bench

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/IlikeChooros/go-pushfour/pkg/minimax"
	"github.com/IlikeChooros/go-pushfour/pkg/pushfour"
	"github.com/pkg/errors"
)

/*
Arena benchmark subpackage, allows to play a series of push four games between
two different search configurations.
*/

// Search configuration of one side of the arena
type Player struct {
	Name      string
	Depth     int
	Evaluator pushfour.Evaluator
	NThreads  int
}

// Player with the default evaluation
func NewPlayer(name string, depth int) Player {
	return Player{Name: name, Depth: depth, Evaluator: pushfour.EvalReachable, NThreads: 1}
}

// Search the best move for the side to move on 'board'
func (p Player) BestMove(ctx context.Context, board pushfour.Board) (pushfour.Move, error) {
	engine := pushfour.NewEngine(pushfour.Rules{Player: board.Turn(), Evaluator: p.Evaluator})
	engine.SetContext(ctx)
	engine.SetLimits(minimax.DefaultLimits().SetDepth(p.Depth).SetThreads(p.NThreads))
	result, err := engine.Search(board)
	return result.BestMove, err
}

type VersusArena struct {
	VersusArenaStats
	Player1   Player
	Player2   Player
	NGames    uint
	NWorkers  uint
	BoardSize int
	NRocks    int
	Seed      int64
	wg        sync.WaitGroup
	listener  ListenerLike
	ctx       context.Context
	errMu     sync.Mutex
	err       error
}

func NewVersusArena(player1, player2 Player) *VersusArena {
	return &VersusArena{
		Player1:   player1,
		Player2:   player2,
		NGames:    10,
		NWorkers:  2,
		BoardSize: 8,
		NRocks:    3,
		Seed:      time.Now().UnixNano(),
		ctx:       context.Background(),
	}
}

func (va *VersusArena) WithContext(ctx context.Context) *VersusArena {
	va.ctx = ctx
	return va
}

func (va *VersusArena) Setup(boardSize, nRocks int, nGames, nWorkers uint) {
	va.BoardSize = boardSize
	va.NRocks = nRocks
	va.NGames = nGames
	va.NWorkers = max(nWorkers, 1)
}

// Start equally distributed work between worker goroutines, call Wait to get the summary
func (va *VersusArena) Start(listener ListenerLike) {
	va.reset()
	va.listener = listener
	listener.OnStart()

	nGames := va.NGames / va.NWorkers
	rest := va.NGames % va.NWorkers
	for i := range va.NWorkers {
		delta := uint(0)
		if rest > 0 {
			delta = 1
			rest--
		}

		l := listener.Clone()
		l.SetRow(int(i))
		va.wg.Add(1)
		go va.worker(int(i), int(nGames+delta), l)
	}
}

// Wait for all workers, then report the summary
func (va *VersusArena) Wait() VersusSummaryInfo {
	va.wg.Wait()

	summary := VersusSummaryInfo{
		TotalGames:       va.Total(),
		P1Wins:           va.P1Wins(),
		P2Wins:           va.P2Wins(),
		FirstToMoveWins:  va.FirstToMoveWins(),
		SecondToMoveWins: va.SecondToMoveWins(),
		Draws:            va.Draws(),
		Workers:          int(va.NWorkers),
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	}
	if va.listener != nil {
		va.listener.Summary(summary)
		va.listener.OnEnd()
	}
	return summary
}

// Start and Wait
func (va *VersusArena) Run(listener ListenerLike) VersusSummaryInfo {
	va.Start(listener)
	return va.Wait()
}

// First error that stopped a worker, nil if every game finished or the
// arena was cancelled. Valid after Wait.
func (va *VersusArena) Err() error {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	return va.err
}

func (va *VersusArena) setErr(err error) {
	va.errMu.Lock()
	defer va.errMu.Unlock()
	if va.err == nil {
		va.err = err
	}
}

func (va *VersusArena) reset() {
	va.VersusArenaStats.reset()
	va.NWorkers = max(va.NWorkers, 1)
	va.err = nil
}

// Empty board with 'n' rocks on random distinct cells
func randomBoard(r *rand.Rand, size, n int) pushfour.Board {
	board := pushfour.NewBoard(size)
	n = min(n, size*size)
	for placed := 0; placed < n; {
		row, col := r.Intn(size), r.Intn(size)
		if board.At(row, col) == pushfour.PieceNone {
			board.Set(row, col, pushfour.PieceRock)
			placed++
		}
	}
	return board
}

func (va *VersusArena) worker(id, nGames int, listener ListenerLike) {
	defer va.wg.Done()

	r := rand.New(rand.NewSource(va.Seed + int64(id)))
	local := VersusArenaStats{}

	for i := range nGames {
		if va.ctx.Err() != nil {
			break
		}

		// Alternate who moves first
		p1First := i%2 == 0
		first, second := va.Player1, va.Player2
		if !p1First {
			first, second = second, first
		}

		board := randomBoard(r, va.BoardSize, va.NRocks)
		info := VersusWorkerInfo{
			WorkerID: id,
			NGames:   nGames,
			P1Name:   va.Player1.Name,
			P2Name:   va.Player2.Name,
		}

		listener.OnGameStart()
		outcome, moves, err := playGame(va.ctx, first, second, &board, listener, info)
		if err != nil {
			// Unfinished game doesn't count, cancellation is not a failure
			if va.ctx.Err() == nil {
				va.setErr(errors.Wrapf(err, "worker %d, game %d", id, i+1))
			}
			break
		}

		result := toAgentResult(outcome, p1First)
		va.add(result, outcome)
		local.add(result, outcome)

		info.FinishedGames = i + 1
		info.Moves = moves
		info.GameMoveNum = len(moves)
		info.Board = board.String()
		info.Result = result
		info.P1Wins = local.P1Wins()
		info.P2Wins = local.P2Wins()
		info.Draws = local.Draws()
		info.FirstToMoveWins = local.FirstToMoveWins()
		info.SecondToMoveWins = local.SecondToMoveWins()
		listener.OnFinishedGame(info)
	}

	listener.OnFinishedWork(VersusWorkerInfo{
		WorkerID:         id,
		NGames:           nGames,
		FinishedGames:    local.Total(),
		P1Wins:           local.P1Wins(),
		P2Wins:           local.P2Wins(),
		Draws:            local.Draws(),
		FirstToMoveWins:  local.FirstToMoveWins(),
		SecondToMoveWins: local.SecondToMoveWins(),
		P1Name:           va.Player1.Name,
		P2Name:           va.Player2.Name,
	})
}

// Play a single game on 'board', 'first' plays Blue. Fails if the context was
// cancelled, a player found no move on a board that still has some, or came up
// with an illegal move.
func playGame(
	ctx context.Context, first, second Player, board *pushfour.Board,
	listener ListenerLike, info VersusWorkerInfo,
) (GameOutcome, []pushfour.Move, error) {
	moves := make([]pushfour.Move, 0, board.Size()*board.Size())

	for {
		if _, won := board.Winner(); won {
			break
		}

		mover := first
		if board.Turn() == pushfour.Red {
			mover = second
		}

		m, err := mover.BestMove(ctx, *board)
		if errors.Is(err, minimax.ErrNoMoves) && len(board.GenerateMoves()) == 0 {
			// Board is full
			break
		}
		if err != nil {
			return GameOutcome{}, moves, errors.Wrapf(err, "%s searched", mover.Name)
		}

		if err := board.MakeLegalMove(m); err != nil {
			return GameOutcome{}, moves, errors.Wrapf(err, "%s played", mover.Name)
		}
		moves = append(moves, m)

		info.Moves = moves
		info.GameMoveNum = len(moves)
		listener.OnMoveMade(info)
	}

	return computeOutcome(board), moves, nil
}
