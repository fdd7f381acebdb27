package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/muesli/termenv"
)

// Receives the progress of the arena. Every worker gets its own Clone,
// Summary and OnEnd are called once, after all workers are done.
type ListenerLike interface {
	Clone() ListenerLike
	SetRow(row int)
	OnStart()
	OnGameStart()
	OnMoveMade(info VersusWorkerInfo)
	OnFinishedGame(info VersusWorkerInfo)
	OnFinishedWork(info VersusWorkerInfo)
	Summary(info VersusSummaryInfo)
	OnEnd()
}

// Prints finished games and the summary, colored with termenv
type DefaultListener struct {
	out *termenv.Output
	mu  *sync.Mutex
	row int
}

func NewDefaultListener(w io.Writer, opts ...termenv.OutputOption) *DefaultListener {
	return &DefaultListener{
		out: termenv.NewOutput(w, opts...),
		mu:  &sync.Mutex{},
	}
}

// Clones share the output and its lock
func (d *DefaultListener) Clone() ListenerLike {
	return &DefaultListener{out: d.out, mu: d.mu, row: d.row}
}

func (d *DefaultListener) SetRow(row int) {
	d.row = row
}

func (d *DefaultListener) printf(format string, args ...any) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fmt.Fprintf(d.out, format, args...)
}

func (d *DefaultListener) resultStyle(result VersusMatchResult) termenv.Style {
	style := d.out.String(result.String())
	switch result {
	case VersusPl1Win:
		return style.Foreground(d.out.Color("10")).Bold()
	case VersusPl2Win:
		return style.Foreground(d.out.Color("9")).Bold()
	default:
		return style.Faint()
	}
}

func (d *DefaultListener) OnStart() {
	d.printf("%s\n", d.out.String("versus arena started").Bold())
}

func (d *DefaultListener) OnGameStart() {}

func (d *DefaultListener) OnMoveMade(info VersusWorkerInfo) {}

func (d *DefaultListener) OnFinishedGame(info VersusWorkerInfo) {
	d.printf("[worker %d] game %d/%d: %s after %d moves (%s %d - %d %s, draws %d)\n",
		d.row, info.FinishedGames, info.NGames, d.resultStyle(info.Result), info.GameMoveNum,
		info.P1Name, info.P1Wins, info.P2Wins, info.P2Name, info.Draws)
}

func (d *DefaultListener) OnFinishedWork(info VersusWorkerInfo) {
	d.printf("[worker %d] done, %d games\n", d.row, info.FinishedGames)
}

func (d *DefaultListener) Summary(info VersusSummaryInfo) {
	d.printf("%s %d games on %d workers\n%s: %d wins\n%s: %d wins\ndraws: %d\nfirst to move won %d, second to move won %d\n",
		d.out.String("summary:").Bold(), info.TotalGames, info.Workers,
		d.out.String(info.P1Name).Foreground(d.out.Color("10")), info.P1Wins,
		d.out.String(info.P2Name).Foreground(d.out.Color("9")), info.P2Wins,
		info.Draws, info.FirstToMoveWins, info.SecondToMoveWins)
}

func (d *DefaultListener) OnEnd() {}

// Writes the summary as JSON once the arena ends, ignores everything else
type SummaryListener struct {
	w   io.Writer
	err *error
}

func NewSummaryListener(w io.Writer) *SummaryListener {
	return &SummaryListener{w: w, err: new(error)}
}

// Clones share the writer, only the arena's own listener gets the summary
func (s *SummaryListener) Clone() ListenerLike {
	return &SummaryListener{w: s.w, err: s.err}
}

func (s *SummaryListener) SetRow(int) {}

func (s *SummaryListener) OnStart() {}

func (s *SummaryListener) OnGameStart() {}

func (s *SummaryListener) OnMoveMade(VersusWorkerInfo) {}

func (s *SummaryListener) OnFinishedGame(VersusWorkerInfo) {}

func (s *SummaryListener) OnFinishedWork(VersusWorkerInfo) {}

func (s *SummaryListener) Summary(info VersusSummaryInfo) {
	encoder := json.NewEncoder(s.w)
	encoder.SetIndent("", "  ")
	*s.err = encoder.Encode(info)
}

func (s *SummaryListener) OnEnd() {}

// Error of writing the summary
func (s *SummaryListener) Err() error {
	return *s.err
}
