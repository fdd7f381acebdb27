package pushfour

import (
	"fmt"
	"math/bits"
)

const wordBits = 64

// Positions of one kind of piece on a square board. Keeps four layouts of the
// same cells, one per scan axis (rows, columns and both diagonals), so any straight
// line on the board is a single word. Every write goes through Set/Clear, which update
// all four layouts.
type Overlay struct {
	size    int
	index   *DiagonalIndex
	main    []uint64 // main[row], bit col
	invert  []uint64 // invert[col], bit row
	diag    []uint64
	diagRot []uint64
}

// Create an empty overlay for a size x size board
func NewOverlay(size int) Overlay {
	o := Overlay{size: size, index: DiagonalIndexFor(size)}
	o.alloc()
	return o
}

// Carve all four layouts out of a single allocation
func (o *Overlay) alloc() {
	n, d := o.size, diagWords(o.size)
	words := make([]uint64, 2*n+2*d)
	o.main = words[0:n:n]
	o.invert = words[n : 2*n : 2*n]
	o.diag = words[2*n : 2*n+d : 2*n+d]
	o.diagRot = words[2*n+d:]
}

// Deep copy, shares no memory with the receiver
func (o *Overlay) Clone() Overlay {
	clone := Overlay{size: o.size, index: o.index}
	clone.alloc()
	copy(clone.main, o.main)
	copy(clone.invert, o.invert)
	copy(clone.diag, o.diag)
	copy(clone.diagRot, o.diagRot)
	return clone
}

func (o *Overlay) Size() int {
	return o.size
}

func (o *Overlay) Set(row, col int) {
	d, r := o.index.Lookup(row, col)
	o.main[row] |= 1 << col
	o.invert[col] |= 1 << row
	o.diag[d.Row] |= 1 << d.Col
	o.diagRot[r.Row] |= 1 << r.Col
}

func (o *Overlay) Clear(row, col int) {
	d, r := o.index.Lookup(row, col)
	o.main[row] &^= 1 << col
	o.invert[col] &^= 1 << row
	o.diag[d.Row] &^= 1 << d.Col
	o.diagRot[r.Row] &^= 1 << r.Col
}

func (o *Overlay) Get(row, col int) bool {
	return o.main[row]&(1<<col) != 0
}

// Row word, bit 'col' set when occupied
func (o *Overlay) Row(row int) uint64 {
	return o.main[row]
}

// Column word, bit 'row' set when occupied
func (o *Overlay) Column(col int) uint64 {
	return o.invert[col]
}

func (o *Overlay) layouts() [4][]uint64 {
	return [4][]uint64{o.main, o.invert, o.diag, o.diagRot}
}

// Length of the longest run of consecutive set bits in 'word', capped at 'limit'
func LongestRun(word uint64, limit int) int {
	if word == 0 || limit <= 0 {
		return 0
	}

	run := 1
	for run < limit {
		word &= word >> 1
		if word == 0 {
			break
		}
		run++
	}
	return run
}

// A finished line jumps from 4 straight to WinScore
func boostScore(score int) int {
	if score >= WinLength {
		return WinScore
	}
	return score
}

// Longest run on any axis (capped at WinLength), boosted to WinScore on a win
func (o *Overlay) Score() int {
	best := 0
	for _, layout := range o.layouts() {
		for _, word := range layout {
			best = max(best, LongestRun(word, WinLength))
		}
	}
	return boostScore(best)
}

// Same as Score, but a word only counts if joining it with the matching 'mask' word
// gives a run of at least WinLength that is longer than the mask's own run, meaning
// our pieces still have room to complete a line.
func (o *Overlay) ScoreWithMask(mask *Overlay) int {
	o.checkSameSize(mask)

	best := 0
	ours, theirs := o.layouts(), mask.layouts()
	for l := range ours {
		for i, word := range ours[l] {
			m := theirs[l][i]
			combined := LongestRun(word|m, wordBits)
			if combined >= WinLength && combined > LongestRun(m, wordBits) {
				best = max(best, LongestRun(word, WinLength))
			}
		}
	}
	return boostScore(best)
}

// Cells lying beyond the outermost occupied cell of their row or column,
// the ones push placement can still reach
func (o *Overlay) Reachable() Overlay {
	reach := NewOverlay(o.size)
	full := lineMask(o.size)

	for row, word := range o.main {
		for free := reachableWord(word, full); free != 0; free &= free - 1 {
			reach.Set(row, bits.TrailingZeros64(free))
		}
	}
	for col, word := range o.invert {
		for free := reachableWord(word, full); free != 0; free &= free - 1 {
			reach.Set(bits.TrailingZeros64(free), col)
		}
	}
	return reach
}

// Cells past the highest and below the lowest set bit, whole line if empty
func reachableWord(word, full uint64) uint64 {
	if word == 0 {
		return full
	}
	hi := wordBits - 1 - bits.LeadingZeros64(word)
	lo := bits.TrailingZeros64(word)
	above := full &^ (uint64(1)<<(hi+1) - 1)
	below := uint64(1)<<lo - 1
	return above | below
}

func lineMask(size int) uint64 {
	return uint64(1)<<size - 1
}

// Add all pieces of 'other' to this overlay
func (o *Overlay) Merge(other *Overlay) {
	o.checkSameSize(other)

	ours, theirs := o.layouts(), other.layouts()
	for l := range ours {
		for i := range ours[l] {
			ours[l][i] |= theirs[l][i]
		}
	}
}

// Whether there is a line of WinLength pieces on any axis
func (o *Overlay) IsWinState() bool {
	for _, layout := range o.layouts() {
		for _, word := range layout {
			if LongestRun(word, WinLength) >= WinLength {
				return true
			}
		}
	}
	return false
}

// Number of occupied cells
func (o *Overlay) Count() int {
	count := 0
	for _, word := range o.main {
		count += bits.OnesCount64(word)
	}
	return count
}

func (o *Overlay) checkSameSize(other *Overlay) {
	if o.size != other.size {
		panic(fmt.Sprintf("pushfour: overlay size mismatch %d != %d", o.size, other.size))
	}
}
