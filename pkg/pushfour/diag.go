package pushfour

import (
	"fmt"
	"sync"
)

// Lookup tables translating board coordinates into the two diagonal layouts
// of an overlay. Only used when setting or clearing bits.
//
//	      00            02
//	    10  01        01  12
//	  20  11  02    00  11  22   -- layouts ('00' is the top left cell)
//	    21  12        10  21
//	      22            22
//
//	   00 11 22      20 10 00
//	   10 21 31      30 21 11    -- lookup tables
//	   20 30 40      40 31 22
//
//	     Main          Rot
type DiagonalIndex struct {
	Size int
	Main [][]Coord
	Rot  [][]Coord
}

type diagSlot struct {
	once  sync.Once
	index *DiagonalIndex
}

var diagIndexes [MaxBoardSize + 1]diagSlot

// Get the shared lookup table for given board size, built on first use
func DiagonalIndexFor(size int) *DiagonalIndex {
	checkSize(size)
	slot := &diagIndexes[size]
	slot.once.Do(func() {
		slot.index = NewDiagonalIndex(size)
	})
	return slot.index
}

// Build the lookup tables for given board size. Prefer DiagonalIndexFor,
// which shares one immutable table per size.
func NewDiagonalIndex(size int) *DiagonalIndex {
	checkSize(size)
	index := &DiagonalIndex{
		Size: size,
		Main: makeCoordTable(size),
		Rot:  makeCoordTable(size),
	}

	keyRowReset, keyColReset := 1, 1
	keyRow, keyCol := 0, 0
	valRow, valCol := 0, 0

	for total := 0; total < size*size; total++ {
		index.Main[keyRow][keyCol] = Coord{valRow, valCol}
		rotRow, rotCol := rotateCW(size, keyRow, keyCol)
		index.Rot[rotRow][rotCol] = Coord{valRow, valCol}

		switch {
		case keyRow == 0 && keyRowReset < size:
			// Next diagonal starts on the left column
			keyRow, keyCol = keyRowReset, 0
			keyRowReset++
			valRow, valCol = valRow+1, 0
		case keyCol == size-1 && keyColReset < size:
			// Then on the bottom row
			keyRow, keyCol = size-1, keyColReset
			keyColReset++
			valRow, valCol = valRow+1, 0
		default:
			keyRow--
			keyCol++
			valCol++
		}
	}

	return index
}

// Addresses of (row, col) in the main and rotated diagonal layouts
func (d *DiagonalIndex) Lookup(row, col int) (Coord, Coord) {
	return d.Main[row][col], d.Rot[row][col]
}

// Number of words in one diagonal layout
func diagWords(size int) int {
	return 2*size - 1
}

func rotateCW(size, row, col int) (int, int) {
	return col, size - row - 1
}

func makeCoordTable(size int) [][]Coord {
	cells := make([]Coord, size*size)
	table := make([][]Coord, size)
	for i := range table {
		table[i] = cells[i*size : (i+1)*size : (i+1)*size]
	}
	return table
}

func checkSize(size int) {
	if size < 1 || size > MaxBoardSize {
		panic(fmt.Sprintf("pushfour: board size %d out of range [1, %d]", size, MaxBoardSize))
	}
}
