// Package hashing provides Zobrist keys and duplicate detection for chess positions.
package hashing

import (
	"github.com/lgbarn/chessposition-go/internal/chess"
	"github.com/lgbarn/chessposition-go/internal/engine"
)

const (
	numPieceKeys = 2 * int(chess.NumPieceNames) * chess.BoardSize * chess.BoardSize
	zobristSeed  = 0x9E3779B97F4A7C15
)

var (
	pieceKeys    [numPieceKeys]uint64
	castlingKeys [4]uint64
)

func init() {
	state := uint64(zobristSeed)
	for i := range pieceKeys {
		pieceKeys[i] = splitmix64(&state)
	}
	for i := range castlingKeys {
		castlingKeys[i] = splitmix64(&state)
	}
}

// splitmix64 advances state and returns the next pseudo-random value.
// Keys are fixed across runs.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

func pieceKey(p chess.Piece, x, y int) uint64 {
	idx := (int(p.Colour)*int(chess.NumPieceNames)+int(p.Name))*chess.BoardSize*chess.BoardSize + y*chess.BoardSize + x
	return pieceKeys[idx]
}

// GenerateZobristHash returns the Zobrist key of a position: piece
// placement plus the four castling flags.
func GenerateZobristHash(pos engine.Position) uint64 {
	var hash uint64
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			if p, ok := pos.Board[y][x].Piece(); ok {
				hash ^= pieceKey(p, x, y)
			}
		}
	}

	flags := [4]bool{
		pos.Castling.WhiteKingside,
		pos.Castling.WhiteQueenside,
		pos.Castling.BlackKingside,
		pos.Castling.BlackQueenside,
	}
	for i, set := range flags {
		if set {
			hash ^= castlingKeys[i]
		}
	}
	return hash
}

// WeakHash is a fast additive hash of the piece placement only.
func WeakHash(board chess.Board) uint64 {
	var hash uint64
	for y := 0; y < chess.BoardSize; y++ {
		for x := 0; x < chess.BoardSize; x++ {
			if p, ok := board[y][x].Piece(); ok {
				hash += uint64(p.Letter()) * uint64(y*chess.BoardSize+x+1)
			}
		}
	}
	return hash
}

// PositionSignature stores identifying information about a position.
type PositionSignature struct {
	// Hash is the Zobrist key of the position
	Hash uint64
	// WeakHash is a fast hash for quick comparison
	WeakHash uint64
}

// DuplicateDetector tracks seen positions.
type DuplicateDetector struct {
	// hashTable stores seen hash codes
	hashTable map[uint64][]PositionSignature
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits the number of stored signatures (0 = unlimited)
	maxCapacity int
	entries     int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]PositionSignature),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd checks if a position has been seen and records it.
// Returns true if the position is a duplicate. Once the detector is full,
// new positions are still checked but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(pos engine.Position) bool {
	sig := PositionSignature{
		Hash:     GenerateZobristHash(pos),
		WeakHash: WeakHash(pos.Board),
	}

	if existing, ok := d.hashTable[sig.Hash]; ok {
		for _, existingSig := range existing {
			if existingSig == sig {
				d.duplicateCount++
				return true
			}
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.entries++
	return false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.entries
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.entries >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]PositionSignature)
	d.duplicateCount = 0
	d.entries = 0
}
