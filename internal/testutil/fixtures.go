package testutil

// Positions used across package tests
const (
	// StartFEN is the standard starting position
	StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	// StalemateInOneFEN: white plays e6f7 and black has no legal move
	StalemateInOneFEN = "7k/8/4Q1K1/8/8/8/8/8 w - - 0 1"

	// PromotionFEN: white promotes with a7a8, giving check along the a-file
	PromotionFEN = "8/P7/8/8/8/8/8/k6K w - - 0 1"

	// BareKingsFEN is drawn by insufficient material before any move
	BareKingsFEN = "8/8/8/4k3/8/8/8/4K3 w - - 0 1"
)

// Move sequences in UCI notation
var (
	// FoolsMate ends with black mating on h4
	FoolsMate = []string{"f2f3", "e7e5", "g2g4", "d8h4"}

	// KnightShuffle returns to the start position; play it twice for a
	// threefold repetition
	KnightShuffle = []string{"g1f3", "g8f6", "f3g1", "f6g8"}

	// CenterCapture ends with exd5, white's pawn taking black's
	CenterCapture = []string{"e2e4", "d7d5", "e4d5"}

	// EnPassant ends with exd6 e.p.
	EnPassant = []string{"e2e4", "a7a6", "e4e5", "d7d5", "e5d6"}
)
