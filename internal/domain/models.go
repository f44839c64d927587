package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// Rank is a card rank, Ace (1) through King (13).
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankLabels = [...]string{"?", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Ranks lists every rank in ascending order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

func (r Rank) String() string {
	if r < Ace || r > King {
		return rankLabels[0]
	}
	return rankLabels[r]
}

// Suit is one of the four French suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in canonical deck order.
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Red reports whether the suit is printed in red.
func (s Suit) Red() bool {
	return s == Hearts || s == Diamonds
}

// Card is a single playing card. Two cards match iff rank and suit are equal.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Visibility is the state of one slot on the board.
type Visibility string

const (
	FaceDown Visibility = "face_down"
	FaceUp   Visibility = "face_up"
	Removed  Visibility = "removed"
)

// Slot is a read-only view of one board position.
type Slot struct {
	Card       Card
	Visibility Visibility
}

// Outcome tells the presentation layer what a tap did.
type Outcome string

const (
	OutcomeFlipped    Outcome = "flipped"
	OutcomeMatched    Outcome = "matched"
	OutcomeMismatched Outcome = "mismatched"
	OutcomeIgnored    Outcome = "ignored"
)
