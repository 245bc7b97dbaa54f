package poker

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Suit is one of the four suits of a standard deck. Suits have no ordering;
// they only matter for flush detection and display.
type Suit uint8

const (
	Hearts Suit = iota
	Clubs
	Diamonds
	Spades
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Hearts, Clubs, Diamonds, Spades}

// String returns the single-letter suit code used in the card text form.
func (s Suit) String() string {
	switch s {
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode suit symbol.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four standard suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// Rank is a card rank. The numeric value is the rank's strength, so Two is 2
// and Ace is 14. Aces are always high.
type Rank uint8

const (
	Two Rank = iota + 2
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
	Ace
)

// Ranks lists every rank from lowest to highest.
var Ranks = [...]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

// Value returns the numeric strength of the rank (2..14).
func (r Rank) Value() int {
	return int(r)
}

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the rank token used in the card text form.
func (r Rank) String() string {
	switch r {
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	case Ace:
		return "A"
	default:
		if r.Valid() {
			return strconv.Itoa(int(r))
		}
		return "?"
	}
}

// Name returns the lower-case English name of the rank.
func (r Rank) Name() string {
	names := [...]string{"two", "three", "four", "five", "six", "seven", "eight",
		"nine", "ten", "jack", "queen", "king", "ace"}
	if !r.Valid() {
		return "unknown"
	}
	return names[r-Two]
}

// Card is an immutable (rank, suit) pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String returns the card text form, e.g. "10S" or "AH".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Symbol returns the card with its suit symbol, e.g. "A♥".
func (c Card) Symbol() string {
	return c.Rank.String() + c.Suit.Symbol()
}

// Valid reports whether both rank and suit are in range.
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Compare orders cards by rank only. Cards of equal rank compare equal
// regardless of suit.
func (c Card) Compare(other Card) int {
	switch {
	case c.Rank < other.Rank:
		return -1
	case c.Rank > other.Rank:
		return 1
	default:
		return 0
	}
}

// ParseCard parses the card text form <rank><suit>. Ranks are 2..10, J, Q, K
// and A (T is accepted for ten); suits are H, C, D and S. Both are
// case-insensitive.
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q has invalid length", ErrUnparseableCard, s)
	}

	suit, err := parseSuit(s[len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrUnparseableCard, s, err)
	}
	rank, err := parseRank(s[:len(s)-1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrUnparseableCard, s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses a list of cards separated by whitespace or commas,
// e.g. "AH KH QH JH 10H" or "AH,KH,QH".
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})

	cards := make([]Card, 0, len(fields))
	for i, field := range fields {
		card, err := ParseCard(field)
		if err != nil {
			return nil, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards '%s': %v", s, err))
	}
	return cards
}

// FormatCards joins the text form of each card with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func parseRank(s string) (Rank, error) {
	switch strings.ToUpper(s) {
	case "A":
		return Ace, nil
	case "K":
		return King, nil
	case "Q":
		return Queen, nil
	case "J":
		return Jack, nil
	case "10", "T":
		return Ten, nil
	case "9":
		return Nine, nil
	case "8":
		return Eight, nil
	case "7":
		return Seven, nil
	case "6":
		return Six, nil
	case "5":
		return Five, nil
	case "4":
		return Four, nil
	case "3":
		return Three, nil
	case "2":
		return Two, nil
	default:
		return 0, fmt.Errorf("unknown rank %q", s)
	}
}

func parseSuit(c byte) (Suit, error) {
	switch c {
	case 'H', 'h':
		return Hearts, nil
	case 'C', 'c':
		return Clubs, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'S', 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("unknown suit '%c'", c)
	}
}

// sortDescending returns a copy of cards ordered by rank, highest first.
// Cards of equal rank are ordered by suit so the result is canonical.
func sortDescending(cards []Card) []Card {
	sorted := slices.Clone(cards)
	slices.SortFunc(sorted, func(a, b Card) int {
		if c := b.Compare(a); c != 0 {
			return c
		}
		return int(a.Suit) - int(b.Suit)
	})
	return sorted
}

// validateUnique checks that no (rank, suit) pair appears twice and that every
// card is in range.
func validateUnique(cards []Card) error {
	seen := make(map[Card]struct{}, len(cards))
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: rank %d suit %d", ErrUnparseableCard, c.Rank, c.Suit)
		}
		if _, ok := seen[c]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen[c] = struct{}{}
	}
	return nil
}
