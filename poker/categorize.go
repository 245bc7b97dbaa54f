package poker

import (
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in an evaluated hand.
const HandSize = 5

// Category is the strength class of a five card hand, ordered from weakest
// to strongest.
type Category uint8

const (
	HighCard Category = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{HighCard, OnePair, TwoPair, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush}

// Strength returns the category's numeric strength (1..10).
func (c Category) Strength() int {
	return int(c)
}

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case Straight:
		return "straight"
	case Flush:
		return "flush"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case StraightFlush:
		return "straight flush"
	case RoyalFlush:
		return "royal flush"
	default:
		return "unknown"
	}
}

// ParseCategory accepts a category name in any case with spaces,
// underscores or hyphens between words ("two pair", "TWO_PAIR").
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("_", " ", "-", " ").Replace(normalized)
	for _, c := range Categories {
		if c.String() == normalized {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown hand category %q", s)
}

// rankGroup holds the cards sharing one rank.
type rankGroup struct {
	rank  Rank
	cards []Card
}

// groupByRank maps each rank to its cards, then orders the groups by size
// (largest first) and rank (highest first). Cards keep their input order
// within a group.
func groupByRank(cards []Card) []rankGroup {
	byRank := make(map[Rank][]Card)
	for _, c := range cards {
		byRank[c.Rank] = append(byRank[c.Rank], c)
	}

	groups := make([]rankGroup, 0, len(byRank))
	for rank, members := range byRank {
		groups = append(groups, rankGroup{rank: rank, cards: members})
	}
	slices.SortFunc(groups, func(a, b rankGroup) int {
		if len(a.cards) != len(b.cards) {
			return len(b.cards) - len(a.cards)
		}
		return int(b.rank) - int(a.rank)
	})
	return groups
}

// groupBySuit maps each suit to its cards in input order.
func groupBySuit(cards []Card) map[Suit][]Card {
	bySuit := make(map[Suit][]Card, len(Suits))
	for _, c := range cards {
		bySuit[c.Suit] = append(bySuit[c.Suit], c)
	}
	return bySuit
}

// Classify determines the category of exactly five unique cards.
func Classify(cards []Card) (Category, error) {
	if len(cards) != HandSize {
		return 0, fmt.Errorf("%w: classify needs %d cards, got %d", ErrInvalidCardCount, HandSize, len(cards))
	}
	if err := validateUnique(cards); err != nil {
		return 0, err
	}
	return classify(sortDescending(cards)), nil
}

// classify expects five valid unique cards sorted by rank descending.
func classify(sorted []Card) Category {
	ranks := groupByRank(sorted)
	numRanks := len(ranks)
	numSuits := len(groupBySuit(sorted))
	largest := len(ranks[0].cards)
	spread := sorted[0].Rank.Value() - sorted[len(sorted)-1].Rank.Value()

	switch {
	case spread == 4 && numSuits == 1:
		if sorted[0].Rank == Ace {
			return RoyalFlush
		}
		return StraightFlush
	case numRanks == 2:
		if largest == 4 {
			return FourOfAKind
		}
		return FullHouse
	case numRanks == 5:
		if numSuits == 1 {
			return Flush
		}
		if spread == 4 {
			return Straight
		}
		return HighCard
	case numRanks == 3:
		if largest == 3 {
			return ThreeOfAKind
		}
		return TwoPair
	case numRanks == 4:
		return OnePair
	default:
		return HighCard
	}
}
