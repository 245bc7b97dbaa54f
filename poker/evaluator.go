package poker

import (
	"cmp"
	"fmt"
	"slices"
)

// Hand is an evaluated five card hand. It is built once by NewHand or
// Evaluate and never changes afterwards. The cards are held sorted by rank,
// highest first.
type Hand struct {
	cards        [HandSize]Card
	category     Category
	categoryRank Rank
	kicker       []Rank
}

// NewHand evaluates exactly five unique cards.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: a hand needs %d cards, got %d", ErrInvalidCardCount, HandSize, len(cards))
	}
	if err := validateUnique(cards); err != nil {
		return Hand{}, err
	}
	return newHand(sortDescending(cards)), nil
}

// Evaluate picks the strongest five card subset of five or more unique cards
// and evaluates it.
func Evaluate(cards []Card) (Hand, error) {
	best, err := BestHand(cards)
	if err != nil {
		return Hand{}, err
	}
	return newHand(best), nil
}

// MustEvaluate parses and evaluates cards, panicking on error (for tests)
func MustEvaluate(s string) Hand {
	hand, err := Evaluate(MustParseCards(s))
	if err != nil {
		panic(fmt.Sprintf("failed to evaluate '%s': %v", s, err))
	}
	return hand
}

// newHand expects five valid unique cards sorted by rank descending.
func newHand(sorted []Card) Hand {
	var h Hand
	copy(h.cards[:], sorted)
	h.category = classify(sorted)
	h.categoryRank = categoryRank(sorted, h.category)
	h.kicker = kicker(sorted, h.category, h.categoryRank)
	return h
}

// categoryRank returns the rank anchoring the category: the top card for
// straights, flushes and high card, the larger group's rank for paired
// hands, and the higher pair for two pair.
func categoryRank(sorted []Card, category Category) Rank {
	switch category {
	case RoyalFlush, StraightFlush, Flush, Straight, HighCard:
		return sorted[0].Rank
	default:
		// groupByRank puts the largest group first; for two pair the two
		// groups tie on size and the higher pair sorts first.
		return groupByRank(sorted)[0].rank
	}
}

// kicker returns the tie-break ranks after the category rank. Two pair is
// the exception to "remaining cards descending": the lower pair comes before
// the odd card.
func kicker(sorted []Card, category Category, anchor Rank) []Rank {
	if category == TwoPair {
		groups := groupByRank(sorted)
		return []Rank{groups[1].rank, groups[2].rank}
	}

	var ranks []Rank
	switch category {
	case RoyalFlush, StraightFlush, Flush, Straight, HighCard:
		for _, c := range sorted[1:] {
			ranks = append(ranks, c.Rank)
		}
	default:
		for _, c := range sorted {
			if c.Rank != anchor {
				ranks = append(ranks, c.Rank)
			}
		}
	}
	return ranks
}

// Cards returns a copy of the hand's cards, highest rank first.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards[:])
}

// Category returns the hand's category.
func (h Hand) Category() Category {
	return h.category
}

// CategoryRank returns the rank that anchors the category.
func (h Hand) CategoryRank() Rank {
	return h.categoryRank
}

// Kicker returns a copy of the ordered tie-break ranks.
func (h Hand) Kicker() []Rank {
	return slices.Clone(h.kicker)
}

// Compare orders hands by category, then category rank, then kicker ranks
// in sequence. It returns -1 if h is weaker than other, 0 if they are equal
// and 1 if h is stronger.
func (h Hand) Compare(other Hand) int {
	if c := cmp.Compare(h.category, other.category); c != 0 {
		return c
	}
	if c := cmp.Compare(h.categoryRank, other.categoryRank); c != 0 {
		return c
	}
	return slices.Compare(h.kicker, other.kicker)
}

// Equals reports whether both hands have the same category, category rank
// and kicker.
func (h Hand) Equals(other Hand) bool {
	return h.Compare(other) == 0
}

// Score packs the hand into a single number:
//
//	category*10000 + categoryRank*100 + sum(kicker)
//
// Summing the kicker discards its order, so hands that Compare orders
// differently can share a score (kickers 9,2 and 8,3). Use it for coarse
// grouping only; Compare is authoritative.
func (h Hand) Score() int {
	score := h.category.Strength()*10000 + h.categoryRank.Value()*100
	for _, r := range h.kicker {
		score += r.Value()
	}
	return score
}

// String returns the category followed by the cards, e.g.
// "royal flush: AH KH QH JH 10H".
func (h Hand) String() string {
	return fmt.Sprintf("%s: %s", h.category, FormatCards(h.cards[:]))
}
