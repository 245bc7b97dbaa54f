package poker

import (
	"fmt"
	"slices"
)

// noRank is never a valid rank and is used when nothing should be excluded.
const noRank Rank = 0

// BestHand returns the five cards from cards that make the strongest hand,
// highest rank first. It needs at least five unique cards; exactly five are
// returned sorted but otherwise unchanged.
//
// Categories are tried from strongest to weakest and the first one that can
// be made wins, so no branch has to compare against weaker possibilities.
func BestHand(cards []Card) ([]Card, error) {
	if len(cards) < HandSize {
		return nil, fmt.Errorf("%w: need at least %d cards, got %d", ErrInvalidCardCount, HandSize, len(cards))
	}
	if err := validateUnique(cards); err != nil {
		return nil, err
	}

	sorted := sortDescending(cards)
	if len(sorted) == HandSize {
		return sorted, nil
	}

	best, err := selectBest(sorted)
	if err != nil {
		return nil, err
	}
	return sortDescending(best), nil
}

func selectBest(sorted []Card) ([]Card, error) {
	suits := groupBySuit(sorted)
	ranks := groupByRank(sorted)

	if run, ok := bestStraightFlush(suits); ok {
		return run, nil
	}

	if quad, ok := highestGroup(ranks, 4, noRank); ok {
		return withKickers(quad.cards[:4], sorted, 1, quad.rank)
	}

	if trip, ok := highestGroup(ranks, 3, noRank); ok {
		if pair, ok := highestGroup(ranks, 2, trip.rank); ok {
			return concat(trip.cards[:3], pair.cards[:2]), nil
		}
	}

	if flush, ok := bestFlush(suits); ok {
		return flush, nil
	}

	if len(ranks) >= HandSize {
		if run, ok := HighestRun(sorted); ok {
			return run, nil
		}
	}

	if trip, ok := highestGroup(ranks, 3, noRank); ok {
		return withKickers(trip.cards[:3], sorted, 2, trip.rank)
	}

	if high, ok := highestGroup(ranks, 2, noRank); ok {
		if low, ok := highestGroup(ranks, 2, high.rank); ok {
			return withKickers(concat(high.cards[:2], low.cards[:2]), sorted, 1, high.rank, low.rank)
		}
	}

	// One pair or high card: the first group is the pair if there is one,
	// otherwise the single highest card.
	top := ranks[0]
	return withKickers(top.cards, sorted, HandSize-len(top.cards), top.rank)
}

// bestStraightFlush runs HighestRun over every suit holding at least five
// cards and keeps the run with the highest top card.
func bestStraightFlush(suits map[Suit][]Card) ([]Card, bool) {
	var best []Card
	for _, suit := range Suits {
		suited := suits[suit]
		if len(suited) < HandSize {
			continue
		}
		run, ok := HighestRun(suited)
		if !ok {
			continue
		}
		if best == nil || run[0].Rank > best[0].Rank {
			best = run
		}
	}
	return best, best != nil
}

// bestFlush takes the top five cards of every suit holding at least five
// and keeps the one whose ranks are highest in sequence.
func bestFlush(suits map[Suit][]Card) ([]Card, bool) {
	var best []Card
	for _, suit := range Suits {
		suited := suits[suit]
		if len(suited) < HandSize {
			continue
		}
		top := suited[:HandSize]
		if best == nil || compareRanks(top, best) > 0 {
			best = top
		}
	}
	return slices.Clone(best), best != nil
}

// HighestRun finds the highest five cards of strictly consecutive rank.
// Cards sharing a rank with the bottom of the current run are skipped; any
// gap restarts the run at the current card. Aces only count high, so
// A-2-3-4-5 is not a run.
func HighestRun(cards []Card) ([]Card, bool) {
	sorted := sortDescending(cards)

	run := make([]Card, 0, HandSize)
	for _, c := range sorted {
		if len(run) > 0 {
			bottom := run[len(run)-1].Rank
			switch {
			case c.Rank == bottom:
				continue
			case c.Rank.Value() != bottom.Value()-1:
				run = run[:0]
			}
		}
		run = append(run, c)
		if len(run) == HandSize {
			return slices.Clone(run), true
		}
	}
	return nil, false
}

// highestGroup returns the highest ranked group with at least size cards,
// skipping the excluded rank.
func highestGroup(groups []rankGroup, size int, exclude Rank) (rankGroup, bool) {
	var best rankGroup
	found := false
	for _, g := range groups {
		if len(g.cards) < size || g.rank == exclude {
			continue
		}
		if !found || g.rank > best.rank {
			best = g
			found = true
		}
	}
	return best, found
}

// withKickers completes made with the n highest cards of sorted whose rank
// is not one of used.
func withKickers(made []Card, sorted []Card, n int, used ...Rank) ([]Card, error) {
	rest := make([]Card, 0, len(sorted))
	for _, c := range sorted {
		if !slices.Contains(used, c.Rank) {
			rest = append(rest, c)
		}
	}
	kickers, err := takeBest(rest, n)
	if err != nil {
		return nil, err
	}
	return concat(made, kickers), nil
}

// takeBest returns the first n cards of a rank-descending slice.
func takeBest(sorted []Card, n int) ([]Card, error) {
	if n > len(sorted) {
		return nil, fmt.Errorf("%w: wanted %d, have %d", ErrInsufficientCandidates, n, len(sorted))
	}
	return sorted[:n], nil
}

func concat(parts ...[]Card) []Card {
	var out []Card
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// compareRanks compares two equal length card slices rank by rank.
func compareRanks(a, b []Card) int {
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}
