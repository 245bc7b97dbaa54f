package poker

import "slices"

// Showdown returns the indices of the strongest hands. More than one index
// means a tie; ties are decided by Compare, never by Score.
func Showdown(hands []Hand) []int {
	if len(hands) == 0 {
		return nil
	}

	best := MaxHand(hands)
	var winners []int
	for i, h := range hands {
		if h.Equals(best) {
			winners = append(winners, i)
		}
	}
	return winners
}

// MaxHand returns the strongest hand. It returns the zero Hand for an empty
// slice.
func MaxHand(hands []Hand) Hand {
	if len(hands) == 0 {
		return Hand{}
	}
	return slices.MaxFunc(hands, Hand.Compare)
}

// SortHands sorts hands in place from strongest to weakest.
func SortHands(hands []Hand) {
	slices.SortStableFunc(hands, func(a, b Hand) int {
		return b.Compare(a)
	})
}
