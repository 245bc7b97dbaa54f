package main

import (
	"fmt"
	"strings"

	"github.com/lox/pokerhand/poker"
)

type ClassifyCmd struct {
	Cards []string `arg:"" help:"Five cards, e.g. AH KH QH JH 10H"`
}

func (c *ClassifyCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	hand, err := poker.NewHand(cards)
	if err != nil {
		return err
	}

	e.logger.Debug("Classified hand", "hand", hand.String())
	e.printer.Evaluation(hand)
	return nil
}

type BestCmd struct {
	Cards []string `arg:"" help:"Five or more cards, e.g. AS KD 9H 9C 4S 2D 2C"`
}

func (c *BestCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	hand, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	e.logger.Debug("Selected best hand", "from", len(cards), "hand", hand.String())
	fmt.Fprintf(e.out, "Best five of %d: %s\n\n", len(cards), e.printer.Cards(hand.Cards()))
	e.printer.Evaluation(hand)
	return nil
}

type ShowdownCmd struct {
	Hands []string `arg:"" help:"One quoted card list per player, e.g. 'AH AD KS 9C 2D' 'QC QS 8H 8D 3C'"`
	Names []string `short:"n" sep:"," help:"Player names, comma separated (default Player1, Player2, ...)"`
}

func (c *ShowdownCmd) Run(g *Globals) error {
	e, err := g.setup()
	if err != nil {
		return err
	}

	if len(c.Hands) < 2 {
		return fmt.Errorf("a showdown needs at least 2 hands, got %d", len(c.Hands))
	}
	if len(c.Names) > 0 && len(c.Names) != len(c.Hands) {
		return fmt.Errorf("got %d names for %d hands", len(c.Names), len(c.Hands))
	}

	names := c.Names
	if len(names) == 0 {
		names = make([]string, len(c.Hands))
		for i := range names {
			names[i] = fmt.Sprintf("Player%d", i+1)
		}
	}

	hands, err := evaluateHands(names, c.Hands)
	if err != nil {
		return err
	}

	winners := poker.Showdown(hands)
	e.logger.Debug("Showdown complete", "hands", len(hands), "winners", len(winners))
	e.printer.Showdown(names, hands, winners)
	return nil
}

// evaluateHands parses each player's cards and evaluates them. A card may
// only appear once across all players.
func evaluateHands(names, lists []string) ([]poker.Hand, error) {
	seen := make(map[poker.Card]string)
	hands := make([]poker.Hand, len(lists))
	for i, list := range lists {
		cards, err := poker.ParseCards(list)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
		for _, card := range cards {
			if owner, ok := seen[card]; ok {
				return nil, fmt.Errorf("%w: %s held by both %s and %s", poker.ErrDuplicateCard, card, owner, names[i])
			}
			seen[card] = names[i]
		}
		hands[i], err = poker.Evaluate(cards)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
	}
	return hands, nil
}
