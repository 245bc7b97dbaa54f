package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/pokerhand/poker"
)

func TestCardRendering(t *testing.T) {
	var buf bytes.Buffer

	plain := New(&buf, Options{})
	assert.Equal(t, "10S", plain.Card(poker.NewCard(poker.Ten, poker.Spades)))
	assert.Equal(t, "AH KD", plain.Cards(poker.MustParseCards("AH KD")))

	symbols := New(&buf, Options{Symbols: true})
	assert.Equal(t, "A♥ K♠", symbols.Cards(poker.MustParseCards("AH KS")))
}

func TestColorDisabledEmitsNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Color: false, Symbols: true})

	p.Evaluation(poker.MustEvaluate("QH QC 5D 5S 2C"))
	out := buf.String()

	assert.NotContains(t, out, "\x1b[")
	assert.Contains(t, out, "two pair")
	assert.Contains(t, out, "queen")
	assert.Contains(t, out, "5 2")
	assert.Contains(t, out, "31207")
}

func TestShowdownOutput(t *testing.T) {
	hands := []poker.Hand{
		poker.MustEvaluate("6C 5D 4H 3C 2D"),
		poker.MustEvaluate("KD KS KC 10D 2H"),
	}

	var buf bytes.Buffer
	New(&buf, Options{}).Showdown([]string{"Player1", "Player2"}, hands, poker.Showdown(hands))
	out := buf.String()

	assert.Contains(t, out, "straight 6C 5D 4H 3C 2D")
	assert.Contains(t, out, "The winner of this showdown is Player1")
}

func TestShowdownTie(t *testing.T) {
	hands := []poker.Hand{
		poker.MustEvaluate("AS JD 9C 6H 3D"),
		poker.MustEvaluate("AH JC 9D 6S 3C"),
	}

	var buf bytes.Buffer
	New(&buf, Options{}).Showdown([]string{"Player1", "Player2"}, hands, poker.Showdown(hands))

	assert.Contains(t, buf.String(), "We have a 2-way tie between Player1, Player2")
}

func TestFrequencies(t *testing.T) {
	var buf bytes.Buffer
	counts := map[poker.Category]int{poker.OnePair: 3, poker.HighCard: 1}
	New(&buf, Options{}).Frequencies(counts, 4)
	out := buf.String()

	assert.Contains(t, out, "75.000%")
	assert.Contains(t, out, "25.000%")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("royal flush")), bytes.Index(buf.Bytes(), []byte("high card")))
}
