package poker

import (
	"errors"
	"testing"
)

func TestCardCreation(t *testing.T) {
	t.Parallel()
	aceHearts := NewCard(Ace, Hearts)
	if aceHearts.Rank != Ace {
		t.Errorf("Expected rank Ace, got %d", aceHearts.Rank)
	}
	if aceHearts.Suit != Hearts {
		t.Errorf("Expected suit Hearts, got %d", aceHearts.Suit)
	}
	if aceHearts.String() != "AH" {
		t.Errorf("Expected 'AH', got %s", aceHearts.String())
	}
	if aceHearts.Symbol() != "A♥" {
		t.Errorf("Expected 'A♥', got %s", aceHearts.Symbol())
	}

	tenSpades := NewCard(Ten, Spades)
	if tenSpades.String() != "10S" {
		t.Errorf("Expected '10S', got %s", tenSpades.String())
	}
}

func TestRankValues(t *testing.T) {
	t.Parallel()
	want := map[Rank]int{Two: 2, Nine: 9, Ten: 10, Jack: 11, Queen: 12, King: 13, Ace: 14}
	for rank, value := range want {
		if rank.Value() != value {
			t.Errorf("%s.Value() = %d, want %d", rank.Name(), rank.Value(), value)
		}
	}
	for i := 1; i < len(Ranks); i++ {
		if Ranks[i-1] >= Ranks[i] {
			t.Errorf("Ranks not ascending at %d: %s >= %s", i, Ranks[i-1], Ranks[i])
		}
	}
}

func TestCardCompareIgnoresSuit(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Card
		want int
	}{
		{"same rank different suit", NewCard(King, Hearts), NewCard(King, Spades), 0},
		{"ace beats king", NewCard(Ace, Clubs), NewCard(King, Hearts), 1},
		{"two loses to three", NewCard(Two, Spades), NewCard(Three, Diamonds), -1},
		{"face beats ten", NewCard(Jack, Diamonds), NewCard(Ten, Hearts), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.a.Compare(tc.b); got != tc.want {
				t.Errorf("%s.Compare(%s) = %d, want %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		input    string
		wantCard Card
		wantErr  bool
	}{
		{name: "ace of hearts", input: "AH", wantCard: NewCard(Ace, Hearts)},
		{name: "ten of spades", input: "10S", wantCard: NewCard(Ten, Spades)},
		{name: "ten with T notation", input: "TS", wantCard: NewCard(Ten, Spades)},
		{name: "two of clubs", input: "2C", wantCard: NewCard(Two, Clubs)},
		{name: "lower case", input: "kd", wantCard: NewCard(King, Diamonds)},
		{name: "surrounding space", input: " QC ", wantCard: NewCard(Queen, Clubs)},
		{name: "invalid rank", input: "XS", wantErr: true},
		{name: "rank one", input: "1S", wantErr: true},
		{name: "rank eleven", input: "11H", wantErr: true},
		{name: "invalid suit", input: "AX", wantErr: true},
		{name: "empty string", input: "", wantErr: true},
		{name: "too short", input: "A", wantErr: true},
		{name: "too long", input: "10SS", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			card, err := ParseCard(tc.input)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseCard(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if tc.wantErr {
				if !errors.Is(err, ErrUnparseableCard) {
					t.Errorf("ParseCard(%q) error = %v, want ErrUnparseableCard", tc.input, err)
				}
				return
			}
			if card != tc.wantCard {
				t.Errorf("ParseCard(%q) = %v, want %v", tc.input, card, tc.wantCard)
			}
		})
	}
}

func TestAll52CardsRoundTrip(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)

	for _, card := range StandardDeck() {
		str := card.String()
		if seen[str] {
			t.Errorf("Duplicate card: %s", str)
		}
		seen[str] = true

		parsed, err := ParseCard(str)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", str, err)
		}
		if parsed != card {
			t.Errorf("Round-trip failed for %s: got %s", str, parsed)
		}
	}

	if len(seen) != DeckSize {
		t.Errorf("Expected %d unique cards, got %d", DeckSize, len(seen))
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()
	cards, err := ParseCards("AH, KH QH\tJH 10H")
	if err != nil {
		t.Fatalf("ParseCards failed: %v", err)
	}
	if got := FormatCards(cards); got != "AH KH QH JH 10H" {
		t.Errorf("FormatCards = %q", got)
	}

	if _, err := ParseCards("AH ZZ"); !errors.Is(err, ErrUnparseableCard) {
		t.Errorf("Expected ErrUnparseableCard, got %v", err)
	}

	empty, err := ParseCards("")
	if err != nil || len(empty) != 0 {
		t.Errorf("ParseCards(\"\") = %v, %v", empty, err)
	}
}

func TestSortDescendingIsCanonical(t *testing.T) {
	t.Parallel()
	a := sortDescending(MustParseCards("2D KS KH 9C 2H"))
	b := sortDescending(MustParseCards("KH 2H 9C 2D KS"))
	if FormatCards(a) != FormatCards(b) {
		t.Errorf("sort not canonical: %s vs %s", FormatCards(a), FormatCards(b))
	}
	if FormatCards(a) != "KH KS 9C 2H 2D" {
		t.Errorf("unexpected order %s", FormatCards(a))
	}
}

func BenchmarkParseCard(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = ParseCard("10S")
	}
}
